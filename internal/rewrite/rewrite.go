package rewrite

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"genetag/internal/fasta"
)

// Defaults for Options.
const (
	DefaultPrefix    = "gene:"
	DefaultDelimiter = "."
)

// Options controls how the description is derived.
type Options struct {
	Prefix    string // prepended to the gene identifier
	Delimiter string // identifier is cut at its first occurrence; empty means DefaultDelimiter
}

// DefaultOptions returns gene:/. options.
func DefaultOptions() Options {
	return Options{Prefix: DefaultPrefix, Delimiter: DefaultDelimiter}
}

// GeneID returns id up to (not including) its first '.'.
func GeneID(id string) string { return cut(id, DefaultDelimiter) }

func cut(id, delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	g, _, _ := strings.Cut(id, delim)
	return g
}

// Describe builds the description for a record identifier.
func Describe(id string, opts Options) string {
	return opts.Prefix + cut(id, opts.Delimiter)
}

// Apply rewrites rec's description in place and reports whether it changed.
func Apply(rec *fasta.Record, opts Options) bool {
	d := Describe(rec.ID, opts)
	if rec.Desc == d {
		return false
	}
	rec.Desc = d
	return true
}

// RecordReader yields records until io.EOF.
type RecordReader interface {
	Read() (fasta.Record, error)
}

// RecordWriter consumes records in order.
type RecordWriter interface {
	Write(fasta.Record) error
}

// Stats summarises a run.
type Stats struct {
	Records   int // records written
	Rewritten int // records whose description changed
	Residues  int // total sequence length written
}

// Stream reads, rewrites and writes records one at a time until r is
// exhausted. The first read or write error ends the run; records written
// before it stay written. ctx is checked between records.
func Stream(ctx context.Context, r RecordReader, w RecordWriter, opts Options, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var st Stats
	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}

		old := rec.Desc
		if Apply(&rec, opts) {
			st.Rewritten++
		}
		if ce := log.Check(zap.DebugLevel, "rewrite record"); ce != nil {
			ce.Write(zap.String("id", rec.ID), zap.String("from", old), zap.String("to", rec.Desc))
		}

		if err := w.Write(rec); err != nil {
			return st, err
		}
		st.Records++
		st.Residues += len(rec.Seq)
	}
}
