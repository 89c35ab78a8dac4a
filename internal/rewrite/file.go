package rewrite

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"genetag/internal/errs"
	"genetag/internal/fasta"
)

// FileOptions describes one file-to-file run.
type FileOptions struct {
	Input  string // path, "-" for stdin; gzip is detected
	Output string // path, "-" for stdout
	Width  int    // residues per output line
	Options

	Stdin  io.Reader // used for Input "-"; os.Stdin when nil
	Stdout io.Writer // used for Output "-"; os.Stdout when nil
}

// File rewrites Input into Output. The input is opened read-only before the
// output is created, so a missing input never truncates an existing output,
// and an output naming the input file is refused before anything is created.
// Both handles are released on every return path, and on failure the output
// keeps every record written before it.
func File(ctx context.Context, fo FileOptions, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	in, err := fasta.OpenInput(fo.Input, fo.Stdin)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = in.Close() }()

	if fasta.SameFile(fo.Input, fo.Output) {
		return Stats{}, errs.Write("create", fo.Output, fmt.Errorf("refusing to overwrite input %s", fo.Input))
	}
	out, err := fasta.CreateOutput(fo.Output, fo.Stdout)
	if err != nil {
		return Stats{}, err
	}
	closed := false
	defer func() {
		if !closed {
			_ = out.Close()
		}
	}()

	log.Debug("rewriting",
		zap.String("input", fo.Input),
		zap.String("output", fo.Output),
		zap.String("prefix", fo.Prefix),
		zap.String("delimiter", fo.Delimiter),
		zap.Int("width", fo.Width))

	r := fasta.NewReader(in, fo.Input)
	w := fasta.NewWriter(out, fo.Output, fo.Width)
	st, err := Stream(ctx, r, w, fo.Options, log)

	// flush what was written even when the stream failed
	closed = true
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return st, err
	}

	log.Info("rewrite complete",
		zap.String("input", fo.Input),
		zap.String("output", fo.Output),
		zap.Int("records", st.Records),
		zap.Int("rewritten", st.Rewritten),
		zap.Int("residues", st.Residues),
		zap.Duration("elapsed", time.Since(start)))
	return st, nil
}
