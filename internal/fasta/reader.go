// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"genetag/internal/errs"
)

// template is the biogo sequence every record is parsed into. Residues are
// never checked against its alphabet, so DNA serves for protein input too.
var template = alphabet.DNA

// Reader yields records one at a time; it is forward-only and not restartable.
type Reader struct {
	path    string
	br      *bufio.Reader
	sc      *seqio.Scanner
	checked bool
	done    bool
}

// NewReader reads FASTA from r. path only names the source in errors.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{path: path, br: bufio.NewReader(r)}
}

// Read returns the next record, or io.EOF once the input is exhausted.
// Malformed input is reported as errs.ErrParse and ends the stream.
func (r *Reader) Read() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	if !r.checked {
		r.checked = true
		if err := leadingHeader(r.br); err != nil {
			r.done = true
			return Record{}, errs.Parse(r.path, err)
		}
		r.sc = seqio.NewScanner(biofasta.NewReader(r.br, linear.NewSeq("", nil, template)))
	}
	if !r.sc.Next() {
		r.done = true
		if err := r.sc.Error(); err != nil {
			return Record{}, errs.Parse(r.path, err)
		}
		return Record{}, io.EOF
	}
	s, ok := r.sc.Seq().(*linear.Seq)
	if !ok {
		r.done = true
		return Record{}, errs.Parse(r.path, fmt.Errorf("unexpected sequence type %T", r.sc.Seq()))
	}
	seq := make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		seq[i] = byte(l)
	}
	return Record{ID: s.Name(), Desc: s.Description(), Seq: seq}, nil
}

// leadingHeader checks that the first non-blank byte opens a header. Blank
// leading lines are consumed; the '>' is left in place.
func leadingHeader(br *bufio.Reader) error {
	line := 1
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch b {
		case '\n':
			line++
		case ' ', '\t', '\r':
		case '>':
			return br.UnreadByte()
		default:
			return fmt.Errorf("line %d: sequence data before first header (want '>', got %q)", line, b)
		}
	}
}

// ReadAll drains r. Intended for tests and small inputs.
func ReadAll(r *Reader) ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
