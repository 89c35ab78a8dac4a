// internal/fasta/writer.go
package fasta

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"genetag/internal/errs"
)

// DefaultWidth is the residues-per-line used when none is configured.
const DefaultWidth = 60

// Writer serialises records as FASTA with fixed-width sequence lines.
type Writer struct {
	path string
	w    *biofasta.Writer
}

// NewWriter writes to w, wrapping sequence lines at width residues (width < 1
// means DefaultWidth). path only names the destination in errors.
func NewWriter(w io.Writer, path string, width int) *Writer {
	if width < 1 {
		width = DefaultWidth
	}
	return &Writer{path: path, w: biofasta.NewWriter(w, width)}
}

// Write emits one record. Failures are reported as errs.ErrWrite.
func (w *Writer) Write(rec Record) error {
	s := linear.NewSeq(rec.ID, alphabet.BytesToLetters(rec.Seq), template)
	if err := s.SetDescription(rec.Desc); err != nil {
		return errs.Write("write", w.path, err)
	}
	_, err := w.w.Write(s)
	return errs.Write("write", w.path, err)
}
