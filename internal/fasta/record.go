// Package fasta reads and writes FASTA records on top of biogo's seqio.
//
// A Record is the only unit exchanged with callers: the header is split into
// ID (first word) and Desc (the rest), and Seq holds the residues with line
// breaks and blanks removed. Letter case and symbols are passed through as
// read; no alphabet validation happens here.
package fasta

// Record is one FASTA entry.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Header renders the header line without the leading '>'.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}
