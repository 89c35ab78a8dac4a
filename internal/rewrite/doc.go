// Package rewrite replaces the description of every FASTA record with a gene
// tag derived from the record identifier.
//
// For identifier "LjG123.1" the description becomes "gene:LjG123": the tag is
// the identifier up to its first delimiter, or the whole identifier when it
// has none. Identifiers and residues pass through untouched and records keep
// their input order. Because the tag is computed from the identifier alone, a
// rewritten file fed back in comes out unchanged.
//
// Processing is a single forward pass holding one record at a time.
package rewrite
