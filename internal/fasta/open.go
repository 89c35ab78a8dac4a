// internal/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"genetag/internal/errs"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenInput opens path for reading. "-" reads stdin (os.Stdin when nil);
// gzip input is detected by magic number (1F 8B) or by .gz suffix and
// decompressed transparently. The input is never seeked, so pipes and
// /dev/fd paths work. A directory is reported as not found.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errs.NotFound("open", path, err)
	}
	if fi, err := fh.Stat(); err == nil && fi.IsDir() {
		_ = fh.Close()
		return nil, errs.NotFound("open", path, syscall.EISDIR)
	}
	br := bufio.NewReader(fh)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, errs.Parse(path, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

// SameFile reports whether in and out name the same file, through a
// relative, absolute or symlinked spelling. "-" never matches.
func SameFile(in, out string) bool {
	if in == "-" || out == "-" {
		return false
	}
	if a, err := filepath.Abs(in); err == nil {
		if b, err := filepath.Abs(out); err == nil && a == b {
			return true
		}
	}
	fi, err := os.Stat(in)
	if err != nil {
		return false
	}
	fo, err := os.Stat(out)
	if err != nil {
		return false
	}
	return os.SameFile(fi, fo)
}

// Output is a buffered, closable FASTA destination.
type Output struct {
	*bufio.Writer
	path string
	c    io.Closer
}

// CreateOutput creates or truncates path. "-" writes to stdout (os.Stdout
// when nil), which is flushed but never closed.
func CreateOutput(path string, stdout io.Writer) (*Output, error) {
	if path == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return &Output{Writer: bufio.NewWriter(stdout), path: path}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, errs.NotFound("create", path, err)
	}
	return &Output{Writer: bufio.NewWriter(fh), path: path, c: fh}, nil
}

// Path is the path the output was created with.
func (o *Output) Path() string { return o.path }

// Close flushes buffered records and releases the file handle. The handle is
// released even when the flush fails.
func (o *Output) Close() error {
	ferr := o.Flush()
	var cerr error
	if o.c != nil {
		cerr = o.c.Close()
		o.c = nil
	}
	if ferr != nil {
		return errs.Write("flush", o.path, ferr)
	}
	return errs.Write("close", o.path, cerr)
}
