// Package errs is the failure taxonomy shared by the rewriter and the CLI.
//
// Every error surfaced to the user is an *Error carrying one of the sentinel
// kinds below, the operation that failed and the file it failed on. Callers
// branch with errors.Is on the kind; the underlying cause stays reachable
// through Unwrap (e.g. errors.Is(err, fs.ErrNotExist)).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound: input missing or output location not creatable.
	ErrFileNotFound = errors.New("file not found")
	// ErrParse: input does not conform to FASTA.
	ErrParse = errors.New("parse error")
	// ErrWrite: output could not be written, flushed or closed.
	ErrWrite = errors.New("write error")
)

// Error ties a failure kind to the file and operation it happened on.
type Error struct {
	Kind error  // one of the sentinels above
	Op   string // open, create, read, write, close
	Path string
	Err  error
}

func (e *Error) Error() string {
	path := e.Path
	if path == "-" || path == "" {
		path = "<stdio>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newErr(kind error, op, path string, err error) error {
	if err == nil {
		return nil
	}
	var own *Error
	if errors.As(err, &own) {
		return err
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// NotFound wraps err as ErrFileNotFound. A nil err stays nil.
func NotFound(op, path string, err error) error { return newErr(ErrFileNotFound, op, path, err) }

// Parse wraps err as ErrParse. A nil err stays nil.
func Parse(path string, err error) error { return newErr(ErrParse, "read", path, err) }

// Write wraps err as ErrWrite. A nil err stays nil.
func Write(op, path string, err error) error { return newErr(ErrWrite, op, path, err) }

// Kind returns the sentinel kind of err, or nil when err is not classified.
func Kind(err error) error {
	for _, k := range []error{ErrFileNotFound, ErrParse, ErrWrite} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
