package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Error is a failure of the spreadsheet codec while reading or writing a file.
type Error struct {
	Op   string // "open", "read", "template", "write"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("codec %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("codec %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}
