package docx

import (
	"errors"
	"fmt"
)

// errNotParsed reports use of a Reader whose document part was never
// decoded.
var errNotParsed = errors.New("document not parsed")

// OpenError indicates the input path is missing, unreadable, or not a
// valid DOCX package.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError indicates a failure while traversing or decoding document
// content after the package was opened successfully.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading document %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates a failure while assembling or saving the output
// package. When Save returns a WriteError the output file must not be
// treated as written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing document %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
