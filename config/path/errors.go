package path

import (
	"errors"
	"fmt"
)

// ErrMalformedPath is returned when a path expression cannot be tokenized.
var ErrMalformedPath = errors.New("malformed path")

// ErrTypeConflict is returned by reads that meet a scalar where a container is required.
var ErrTypeConflict = errors.New("type conflict")

// ErrUnsupportedOperation is returned for paths the matching mode cannot express.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// PathError describes a syntax problem at a byte offset of a path expression.
type PathError struct {
	Path   string
	Offset int
	Token  string
	Reason string
	Err    error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d (%q) in %q", e.Err, e.Reason, e.Offset, e.Token, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func malformed(path string, offset int, tok, reason string) error {
	return &PathError{
		Path:   path,
		Offset: offset,
		Token:  tok,
		Reason: reason,
		Err:    ErrMalformedPath,
	}
}
