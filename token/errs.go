package token

import (
	"errors"
	"fmt"
)

var (
	// ErrDepth is an offset beyond the available depth.
	ErrDepth = errors.New("offset exceeds available depth")
	// ErrOffset is a malformed offset.
	ErrOffset = errors.New("malformed offset")
	// ErrPlacement is a ':' or line break where it cannot appear.
	ErrPlacement = errors.New("misplaced separator")
	// ErrMarker is a continuation line without a '|' or '+' marker.
	ErrMarker = errors.New("bad continuation marker")
)

// SyntaxError locates a recoverable syntax error.
type SyntaxError struct {
	Pos
	Filename string
	Err      error
}

func NewSyntaxError(err error, row, col int) *SyntaxError {
	return &SyntaxError{Pos: Pos{Row: row, Col: col}, Err: err}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%v at %s", e.Err, e.Pos)
	}
	return fmt.Sprintf("%s: %v at %s", e.Filename, e.Err, e.Pos)
}

// Kind returns the sentinel error kind of e.
func (e *SyntaxError) Kind() error {
	for _, k := range []error{ErrDepth, ErrOffset, ErrPlacement, ErrMarker} {
		if errors.Is(e.Err, k) {
			return k
		}
	}
	return e.Err
}
