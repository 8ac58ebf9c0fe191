package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each member of the parse error taxonomy.
// Wrap them with errors.Is via the *ParseError returned from Parse.
var (
	// ErrUnclosedGroup: a '(' was consumed with no matching ')'.
	ErrUnclosedGroup = errors.New("unclosed group")

	// ErrTrailingInput: the top-level Disj succeeded but input remains.
	ErrTrailingInput = errors.New("trailing input")

	// ErrEmptyAlternative: the right-hand side of a '|' failed to parse
	// a Concat.
	ErrEmptyAlternative = errors.New("empty alternative")

	// ErrEmptyInput: a Disj production matched nothing, whether at the
	// top level or as the body of a group.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError wraps one of the sentinel errors above with the cursor
// position where parsing failed, following the same
// sentinel-plus-wrapping-struct shape as coregx's CompileError.
type ParseError struct {
	Err error
	Pos int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// ErrUnclosedGroup) works on a returned *ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newError(pos int, err error) *ParseError {
	return &ParseError{Err: err, Pos: pos}
}
