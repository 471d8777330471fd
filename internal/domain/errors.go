package domain

import (
	"errors"
	"fmt"
)

// The closed set of parse failure kinds. Every error returned by
// ParseAlmanac unwraps to exactly one of these, so callers can branch
// with errors.Is instead of matching message text.
var (
	// ErrMalformedSeeds marks a seed line missing its colon separator
	// or containing a non-numeric token.
	ErrMalformedSeeds = errors.New("malformed seeds line")

	// ErrMalformedHeader marks a table section whose first line lacks
	// the "-to-" separator.
	ErrMalformedHeader = errors.New("malformed table header")

	// ErrMalformedMapping marks a table body line that is not exactly
	// three non-negative integers.
	ErrMalformedMapping = errors.New("malformed range mapping")

	// ErrEmptyInput marks a document with no sections, or a minimum
	// taken over zero seeds.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError carries the failure kind together with the offending
// line and, when known, the offending token.
type ParseError struct {
	Kind  error
	Line  string
	Token string
}

func (e *ParseError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("%v: %q in line %q", e.Kind, e.Token, e.Line)
	case e.Line != "":
		return fmt.Sprintf("%v: line %q", e.Kind, e.Line)
	default:
		return e.Kind.Error()
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErr(kind error, line, token string) error {
	return &ParseError{Kind: kind, Line: line, Token: token}
}
