package smjson

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEnd is returned when the input ends mid-structure.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrExpectedStructure is returned when a value position holds
	// neither '{' nor '[' where a structure is required.
	ErrExpectedStructure = errors.New("expected object or array")

	// ErrExpectedKey is returned when an object member does not start
	// with a quoted key.
	ErrExpectedKey = errors.New("expected object key")

	// ErrExpectedColon is returned when an object key is not followed
	// by ':'.
	ErrExpectedColon = errors.New("expected colon after object key")

	// ErrUnknownLiteral is returned when a bare token is none of
	// integer, float, true, false or null.
	ErrUnknownLiteral = errors.New("unknown literal")

	// ErrUnexpectedChar is returned when a member is not followed by a
	// separator or the closing bracket.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrTrailingData is returned when non-whitespace bytes remain after
	// the top-level structure.
	ErrTrailingData = errors.New("trailing data after document")

	// ErrMaxDepth is returned when the input nests deeper than the
	// configured bound.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrNonFiniteFloat is returned by Encode for NaN or infinite float
	// values, which JSON cannot represent.
	ErrNonFiniteFloat = errors.New("non-finite float")
)

// SyntaxError describes a decode failure at a byte offset.
//
// The underlying taxonomy sentinel (ErrUnexpectedEnd, ErrExpectedKey, ...)
// can be matched via errors.Is.
type SyntaxError struct {
	Offset int
	msg    string
	cause  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at byte %d: %s", e.Offset, e.msg)
}

func (e *SyntaxError) Unwrap() error { return e.cause }
