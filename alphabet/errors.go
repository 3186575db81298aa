package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when an alphabet contains no symbols.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// UnsupportedCharError indicates an alphabet character outside the supported
// character classes (uppercase alphanumerics plus "()[]{}<>,.|*").
type UnsupportedCharError struct {
	Char byte
}

func (e *UnsupportedCharError) Error() string {
	return fmt.Sprintf("unsupported alphabet character %q", e.Char)
}

// DuplicateCharError indicates a character that appears more than once in an
// alphabet.
type DuplicateCharError struct {
	Char byte
}

func (e *DuplicateCharError) Error() string {
	return fmt.Sprintf("duplicate alphabet character %q", e.Char)
}

// OverlapError indicates a character shared by the primary and secondary
// alphabets of a joint codec. The joiner uses character identity to
// disambiguate lookups, so the two alphabets must be disjoint.
type OverlapError struct {
	Char byte
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("alphabets overlap on character %q", e.Char)
}

// UnknownCharError indicates a sequence character that is not part of the
// codec's alphabet. Sequences are expected to be sanitized upstream.
type UnknownCharError struct {
	Char byte
	Pos  int
}

func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("character %q at position %d is not in the alphabet", e.Char, e.Pos)
}

// ShapeError indicates a matrix whose dimensions do not match the codec.
type ShapeError struct {
	Expected int
	Actual   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix width mismatch: expected %d columns, got %d", e.Expected, e.Actual)
}

// LengthMismatchError indicates paired inputs of different lengths (sequence
// vs. structure string, or sequence vs. PWM rows).
type LengthMismatchError struct {
	SeqLen   int
	OtherLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: sequence has %d positions, got %d", e.SeqLen, e.OtherLen)
}
