package seqset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when a dataset is constructed without input files.
	ErrNoFiles = errors.New("at least one class file is required")

	// ErrNoRecords is returned when the input files contain no records.
	ErrNoRecords = errors.New("no records loaded")

	// ErrInvalidPortions is returned when split portions are negative or sum
	// to more than 1.
	ErrInvalidPortions = errors.New("split portions must be non-negative and sum to at most 1")

	// ErrNotSplit is returned when a group other than "all" is resolved
	// before any split has been performed.
	ErrNotSplit = errors.New("dataset has not been split")

	// ErrInvalidBatchSize is returned when a batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be positive")

	// ErrEmptyGroup is returned when a batch iterator is requested for a
	// group that contains no records.
	ErrEmptyGroup = errors.New("group contains no records")

	// ErrBadSnapshot is returned when snapshot data is malformed or has an
	// unknown magic number or version.
	ErrBadSnapshot = errors.New("malformed snapshot")
)

// UnknownGroupError indicates a group name other than "train", "val", "test"
// or "all".
type UnknownGroupError struct {
	Group Group
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group %q", string(e.Group))
}

// ShapeMismatchError indicates a record whose encoded tensor shape differs
// from the rest of the dataset. All sequences must have the same length.
type ShapeMismatchError struct {
	Index    int
	WantRows int
	GotRows  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("all sequences must have the same length: record %d has %d positions, expected %d",
		e.Index, e.GotRows, e.WantRows)
}

// CountMismatchError indicates a feature file whose line count does not match
// the record count of the corresponding class file.
type CountMismatchError struct {
	File string
	Want int
	Got  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("number of values in %s (%d) doesn't match number of records (%d)", e.File, e.Got, e.Want)
}

// FileCountError indicates a feature-file list whose length does not match
// the class files the dataset was built from.
type FileCountError struct {
	Want int
	Got  int
}

func (e *FileCountError) Error() string {
	return fmt.Sprintf("number of feature files (%d) doesn't match number of class files (%d)", e.Got, e.Want)
}

// HeaderError indicates a multi-label header that is not a comma-separated
// list of non-negative class indices.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type HeaderError struct {
	File   string
	Header string
	cause  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("malformed multi-label header %q in %s", e.Header, e.File)
}

func (e *HeaderError) Unwrap() error { return e.cause }

// ParseValueError indicates a malformed numeric field in a PWM block or a
// feature file.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseValueError struct {
	File  string
	Value string
	cause error
}

func (e *ParseValueError) Error() string {
	return fmt.Sprintf("malformed numeric value %q in %s", e.Value, e.File)
}

func (e *ParseValueError) Unwrap() error { return e.cause }

// BlockError indicates a FASTA block with the wrong number of lines for the
// configured mode (sequence-only, sequence-structure, or PWM).
type BlockError struct {
	File      string
	Header    string
	WantLines int
	GotLines  int
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("record %q in %s has %d block lines, expected %d",
		e.Header, e.File, e.GotLines, e.WantLines)
}

// PWMRowError indicates a PWM row whose value count does not match the
// sequence length.
type PWMRowError struct {
	File     string
	Header   string
	Row      int
	WantCols int
	GotCols  int
}

func (e *PWMRowError) Error() string {
	return fmt.Sprintf("PWM row %d of record %q in %s has %d values, expected %d",
		e.Row, e.Header, e.File, e.GotCols, e.WantCols)
}

// SelectionError indicates a batch sub-selection position outside the group's
// index range.
type SelectionError struct {
	Position int
	Size     int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection position %d out of range for group of size %d", e.Position, e.Size)
}

// ClassIndexError indicates an out-of-range class index.
type ClassIndexError struct {
	Class      int
	NumClasses int
}

func (e *ClassIndexError) Error() string {
	return fmt.Sprintf("class index %d out of range [0,%d)", e.Class, e.NumClasses)
}
