package types

import (
	"errors"
	"fmt"
)

// ErrNoTag is returned when the requested tag version's magic marker is absent.
var ErrNoTag = errors.New("no tag present")

// IOError is returned when a file cannot be opened, read, sought or stat'ed.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// TruncatedTagError reports a v2 tag whose declared sizes overrun the bytes
// actually available. It is only returned under strict parsing; otherwise
// the condition is reported through Tag.Status and a Warning.
type TruncatedTagError struct {
	Path      string
	What      string
	Offset    int64
	Declared  int64
	Available int64
}

func (e *TruncatedTagError) Error() string {
	return fmt.Sprintf("%s: truncated tag at offset %d: %s declares %d bytes, %d available",
		e.Path, e.Offset, e.What, e.Declared, e.Available)
}

// Warning represents a non-fatal issue encountered during extraction.
//
// Warnings are collected in Tag.Warnings. Truncation and unusual v2
// header contents produce one.
type Warning struct {
	// Stage where the warning occurred: "header", "frames", "trailer"
	Stage string

	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
