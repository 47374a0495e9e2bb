// Package spiralerrors provides the error taxonomy shared by the sizing, grid
// and codec packages.
//
// Every typed error matches its sentinel through errors.Is, so callers can
// classify a failure without a type assertion:
//
//	if _, err := codec.Decode(line); errors.Is(err, spiralerrors.ErrFormat) {
//	    // not an odd perfect square
//	}
//
// Use errors.As to reach the details (requested size, input length).
package spiralerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSize indicates a grid dimension that is too small, even, over the
	// global cell cap, or too small for the message.
	ErrSize = errors.New("size error")

	// ErrFormat indicates an encoded string whose length is not an odd
	// perfect square within the cell cap.
	ErrFormat = errors.New("format error")

	// ErrEmptyInput indicates a message that is empty or shorter than the
	// minimum message length.
	ErrEmptyInput = errors.New("empty input")
)

// SizeError reports an unusable grid dimension.
type SizeError struct {
	// Size is the offending grid dimension (0 if not yet chosen)
	Size int
	// Length is the message length the grid was sized for (0 if unknown)
	Length int
	// Reason describes the violated rule
	Reason string
}

// Error returns a human-readable error message.
func (e *SizeError) Error() string {
	msg := "size error"
	if e.Size > 0 {
		msg += fmt.Sprintf(" for grid %dx%d", e.Size, e.Size)
	}
	if e.Length > 0 {
		msg += fmt.Sprintf(" (message length %d)", e.Length)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SizeError) Is(target error) bool {
	return target == ErrSize
}

// FormatError reports an encoded string that cannot be laid out as a grid.
type FormatError struct {
	// Length is the length of the rejected encoded string
	Length int
	// Reason describes the violated rule
	Reason string
}

// Error returns a human-readable error message.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("format error for encoded length %d", e.Length)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// EmptyInputError reports a message below the minimum length.
type EmptyInputError struct {
	Length int
	Min    int
}

// Error returns a human-readable error message.
func (e *EmptyInputError) Error() string {
	if e.Length == 0 {
		return "empty input: no message given"
	}
	return fmt.Sprintf("empty input: message length %d is below minimum %d", e.Length, e.Min)
}

// Is reports whether target matches this error type.
func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}
