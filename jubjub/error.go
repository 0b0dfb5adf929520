// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package jubjub

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrPointInvalidLen indicates that a serialized point is not the required
	// length.
	ErrPointInvalidLen = ErrorKind("ErrPointInvalidLen")

	// ErrPointYTooBig indicates that the y coordinate of a serialized point is
	// greater than or equal to the field prime.
	ErrPointYTooBig = ErrorKind("ErrPointYTooBig")

	// ErrPointNotOnCurve indicates that the y coordinate of a serialized point
	// does not correspond to any x coordinate on the curve.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a point decoding error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
