// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zip32

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidKeyLen indicates that a serialized extended key is not the
	// required length.
	ErrInvalidKeyLen = ErrorKind("ErrInvalidKeyLen")

	// ErrInvalidScalar indicates that the ask or nsk component of a
	// serialized extended spending key is not a canonical Jubjub scalar.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint indicates that the ak or nk component of a serialized
	// extended full viewing key is not a point in the prime-order subgroup
	// of the Jubjub curve.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an extended key deserialization error.
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
