// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidLength indicates the length of a bech32 string is invalid,
	// meaning it is either shorter than the minimum possible encoding or, for
	// the length-limited decoding variant, longer than the BIP 173 maximum.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidCharacter indicates a bech32 string contains a character
	// outside of the printable US-ASCII range.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrMixedCase indicates a bech32 string contains both lowercase and
	// uppercase characters.
	ErrMixedCase = ErrorKind("ErrMixedCase")

	// ErrInvalidSeparatorIndex indicates the separator character is either
	// missing from a bech32 string or at an invalid position within it.
	ErrInvalidSeparatorIndex = ErrorKind("ErrInvalidSeparatorIndex")

	// ErrNonCharsetChar indicates a character in the data section of a bech32
	// string is not a member of the bech32 charset.
	ErrNonCharsetChar = ErrorKind("ErrNonCharsetChar")

	// ErrInvalidChecksum indicates the checksum of a bech32 string does not
	// match the checksum calculated from its human-readable part and data.
	ErrInvalidChecksum = ErrorKind("ErrInvalidChecksum")

	// ErrInvalidDataByte indicates a byte provided for encoding exceeds the
	// maximum value representable by a 5-bit group.
	ErrInvalidDataByte = ErrorKind("ErrInvalidDataByte")

	// ErrInvalidBitGroups indicates a bit conversion was requested with group
	// sizes outside of the supported range of 1 through 8.
	ErrInvalidBitGroups = ErrorKind("ErrInvalidBitGroups")

	// ErrInvalidIncompleteGroup indicates a non-padded bit conversion was left
	// with an incomplete group that is either longer than 4 bits or contains
	// non-zero bits, meaning the input was malformed or truncated.
	ErrInvalidIncompleteGroup = ErrorKind("ErrInvalidIncompleteGroup")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a bech32 encoding or decoding error.
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
