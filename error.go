// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrMalformedAddress indicates an address failed to decode.
	ErrMalformedAddress = ErrorKind("ErrMalformedAddress")

	// ErrBadAddressChecksum indicates an address failed to decode due to an
	// invalid checksum.
	ErrBadAddressChecksum = ErrorKind("ErrBadAddressChecksum")

	// ErrMalformedAddressData indicates an address type constructor was
	// provided data of the wrong length or form for the type.
	ErrMalformedAddressData = ErrorKind("ErrMalformedAddressData")

	// ErrUnsupportedAddress indicates an unsupported address type.
	ErrUnsupportedAddress = ErrorKind("ErrUnsupportedAddress")

	// ErrHRPMismatch indicates a bech32 encoded address or key decoded
	// successfully, but carries a human-readable part other than the one the
	// network defines for the entity.
	ErrHRPMismatch = ErrorKind("ErrHRPMismatch")

	// ErrPointDecode indicates the diversified transmission key of a Sapling
	// payment address could not be decoded as a point on the Jubjub curve.
	ErrPointDecode = ErrorKind("ErrPointDecode")

	// ErrNotPrimeOrder indicates the diversified transmission key of a
	// Sapling payment address decoded to a point on the Jubjub curve that is
	// not a member of the prime-order subgroup.
	ErrNotPrimeOrder = ErrorKind("ErrNotPrimeOrder")

	// ErrKeyDeserialize indicates the payload of a bech32 encoded extended
	// key did not deserialize to a valid extended key.
	ErrKeyDeserialize = ErrorKind("ErrKeyDeserialize")

	// ErrMalformedPrivateKey indicates a WIF-encoded private key cannot be
	// decoded due to being improperly formatted.  This may occur if the byte
	// length is incorrect or an unexpected magic number was encountered.
	ErrMalformedPrivateKey = ErrorKind("ErrMalformedPrivateKey")

	// ErrChecksumMismatch indicates a WIF decoding failed due to a bad
	// checksum.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrWrongWIFNetwork indicates a WIF is not for the expected network.
	ErrWrongWIFNetwork = ErrorKind("ErrWrongWIFNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address or key encoding error.
//
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
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
