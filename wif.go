// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

import (
	"bytes"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// compressMagic is the magic byte appended to the private key material of a
// WIF encoding to signal the associated address was created from the hash of
// a compressed serialized public key.
const compressMagic byte = 0x01

// WIF contains the individual components described by the Wallet Import
// Format (WIF).  A WIF string is typically used to represent a private key
// and its associated address in a way that may be easily copied and imported
// into or exported from wallet software.  WIF strings may be decoded into
// this structure by calling DecodeWIF or created with a user-provided
// private key by calling NewWIF.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *secp256k1.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a compressed
	// (33-byte) serialized public key, rather than an uncompressed (65-byte)
	// one.
	CompressPubKey bool

	// netID is the network identifier byte used when the key is encoded as
	// a WIF string.
	netID byte
}

// NewWIF creates a new WIF structure to export the provided private key and
// its associated address as a string encoded in the Wallet Import Format.
// The net parameter specifies the magic byte of the network for which the
// WIF string is intended.
func NewWIF(privKey *secp256k1.PrivateKey, net byte, compress bool) *WIF {
	return &WIF{PrivKey: privKey, CompressPubKey: compress, netID: net}
}

// IsForNet returns whether or not the WIF structure is associated with the
// network identified by the provided magic byte.
func (w *WIF) IsForNet(net byte) bool {
	return w.netID == net
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format which is required to be for the network identified by
// the provided magic byte.
//
// The WIF string must be a base58-encoded string of the following byte
// sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - Optional 1 byte (equal to 0x01) if the address being imported or
//     exported was created by taking the RIPEMD160 after SHA256 hash of a
//     serialized compressed (33-byte) public key
//   - 4 bytes of checksum, must equal the first four bytes of the double
//     SHA256 of every byte before the checksum in this sequence
//
// If the base58-decoded byte sequence does not match this, DecodeWIF will
// return a non-nil error.  ErrMalformedPrivateKey is returned when the WIF
// is of an impossible length or the compression flag has an unexpected
// value.  ErrChecksumMismatch is returned if the expected WIF checksum does
// not match the calculated checksum.  ErrWrongWIFNetwork is returned when
// the WIF is valid but intended for a different network.
func DecodeWIF(wif string, net byte) (*WIF, error) {
	decoded := base58.Decode(wif)
	decodedLen := len(decoded)

	var compress bool
	switch decodedLen {
	case 1 + secp256k1.PrivKeyBytesLen + 1 + 4:
		if decoded[1+secp256k1.PrivKeyBytesLen] != compressMagic {
			str := "private key has an invalid compression flag"
			return nil, makeError(ErrMalformedPrivateKey, str)
		}
		compress = true
	case 1 + secp256k1.PrivKeyBytesLen + 4:
		compress = false
	default:
		str := fmt.Sprintf("malformed private key length of %d", decodedLen)
		return nil, makeError(ErrMalformedPrivateKey, str)
	}

	// Checksum is first four bytes of double SHA256 of the identifier byte
	// and privKey.  Verify this matches the final 4 bytes of the decoded
	// private key.
	var tosum []byte
	if compress {
		tosum = decoded[:1+secp256k1.PrivKeyBytesLen+1]
	} else {
		tosum = decoded[:1+secp256k1.PrivKeyBytesLen]
	}
	cksum := checksum(tosum)
	if !bytes.Equal(cksum[:], decoded[decodedLen-4:]) {
		str := "private key checksum mismatch"
		return nil, makeError(ErrChecksumMismatch, str)
	}

	netID := decoded[0]
	if netID != net {
		str := fmt.Sprintf("WIF is not for the network identified by %#02x",
			net)
		return nil, makeError(ErrWrongWIFNetwork, str)
	}

	privKeyBytes := decoded[1 : 1+secp256k1.PrivKeyBytesLen]
	privKey := secp256k1.PrivKeyFromBytes(privKeyBytes)
	return &WIF{PrivKey: privKey, CompressPubKey: compress, netID: netID}, nil
}

// String creates the Wallet Import Format string encoding of a WIF
// structure.  See DecodeWIF for a detailed breakdown of the format and
// requirements of a valid WIF string.
func (w *WIF) String() string {
	// Precalculate size.  Maximum number of bytes before base58 encoding is
	// one byte for the network, 32 bytes of binary-encoded private key,
	// possibly one extra byte if the pubkey is to be compressed, and finally
	// four bytes of checksum.
	encodeLen := 1 + secp256k1.PrivKeyBytesLen + 4
	if w.CompressPubKey {
		encodeLen++
	}

	a := make([]byte, 0, encodeLen)
	a = append(a, w.netID)
	a = append(a, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		a = append(a, compressMagic)
	}
	cksum := checksum(a)
	a = append(a, cksum[:]...)
	return base58.Encode(a)
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format.  The
// serialization format chosen depends on the value of w.CompressPubKey.
func (w *WIF) SerializePubKey() []byte {
	pk := w.PrivKey.PubKey()
	if w.CompressPubKey {
		return pk.SerializeCompressed()
	}
	return pk.SerializeUncompressed()
}
