// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

import (
	"fmt"

	"github.com/zecsuite/zecutil/bech32"
	"github.com/zecsuite/zecutil/jubjub"
	"github.com/zecsuite/zecutil/zip32"
)

const (
	// SaplingDiversifierLen is the length of the diversifier component of a
	// Sapling payment address.
	SaplingDiversifierLen = 11

	// SaplingPaymentAddressLen is the length of a serialized Sapling payment
	// address.
	SaplingPaymentAddressLen = SaplingDiversifierLen + jubjub.PointBytesLen
)

// SaplingPaymentAddress represents the components of a shielded Sapling
// payment address.  It consists of an 11-byte diversifier and the
// diversified transmission key pk_d, which is required to be a member of the
// prime-order subgroup of the Jubjub curve.
type SaplingPaymentAddress struct {
	Diversifier [SaplingDiversifierLen]byte
	PKD         *jubjub.Point
}

// ParseSaplingPaymentAddress deserializes a Sapling payment address from its
// raw 43-byte form consisting of the diversifier followed by the compressed
// diversified transmission key.  The transmission key must decode to a point
// on the Jubjub curve that is a member of the prime-order subgroup.
func ParseSaplingPaymentAddress(serialized []byte) (*SaplingPaymentAddress, error) {
	if len(serialized) != SaplingPaymentAddressLen {
		str := fmt.Sprintf("payment address length of %d is not %d",
			len(serialized), SaplingPaymentAddressLen)
		return nil, makeError(ErrMalformedAddressData, str)
	}

	pkd, err := jubjub.ParsePoint(serialized[SaplingDiversifierLen:])
	if err != nil {
		str := fmt.Sprintf("invalid diversified transmission key: %v", err)
		return nil, makeError(ErrPointDecode, str)
	}
	if !pkd.IsPrimeOrder() {
		str := "diversified transmission key is not of prime order"
		return nil, makeError(ErrNotPrimeOrder, str)
	}

	addr := &SaplingPaymentAddress{PKD: pkd}
	copy(addr.Diversifier[:], serialized[:SaplingDiversifierLen])
	return addr, nil
}

// Serialize returns the raw 43-byte form of the payment address consisting
// of the diversifier followed by the compressed diversified transmission
// key.
func (a *SaplingPaymentAddress) Serialize() []byte {
	serialized := make([]byte, 0, SaplingPaymentAddressLen)
	serialized = append(serialized, a.Diversifier[:]...)
	serialized = append(serialized, a.PKD.Serialize()...)
	return serialized
}

// decodeBech32 decodes the provided bech32 encoded string, ensures its
// human-readable part matches the expected one, and regroups the data part
// into bytes.  There is no overall length restriction, so the several
// hundred character extended key encodings are accepted.
//
// Note that the decoder is lenient with respect to letter case on input,
// while all encoding performed by this package produces the canonical
// lowercase form.
func decodeBech32(expectedHRP, encoded string) ([]byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(encoded)
	if err != nil {
		return nil, err
	}
	if hrp != expectedHRP {
		str := fmt.Sprintf("decoded human-readable part %q is not %q", hrp,
			expectedHRP)
		return nil, makeError(ErrHRPMismatch, str)
	}

	return bech32.ConvertBits(data, 5, 8, false)
}

// EncodeSaplingPaymentAddress encodes the provided payment address in the
// bech32 format using the human-readable part the provided network defines
// for Sapling payment addresses.  The payment address is expected to carry a
// valid diversified transmission key, such as one produced by
// ParseSaplingPaymentAddress.
func EncodeSaplingPaymentAddress(addr *SaplingPaymentAddress, params AddressParams) (string, error) {
	return bech32.EncodeFromBase256(params.SaplingAddrHRP(), addr.Serialize())
}

// DecodeSaplingPaymentAddress decodes the provided bech32 encoded Sapling
// payment address and ensures it is encoded for the network identified by
// the provided parameters.
func DecodeSaplingPaymentAddress(encoded string, params AddressParams) (*SaplingPaymentAddress, error) {
	payload, err := decodeBech32(params.SaplingAddrHRP(), encoded)
	if err != nil {
		return nil, err
	}
	return ParseSaplingPaymentAddress(payload)
}

// EncodeExtendedSpendingKey encodes the provided extended spending key in
// the bech32 format using the human-readable part the provided network
// defines for Sapling extended spending keys.
func EncodeExtendedSpendingKey(key *zip32.ExtendedSpendingKey, params AddressParams) (string, error) {
	return bech32.EncodeFromBase256(params.SaplingSpendingKeyHRP(), key.Serialize())
}

// DecodeExtendedSpendingKey decodes the provided bech32 encoded Sapling
// extended spending key and ensures it is encoded for the network identified
// by the provided parameters.
func DecodeExtendedSpendingKey(encoded string, params AddressParams) (*zip32.ExtendedSpendingKey, error) {
	payload, err := decodeBech32(params.SaplingSpendingKeyHRP(), encoded)
	if err != nil {
		return nil, err
	}

	key, err := zip32.ParseExtendedSpendingKey(payload)
	if err != nil {
		str := fmt.Sprintf("invalid extended spending key: %v", err)
		return nil, makeError(ErrKeyDeserialize, str)
	}
	return key, nil
}

// EncodeExtendedFullViewingKey encodes the provided extended full viewing
// key in the bech32 format using the human-readable part the provided
// network defines for Sapling extended full viewing keys.
func EncodeExtendedFullViewingKey(key *zip32.ExtendedFullViewingKey, params AddressParams) (string, error) {
	return bech32.EncodeFromBase256(params.SaplingViewingKeyHRP(), key.Serialize())
}

// DecodeExtendedFullViewingKey decodes the provided bech32 encoded Sapling
// extended full viewing key and ensures it is encoded for the network
// identified by the provided parameters.
func DecodeExtendedFullViewingKey(encoded string, params AddressParams) (*zip32.ExtendedFullViewingKey, error) {
	payload, err := decodeBech32(params.SaplingViewingKeyHRP(), encoded)
	if err != nil {
		return nil, err
	}

	key, err := zip32.ParseExtendedFullViewingKey(payload)
	if err != nil {
		str := fmt.Sprintf("invalid extended full viewing key: %v", err)
		return nil, makeError(ErrKeyDeserialize, str)
	}
	return key, nil
}
