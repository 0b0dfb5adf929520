// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zip32

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/dchest/blake2b"
	"github.com/zecsuite/zecutil/jubjub"
)

const (
	// ExtendedKeyLen is the length of a serialized Sapling extended key.
	ExtendedKeyLen = 169

	// fvkFingerprintPersonalizer is the BLAKE2b personalization used when
	// hashing a full viewing key into its fingerprint.
	fvkFingerprintPersonalizer = "ZcashSaplingFVFP"
)

// ExtendedSpendingKey houses a Sapling extended spending key along with the
// derivation metadata needed to place it in a key tree.  The scalar and key
// components are kept in their serialized little endian forms.
type ExtendedSpendingKey struct {
	Depth        uint8
	ParentFVKTag [4]byte
	ChildIndex   uint32
	ChainCode    [32]byte
	Ask          [32]byte
	Nsk          [32]byte
	Ovk          [32]byte
	Dk           [32]byte
}

// ExtendedFullViewingKey houses a Sapling extended full viewing key.  The
// spend validating key and nullifier deriving key are kept as parsed points
// that are known to be members of the prime-order subgroup.
type ExtendedFullViewingKey struct {
	Depth        uint8
	ParentFVKTag [4]byte
	ChildIndex   uint32
	ChainCode    [32]byte
	Ak           *jubjub.Point
	Nk           *jubjub.Point
	Ovk          [32]byte
	Dk           [32]byte
}

// isCanonicalScalar returns whether the given little endian encoded scalar is
// strictly less than the order of the Jubjub prime-order subgroup.
func isCanonicalScalar(scalar [32]byte) bool {
	var beBytes [32]byte
	for i, b := range scalar {
		beBytes[31-i] = b
	}
	return new(big.Int).SetBytes(beBytes[:]).Cmp(jubjub.Order) < 0
}

// ParseExtendedSpendingKey deserializes an extended spending key from its raw
// 169-byte form.  The spend authorizing key and proof authorizing key must be
// canonical scalars.
func ParseExtendedSpendingKey(serialized []byte) (*ExtendedSpendingKey, error) {
	if len(serialized) != ExtendedKeyLen {
		str := fmt.Sprintf("extended spending key length of %d is not %d",
			len(serialized), ExtendedKeyLen)
		return nil, makeError(ErrInvalidKeyLen, str)
	}

	var key ExtendedSpendingKey
	key.Depth = serialized[0]
	copy(key.ParentFVKTag[:], serialized[1:5])
	key.ChildIndex = binary.LittleEndian.Uint32(serialized[5:9])
	copy(key.ChainCode[:], serialized[9:41])
	copy(key.Ask[:], serialized[41:73])
	copy(key.Nsk[:], serialized[73:105])
	copy(key.Ovk[:], serialized[105:137])
	copy(key.Dk[:], serialized[137:169])

	if !isCanonicalScalar(key.Ask) {
		str := "spend authorizing key is not a canonical scalar"
		return nil, makeError(ErrInvalidScalar, str)
	}
	if !isCanonicalScalar(key.Nsk) {
		str := "proof authorizing key is not a canonical scalar"
		return nil, makeError(ErrInvalidScalar, str)
	}

	return &key, nil
}

// Serialize returns the raw 169-byte form of the extended spending key.
func (k *ExtendedSpendingKey) Serialize() []byte {
	var childIndex [4]byte
	binary.LittleEndian.PutUint32(childIndex[:], k.ChildIndex)

	serialized := make([]byte, 0, ExtendedKeyLen)
	serialized = append(serialized, k.Depth)
	serialized = append(serialized, k.ParentFVKTag[:]...)
	serialized = append(serialized, childIndex[:]...)
	serialized = append(serialized, k.ChainCode[:]...)
	serialized = append(serialized, k.Ask[:]...)
	serialized = append(serialized, k.Nsk[:]...)
	serialized = append(serialized, k.Ovk[:]...)
	serialized = append(serialized, k.Dk[:]...)
	return serialized
}

// Zero manually clears all fields and bytes in the extended spending key.
// This can be used to explicitly clear key material from memory for enhanced
// security against memory scraping.
func (k *ExtendedSpendingKey) Zero() {
	k.Depth = 0
	k.ParentFVKTag = [4]byte{}
	k.ChildIndex = 0
	k.ChainCode = [32]byte{}
	k.Ask = [32]byte{}
	k.Nsk = [32]byte{}
	k.Ovk = [32]byte{}
	k.Dk = [32]byte{}
}

// ParseExtendedFullViewingKey deserializes an extended full viewing key from
// its raw 169-byte form.  The spend validating key and nullifier deriving key
// must be points in the prime-order subgroup of the Jubjub curve.
func ParseExtendedFullViewingKey(serialized []byte) (*ExtendedFullViewingKey, error) {
	if len(serialized) != ExtendedKeyLen {
		str := fmt.Sprintf("extended full viewing key length of %d is not %d",
			len(serialized), ExtendedKeyLen)
		return nil, makeError(ErrInvalidKeyLen, str)
	}

	var key ExtendedFullViewingKey
	key.Depth = serialized[0]
	copy(key.ParentFVKTag[:], serialized[1:5])
	key.ChildIndex = binary.LittleEndian.Uint32(serialized[5:9])
	copy(key.ChainCode[:], serialized[9:41])
	copy(key.Ovk[:], serialized[105:137])
	copy(key.Dk[:], serialized[137:169])

	ak, err := jubjub.ParsePoint(serialized[41:73])
	if err != nil {
		str := fmt.Sprintf("invalid spend validating key: %v", err)
		return nil, makeError(ErrInvalidPoint, str)
	}
	if !ak.IsPrimeOrder() {
		str := "spend validating key is not of prime order"
		return nil, makeError(ErrInvalidPoint, str)
	}
	key.Ak = ak

	nk, err := jubjub.ParsePoint(serialized[73:105])
	if err != nil {
		str := fmt.Sprintf("invalid nullifier deriving key: %v", err)
		return nil, makeError(ErrInvalidPoint, str)
	}
	if !nk.IsPrimeOrder() {
		str := "nullifier deriving key is not of prime order"
		return nil, makeError(ErrInvalidPoint, str)
	}
	key.Nk = nk

	return &key, nil
}

// Serialize returns the raw 169-byte form of the extended full viewing key.
// The point components are serialized in their canonical form.
func (k *ExtendedFullViewingKey) Serialize() []byte {
	var childIndex [4]byte
	binary.LittleEndian.PutUint32(childIndex[:], k.ChildIndex)

	serialized := make([]byte, 0, ExtendedKeyLen)
	serialized = append(serialized, k.Depth)
	serialized = append(serialized, k.ParentFVKTag[:]...)
	serialized = append(serialized, childIndex[:]...)
	serialized = append(serialized, k.ChainCode[:]...)
	serialized = append(serialized, k.Ak.Serialize()...)
	serialized = append(serialized, k.Nk.Serialize()...)
	serialized = append(serialized, k.Ovk[:]...)
	serialized = append(serialized, k.Dk[:]...)
	return serialized
}

// Fingerprint returns the BLAKE2b-256 fingerprint of the full viewing key
// defined by ZIP 32.  It commits to the spend validating key, the nullifier
// deriving key, and the outgoing viewing key.
func (k *ExtendedFullViewingKey) Fingerprint() [32]byte {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(fvkFingerprintPersonalizer),
	})
	if err != nil {
		panic(err) // config is static and valid
	}
	h.Write(k.Ak.Serialize())
	h.Write(k.Nk.Serialize())
	h.Write(k.Ovk[:])

	var fingerprint [32]byte
	copy(fingerprint[:], h.Sum(nil))
	return fingerprint
}

// Tag returns the first four bytes of the full viewing key fingerprint.  A
// child key serializes the tag of its parent in place of a full parent
// fingerprint.
func (k *ExtendedFullViewingKey) Tag() [4]byte {
	fingerprint := k.Fingerprint()
	var tag [4]byte
	copy(tag[:], fingerprint[:4])
	return tag
}
