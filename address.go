// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"github.com/decred/base58"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/zecsuite/zecutil/bech32"
)

// AddressParams defines an interface that is used to provide the parameters
// required when encoding and decoding addresses.  These values are typically
// well-defined and unique per network.
type AddressParams interface {
	// SaplingAddrHRP returns the human-readable part of bech32 encoded
	// Sapling payment addresses for the network the parameters define.
	SaplingAddrHRP() string

	// SaplingSpendingKeyHRP returns the human-readable part of bech32
	// encoded Sapling extended spending keys for the network the parameters
	// define.
	SaplingSpendingKeyHRP() string

	// SaplingViewingKeyHRP returns the human-readable part of bech32 encoded
	// Sapling extended full viewing keys for the network the parameters
	// define.
	SaplingViewingKeyHRP() string

	// AddrIDPubKeyHash returns the magic prefix bytes for transparent
	// pay-to-pubkey-hash addresses.
	AddrIDPubKeyHash() [2]byte

	// AddrIDScriptHash returns the magic prefix bytes for transparent
	// pay-to-script-hash addresses.
	AddrIDScriptHash() [2]byte
}

// Address is an interface type for any type of destination a transaction
// output may spend to.  This includes shielded Sapling payment addresses as
// well as transparent pay-to-pubkey-hash (P2PKH) and pay-to-script-hash
// (P2SH) addresses.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.  It is equivalent to calling Address, but is provided so
	// the type can be used as a fmt.Stringer.
	String() string

	// Address returns the string encoding of the payment address associated
	// with the Address value.
	Address() string
}

// Ensure the concrete address types implement the Address interface.
var (
	_ Address = (*AddressSapling)(nil)
	_ Address = (*AddressPubKeyHash)(nil)
	_ Address = (*AddressScriptHash)(nil)
)

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return calcHash(calcHash(buf, sha256.New()), ripemd160.New())
}

// checksum returns the first four bytes of the double SHA256 of the input.
func checksum(input []byte) (cksum [4]byte) {
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return
}

// encodeAddress returns a human-readable payment address given a ripemd160
// hash and netID which encodes the Zcash network and address type.  It is
// used in both pay-to-pubkey-hash (P2PKH) and pay-to-script-hash (P2SH)
// address encoding.
func encodeAddress(hash160 []byte, netID [2]byte) string {
	// Format is 2 bytes for a network and address class (i.e. P2PKH vs
	// P2SH), 20 bytes for a RIPEMD-160 hash, and 4 bytes of checksum.
	b := make([]byte, 0, 2+ripemd160.Size+4)
	b = append(b, netID[:]...)
	b = append(b, hash160[:ripemd160.Size]...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// probablySaplingAddr returns true when the provided string begins with the
// Sapling payment address human-readable part the provided network defines,
// followed by the bech32 separator.
func probablySaplingAddr(addr string, params AddressParams) bool {
	return strings.HasPrefix(strings.ToLower(addr), params.SaplingAddrHRP()+"1")
}

// probablyBase58Addr returns true when the provided string looks like a
// base58 encoded transparent address as determined by its length and only
// containing runes in the base58 alphabet.
func probablyBase58Addr(addr string) bool {
	// Supported transparent addresses always decode to 26 bytes, so their
	// base58 encoding is always 35 characters.
	if len(addr) != 35 {
		return false
	}

	// The modified base58 alphabet used consists of the characters
	// 123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz.
	for _, r := range addr {
		switch {
		case r >= '1' && r <= '9':
		case r >= 'A' && r <= 'Z':
			if r == 'I' || r == 'O' {
				return false
			}
		case r >= 'a' && r <= 'z':
			if r == 'l' {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// decodeBase58Address decodes the provided string as a base58 encoded
// transparent address and returns the relevant Address for the address magic
// it carries.
func decodeBase58Address(addr string, params AddressParams) (Address, error) {
	decoded := base58.Decode(addr)
	if len(decoded) != 2+ripemd160.Size+4 {
		str := fmt.Sprintf("failed to decode address %q: invalid length", addr)
		return nil, makeError(ErrMalformedAddress, str)
	}

	// The checksum is the first four bytes of the double SHA256 of the
	// address magic and payload and must match the final four bytes of the
	// decoded data.
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		str := fmt.Sprintf("failed to decode address %q: checksum mismatch",
			addr)
		return nil, makeError(ErrBadAddressChecksum, str)
	}

	// Decode the address according to the address type.
	payload := decoded[2 : 2+ripemd160.Size]
	netID := [2]byte{decoded[0], decoded[1]}
	switch netID {
	case params.AddrIDPubKeyHash():
		return newAddressPubKeyHash(payload, netID)

	case params.AddrIDScriptHash():
		return newAddressScriptHash(payload, netID)
	}

	str := fmt.Sprintf("address %q is not a supported type", addr)
	return nil, makeError(ErrUnsupportedAddress, str)
}

// DecodeAddress decodes the string encoding of an address and returns the
// relevant Address if it is a valid encoding for a known address type and is
// for the network identified by the provided parameters.
func DecodeAddress(addr string, params AddressParams) (Address, error) {
	switch {
	case probablySaplingAddr(addr, params):
		payAddr, err := DecodeSaplingPaymentAddress(addr, params)
		if err != nil {
			return nil, err
		}
		return &AddressSapling{hrp: params.SaplingAddrHRP(), payAddr: *payAddr}, nil

	case probablyBase58Addr(addr):
		return decodeBase58Address(addr, params)
	}

	str := fmt.Sprintf("address %q is not a supported type", addr)
	return nil, makeError(ErrUnsupportedAddress, str)
}

// AddressSapling is an Address for a shielded Sapling payment address.
type AddressSapling struct {
	hrp     string
	payAddr SaplingPaymentAddress
}

// NewAddressSapling returns a new AddressSapling for the provided payment
// address components.  The diversified transmission key of the payment
// address must be a member of the prime-order subgroup of the Jubjub curve.
func NewAddressSapling(payAddr *SaplingPaymentAddress, params AddressParams) (*AddressSapling, error) {
	if payAddr.PKD == nil {
		str := "diversified transmission key must not be nil"
		return nil, makeError(ErrMalformedAddressData, str)
	}
	if !payAddr.PKD.IsPrimeOrder() {
		str := "diversified transmission key is not of prime order"
		return nil, makeError(ErrNotPrimeOrder, str)
	}

	return &AddressSapling{hrp: params.SaplingAddrHRP(), payAddr: *payAddr}, nil
}

// PaymentAddress returns the diversifier and diversified transmission key
// components of the Sapling payment address.
func (a *AddressSapling) PaymentAddress() *SaplingPaymentAddress {
	payAddr := a.payAddr
	return &payAddr
}

// Address returns the string encoding of the Sapling payment address.
//
// Part of the Address interface.
func (a *AddressSapling) Address() string {
	encoded, err := bech32.EncodeFromBase256(a.hrp, a.payAddr.Serialize())
	if err != nil {
		return ""
	}
	return encoded
}

// String returns a human-readable string for the Sapling payment address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
//
// Part of the Address interface.
func (a *AddressSapling) String() string {
	return a.Address()
}

// AddressPubKeyHash is an Address for a transparent pay-to-pubkey-hash
// (P2PKH) transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160.Size]byte
	netID [2]byte
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with known leading identifier bytes for a network, rather than looking
// them up through its parameters.  This is useful when creating a new
// address structure from a string encoding where the identifier bytes are
// already known.
func newAddressPubKeyHash(pkHash []byte, netID [2]byte) (*AddressPubKeyHash, error) {
	// Check for a valid pubkey hash length.
	if len(pkHash) != ripemd160.Size {
		str := "pkHash must be 20 bytes"
		return nil, makeError(ErrMalformedAddressData, str)
	}

	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash.  pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, params AddressParams) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, params.AddrIDPubKeyHash())
}

// NewAddressPubKeyHashFromPubKey returns a new AddressPubKeyHash for the
// pay-to-pubkey-hash destination of the provided serialized secp256k1 public
// key, which may be in either compressed or uncompressed form.
func NewAddressPubKeyHashFromPubKey(serializedPubKey []byte, params AddressParams) (*AddressPubKeyHash, error) {
	// Ensure the provided serialized public key parses before committing to
	// its hash.
	_, err := secp256k1.ParsePubKey(serializedPubKey)
	if err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, makeError(ErrMalformedAddressData, str)
	}

	pkHash := Hash160(serializedPubKey)
	return newAddressPubKeyHash(pkHash, params.AddrIDPubKeyHash())
}

// Address returns the string encoding of a pay-to-pubkey-hash address.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) Address() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay to
// a pubkey hash.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
//
// Part of the Address interface.
func (a *AddressPubKeyHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the pubkey hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// AddressScriptHash is an Address for a transparent pay-to-script-hash
// (P2SH) transaction.
type AddressScriptHash struct {
	hash  [ripemd160.Size]byte
	netID [2]byte
}

// newAddressScriptHash is the internal API to create a script hash address
// with known leading identifier bytes for a network, rather than looking
// them up through its parameters.  This is useful when creating a new
// address structure from a string encoding where the identifier bytes are
// already known.
func newAddressScriptHash(scriptHash []byte, netID [2]byte) (*AddressScriptHash, error) {
	// Check for a valid script hash length.
	if len(scriptHash) != ripemd160.Size {
		str := "scriptHash must be 20 bytes"
		return nil, makeError(ErrMalformedAddressData, str)
	}

	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// NewAddressScriptHash returns a new AddressScriptHash for the
// pay-to-script-hash destination of the provided redeem script.
func NewAddressScriptHash(redeemScript []byte, params AddressParams) (*AddressScriptHash, error) {
	scriptHash := Hash160(redeemScript)
	return newAddressScriptHash(scriptHash, params.AddrIDScriptHash())
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash.  scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, params AddressParams) (*AddressScriptHash, error) {
	return newAddressScriptHash(scriptHash, params.AddrIDScriptHash())
}

// Address returns the string encoding of a pay-to-script-hash address.
//
// Part of the Address interface.
func (a *AddressScriptHash) Address() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay to
// a script hash.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling Address, but is provided so the type can be
// used as a fmt.Stringer.
//
// Part of the Address interface.
func (a *AddressScriptHash) String() string {
	return a.Address()
}

// Hash160 returns the underlying array of the script hash.  This can be
// useful when an array is more appropriate than a slice (for example, when
// used as map keys).
func (a *AddressScriptHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}
