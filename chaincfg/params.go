// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// ZecNet represents which Zcash network a message belongs to.
type ZecNet uint32

// Constants used to indicate the message Zcash network.  The values are the
// network message start bytes interpreted as a little endian uint32.
const (
	// MainNet represents the main Zcash network.
	MainNet ZecNet = 0x6427e924

	// TestNet3 represents the test network (version 3).
	TestNet3 ZecNet = 0xbff91afa

	// RegNet represents the regression test network.
	RegNet ZecNet = 0x5f3fe8aa
)

// znStrings is a map of Zcash networks back to their constant names for
// pretty printing.
var znStrings = map[ZecNet]string{
	MainNet:  "MainNet",
	TestNet3: "TestNet3",
	RegNet:   "RegNet",
}

// String returns the ZecNet in human-readable form.
func (n ZecNet) String() string {
	if s, ok := znStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ZecNet (%d)", uint32(n))
}

// Params defines a Zcash network by its parameters.  These parameters may be
// used by Zcash applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net ZecNet

	// HRPSaplingPaymentAddress is the human-readable part of bech32 encoded
	// Sapling payment addresses for the network.
	HRPSaplingPaymentAddress string

	// HRPSaplingExtendedSpendingKey is the human-readable part of bech32
	// encoded Sapling extended spending keys for the network.
	HRPSaplingExtendedSpendingKey string

	// HRPSaplingExtendedFullViewingKey is the human-readable part of bech32
	// encoded Sapling extended full viewing keys for the network.
	HRPSaplingExtendedFullViewingKey string

	// Address encoding magics
	PubKeyHashAddrID [2]byte // First 2 bytes of a P2PKH address
	ScriptHashAddrID [2]byte // First 2 bytes of a P2SH address
	PrivateKeyID     byte    // First byte of a WIF private key

	// SLIP-0044 registered coin type used for BIP44, used in the hierarchical
	// deterministic path for address generation.
	// All SLIP-0044 registered coin types are defined here:
	// https://github.com/satoshilabs/slips/blob/master/slip-0044.md
	SLIP0044CoinType uint32
}

// SaplingAddrHRP returns the human-readable part of bech32 encoded Sapling
// payment addresses for the network the parameters define.
func (p *Params) SaplingAddrHRP() string {
	return p.HRPSaplingPaymentAddress
}

// SaplingSpendingKeyHRP returns the human-readable part of bech32 encoded
// Sapling extended spending keys for the network the parameters define.
func (p *Params) SaplingSpendingKeyHRP() string {
	return p.HRPSaplingExtendedSpendingKey
}

// SaplingViewingKeyHRP returns the human-readable part of bech32 encoded
// Sapling extended full viewing keys for the network the parameters define.
func (p *Params) SaplingViewingKeyHRP() string {
	return p.HRPSaplingExtendedFullViewingKey
}

// AddrIDPubKeyHash returns the magic prefix bytes for transparent
// pay-to-pubkey-hash addresses.
func (p *Params) AddrIDPubKeyHash() [2]byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHash returns the magic prefix bytes for transparent
// pay-to-script-hash addresses.
func (p *Params) AddrIDScriptHash() [2]byte {
	return p.ScriptHashAddrID
}
