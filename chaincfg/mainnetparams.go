// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the network parameters for the main Zcash network.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  MainNet,

		// Human-readable parts for bech32 encoded Sapling material.
		HRPSaplingPaymentAddress:         "zs",
		HRPSaplingExtendedSpendingKey:    "secret-extended-key-main",
		HRPSaplingExtendedFullViewingKey: "zxviews",

		// Address encoding magics
		PubKeyHashAddrID: [2]byte{0x1c, 0xb8}, // starts with t1
		ScriptHashAddrID: [2]byte{0x1c, 0xbd}, // starts with t3
		PrivateKeyID:     0x80,                // starts with 5 (uncompressed) or K/L (compressed)

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		SLIP0044CoinType: 133, // SLIP0044, Zcash
	}
}
