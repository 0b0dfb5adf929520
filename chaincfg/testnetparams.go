// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNet3Params returns the network parameters for the test currency network.
// This network is sometimes simply called "testnet".  It is the third public
// iteration of the test network and matches the "testnet3" data directory used
// by the reference node software.
func TestNet3Params() *Params {
	return &Params{
		Name: "testnet3",
		Net:  TestNet3,

		// Human-readable parts for bech32 encoded Sapling material.
		HRPSaplingPaymentAddress:         "ztestsapling",
		HRPSaplingExtendedSpendingKey:    "secret-extended-key-test",
		HRPSaplingExtendedFullViewingKey: "zxviewtestsapling",

		// Address encoding magics
		PubKeyHashAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		ScriptHashAddrID: [2]byte{0x1c, 0xba}, // starts with t2
		PrivateKeyID:     0xef,                // starts with 9 (uncompressed) or c (compressed)

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		SLIP0044CoinType: 1, // SLIP0044, testnet (all coins)
	}
}
