// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the network parameters for the regression test network.
// This should not be confused with the public test network.  The purpose of
// this network is primarily for unit tests and RPC server tests where a chain
// with an extremely low difficulty is wanted.
//
// Since this network is only intended for testing, its values are subject to
// change even if it would cause a hard fork.
func RegNetParams() *Params {
	return &Params{
		Name: "regnet",
		Net:  RegNet,

		// Human-readable parts for bech32 encoded Sapling material.
		HRPSaplingPaymentAddress:         "zregtestsapling",
		HRPSaplingExtendedSpendingKey:    "secret-extended-key-regtest",
		HRPSaplingExtendedFullViewingKey: "zxviewregtestsapling",

		// Address encoding magics.  The transparent address magics are shared
		// with the test network.
		PubKeyHashAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		ScriptHashAddrID: [2]byte{0x1c, 0xba}, // starts with t2
		PrivateKeyID:     0xef,                // starts with 9 (uncompressed) or c (compressed)

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		SLIP0044CoinType: 1, // SLIP0044, testnet (all coins)
	}
}
