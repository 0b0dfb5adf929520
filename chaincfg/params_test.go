// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2016-2023 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
)

// allDefaultNetParams returns the parameters for all of the default networks
// for use in the tests.
func allDefaultNetParams() []*Params {
	return []*Params{MainNetParams(), TestNet3Params(), RegNetParams()}
}

// TestRequiredUnique ensures that the network parameter fields that are
// required to be unique are in fact unique for all of the provided default
// parameters.  The transparent address magics are excluded since the test
// networks share them.
func TestRequiredUnique(t *testing.T) {
	var (
		netMagics       = make(map[ZecNet]struct{})
		netNames        = make(map[string]struct{})
		saplingAddrHRPs = make(map[string]struct{})
		spendKeyHRPs    = make(map[string]struct{})
		viewKeyHRPs     = make(map[string]struct{})
	)

	for _, params := range allDefaultNetParams() {
		if _, ok := netMagics[params.Net]; ok {
			t.Fatalf("%q: duplicate network magic %x", params.Name,
				params.Net)
		}
		netMagics[params.Net] = struct{}{}

		if _, ok := netNames[params.Name]; ok {
			t.Fatalf("%q: duplicate network name", params.Name)
		}
		netNames[params.Name] = struct{}{}

		if _, ok := saplingAddrHRPs[params.HRPSaplingPaymentAddress]; ok {
			t.Fatalf("%q: duplicate payment address prefix %s", params.Name,
				params.HRPSaplingPaymentAddress)
		}
		saplingAddrHRPs[params.HRPSaplingPaymentAddress] = struct{}{}

		if _, ok := spendKeyHRPs[params.HRPSaplingExtendedSpendingKey]; ok {
			t.Fatalf("%q: duplicate spending key prefix %s", params.Name,
				params.HRPSaplingExtendedSpendingKey)
		}
		spendKeyHRPs[params.HRPSaplingExtendedSpendingKey] = struct{}{}

		if _, ok := viewKeyHRPs[params.HRPSaplingExtendedFullViewingKey]; ok {
			t.Fatalf("%q: duplicate viewing key prefix %s", params.Name,
				params.HRPSaplingExtendedFullViewingKey)
		}
		viewKeyHRPs[params.HRPSaplingExtendedFullViewingKey] = struct{}{}
	}
}

// TestAddressEncodingMagics ensures the address encoding magics and bech32
// human-readable parts match the published Zcash values for each network.
func TestAddressEncodingMagics(t *testing.T) {
	tests := []struct {
		params       *Params
		addrHRP      string
		spendKeyHRP  string
		viewKeyHRP   string
		pubKeyHashID [2]byte
		scriptHashID [2]byte
		privKeyID    byte
	}{{
		params:       MainNetParams(),
		addrHRP:      "zs",
		spendKeyHRP:  "secret-extended-key-main",
		viewKeyHRP:   "zxviews",
		pubKeyHashID: [2]byte{0x1c, 0xb8},
		scriptHashID: [2]byte{0x1c, 0xbd},
		privKeyID:    0x80,
	}, {
		params:       TestNet3Params(),
		addrHRP:      "ztestsapling",
		spendKeyHRP:  "secret-extended-key-test",
		viewKeyHRP:   "zxviewtestsapling",
		pubKeyHashID: [2]byte{0x1d, 0x25},
		scriptHashID: [2]byte{0x1c, 0xba},
		privKeyID:    0xef,
	}, {
		params:       RegNetParams(),
		addrHRP:      "zregtestsapling",
		spendKeyHRP:  "secret-extended-key-regtest",
		viewKeyHRP:   "zxviewregtestsapling",
		pubKeyHashID: [2]byte{0x1d, 0x25},
		scriptHashID: [2]byte{0x1c, 0xba},
		privKeyID:    0xef,
	}}

	for _, test := range tests {
		name := test.params.Name
		if hrp := test.params.SaplingAddrHRP(); hrp != test.addrHRP {
			t.Errorf("%q: unexpected payment address prefix -- got %s, "+
				"want %s", name, hrp, test.addrHRP)
		}
		if hrp := test.params.SaplingSpendingKeyHRP(); hrp != test.spendKeyHRP {
			t.Errorf("%q: unexpected spending key prefix -- got %s, want %s",
				name, hrp, test.spendKeyHRP)
		}
		if hrp := test.params.SaplingViewingKeyHRP(); hrp != test.viewKeyHRP {
			t.Errorf("%q: unexpected viewing key prefix -- got %s, want %s",
				name, hrp, test.viewKeyHRP)
		}
		if id := test.params.AddrIDPubKeyHash(); id != test.pubKeyHashID {
			t.Errorf("%q: unexpected p2pkh magic -- got %x, want %x", name,
				id, test.pubKeyHashID)
		}
		if id := test.params.AddrIDScriptHash(); id != test.scriptHashID {
			t.Errorf("%q: unexpected p2sh magic -- got %x, want %x", name,
				id, test.scriptHashID)
		}
		if id := test.params.PrivateKeyID; id != test.privKeyID {
			t.Errorf("%q: unexpected private key magic -- got %x, want %x",
				name, id, test.privKeyID)
		}
	}
}

// TestZecNetStringer tests the stringized output for Zcash net types.
func TestZecNetStringer(t *testing.T) {
	tests := []struct {
		in   ZecNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet3, "TestNet3"},
		{RegNet, "RegNet"},
		{0xffffffff, "Unknown ZecNet (4294967295)"},
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}
