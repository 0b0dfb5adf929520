// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/zecsuite/zecutil/bech32"
	"github.com/zecsuite/zecutil/chaincfg"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only)
// be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// Payment addresses with an all-zero diversifier over the same diversified
// transmission key, one per supported network.
const (
	paymentAddrMain = "zs1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5ht37z38jt" +
		"fyw0ygmp0ja6hhf07twjqj2ug6x"
	paymentAddrTest = "ztestsapling1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5" +
		"ht37z38jtfyw0ygmp0ja6hhf07twjq6awtaj"
	paymentAddrReg = "zregtestsapling1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7n" +
		"e5ht37z38jtfyw0ygmp0ja6hhf07twjq9e8xv4"
)

// Extended key encodings for the keys also used by the zip32 tests, along
// with the raw serializations they decode to.
const (
	spendingKeyMain = "secret-extended-key-main1qsqsyqcyqsqqpqqqqypqxpq9qcr" +
		"sszg2pvxq6rs0zqg3yyc5z5tpwxqergd3c8g7rluk8mm8uerwerptq9p5tys9eezy" +
		"w3vpwnflpaa2a38jh9agtvdqh4rnjkjrpml78qxqntn39zcp8mrk3ud0cmrumt3g8" +
		"v5k2s4h7xqdapqx4ycanxuehkvqwu2ufge8e2trvfrxd0pf2gq8r8qzv7t73pvjjg" +
		"dcll03s8nxkxlk358flxjlyz04kherj4canelavn6pr0lddxgqmd3ur"
	spendingKeyTest = "secret-extended-key-test1qsqsyqcyqsqqpqqqqypqxpq9qcr" +
		"sszg2pvxq6rs0zqg3yyc5z5tpwxqergd3c8g7rluk8mm8uerwerptq9p5tys9eezy" +
		"w3vpwnflpaa2a38jh9agtvdqh4rnjkjrpml78qxqntn39zcp8mrk3ud0cmrumt3g8" +
		"v5k2s4h7xqdapqx4ycanxuehkvqwu2ufge8e2trvfrxd0pf2gq8r8qzv7t73pvjjg" +
		"dcll03s8nxkxlk358flxjlyz04kherj4canelavn6pr0lddxgt8fnyr"
	viewingKeyMain = "zxviews1q002m0h0qyqqpqpqyy3zxfp9ycnjs2f29vkz6t30xqcny" +
		"ve5x5mrwwpe8ganc0f78ugpsuxf544jp24dz9xevmvhjg6fr37qyqe5jmd6dteega" +
		"ss78su42eey9ls2unc60lm7refjfswkq3aweelxfyzkkyjq0ejtagwsur0hnmjx24" +
		"gx0pkrnvrt5rmrlemag43jh8x86ss78s5gntdl68fvch09fvkv8uvr6jdw474sxey" +
		"lgeensxn6aqtppahlnxe3x36dwwf9lc6rtnem"
	viewingKeyTest = "zxviewtestsapling1q002m0h0qyqqpqpqyy3zxfp9ycnjs2f29vk" +
		"z6t30xqcnyve5x5mrwwpe8ganc0f78ugpsuxf544jp24dz9xevmvhjg6fr37qyqe5" +
		"jmd6dteegass78su42eey9ls2unc60lm7refjfswkq3aweelxfyzkkyjq0ejtagws" +
		"ur0hnmjx24gx0pkrnvrt5rmrlemag43jh8x86ss78s5gntdl68fvch09fvkv8uvr6" +
		"jdw474sxeylgeensxn6aqtppahlnxe3x36dwwf9lcmp6fls"

	spendingKeyHex = "040102030404000080" +
		"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f" +
		"f963ef67e646ec8c2b0143459205ce4447458174d3f0f7aaec4f2b97a85b1a0b" +
		"d47395a430effe380c09ae7128b013ec768f1afc6c7cdae283b296542b7f180d" +
		"e8406a931d99b99bd9807715c4a327ca963624666bc295200719c026797e8859" +
		"2921b8ffdf181e66b1bf68d0e9f9a5f209f5b5f239571d9e7fd64f411bfed699"
	viewingKeyHex = "03deadbeef01000080" +
		"202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f" +
		"101870c9a56b20aaad114d966d97923491c7c02033496dba6af3947610f1e1ca" +
		"ab39217f057278d3ffbf0f299260eb023d7673f32482b589203f325f50e8706f" +
		"bcf7232aa833c361cd835d07b1ff3bea2b195ce63ea10f1e1444d6dfe8e9662e" +
		"f2a59661f8c1ea4d757d581b24fa3399c0d3d740b087b7fccd989a3a6b9c92ff"
)

// TestDecodeSaplingPaymentAddress ensures decoding Sapling payment addresses
// produces the expected components for all supported networks, that decoding
// is lenient with respect to letter case, and that re-encoding the decoded
// components produces the canonical lowercase form.
func TestDecodeSaplingPaymentAddress(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNet3Params()
	regNetParams := chaincfg.RegNetParams()

	tests := []struct {
		name            string        // test description
		addr            string        // address to decode
		params          AddressParams // params for the expected network
		wantDiversifier string        // expected diversifier hex
		wantPKD         string        // expected transmission key hex
		wantEncoded     string        // expected canonical reencoding
	}{{
		name:            "mainnet",
		addr:            paymentAddrMain,
		params:          mainNetParams,
		wantDiversifier: "0000000000000000000000",
		wantPKD:         "0c31a7b8c11a13ebc8d091e9e6975c7c289e4b491cf223617cbbabdd2ff2dd20",
		wantEncoded:     paymentAddrMain,
	}, {
		name:            "testnet",
		addr:            paymentAddrTest,
		params:          testNetParams,
		wantDiversifier: "0000000000000000000000",
		wantPKD:         "0c31a7b8c11a13ebc8d091e9e6975c7c289e4b491cf223617cbbabdd2ff2dd20",
		wantEncoded:     paymentAddrTest,
	}, {
		name:            "regnet",
		addr:            paymentAddrReg,
		params:          regNetParams,
		wantDiversifier: "0000000000000000000000",
		wantPKD:         "0c31a7b8c11a13ebc8d091e9e6975c7c289e4b491cf223617cbbabdd2ff2dd20",
		wantEncoded:     paymentAddrReg,
	}, {
		name:            "mainnet all uppercase",
		addr:            strings.ToUpper(paymentAddrMain),
		params:          mainNetParams,
		wantDiversifier: "0000000000000000000000",
		wantPKD:         "0c31a7b8c11a13ebc8d091e9e6975c7c289e4b491cf223617cbbabdd2ff2dd20",
		wantEncoded:     paymentAddrMain,
	}}

	for _, test := range tests {
		addr, err := DecodeSaplingPaymentAddress(test.addr, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		gotDiversifier := hex.EncodeToString(addr.Diversifier[:])
		if gotDiversifier != test.wantDiversifier {
			t.Errorf("%s: mismatched diversifier -- got %s, want %s",
				test.name, gotDiversifier, test.wantDiversifier)
			continue
		}

		gotPKD := hex.EncodeToString(addr.PKD.Serialize())
		if gotPKD != test.wantPKD {
			t.Errorf("%s: mismatched transmission key -- got %s, want %s",
				test.name, gotPKD, test.wantPKD)
			continue
		}

		encoded, err := EncodeSaplingPaymentAddress(addr, test.params)
		if err != nil {
			t.Errorf("%s: unexpected encode error: %v", test.name, err)
			continue
		}
		if encoded != test.wantEncoded {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				encoded, test.wantEncoded)
			continue
		}
	}
}

// TestDecodeSaplingPaymentAddressErrors ensures decoding Sapling payment
// addresses fails with the expected error for a variety of malformed
// encodings, including encodings for another network, corrupted checksums,
// invalid padding, and transmission keys that are not valid members of the
// prime-order subgroup.
func TestDecodeSaplingPaymentAddressErrors(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNet3Params()

	tests := []struct {
		name   string        // test description
		addr   string        // address to decode
		params AddressParams // params for the expected network
		err    error         // expected error
	}{{
		name:   "mainnet address decoded for testnet",
		addr:   paymentAddrMain,
		params: testNetParams,
		err:    ErrHRPMismatch,
	}, {
		name:   "testnet address decoded for mainnet",
		addr:   paymentAddrTest,
		params: mainNetParams,
		err:    ErrHRPMismatch,
	}, {
		name: "corrupted final checksum character",
		addr: "zs1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5ht37z38jtfyw0ygmp0j" +
			"a6hhf07twjqj2ug6q",
		params: mainNetParams,
		err:    bech32.ErrInvalidChecksum,
	}, {
		name: "corrupted data character",
		addr: "zs1qqqqqqqqqqqqqqqqqqkrrfaccydp867g6zg7ne5ht37z38jtfyw0ygmp0j" +
			"a6hhf07twjqj2ug6x",
		params: mainNetParams,
		err:    bech32.ErrInvalidChecksum,
	}, {
		name:   "mixed case",
		addr:   paymentAddrMain[:len(paymentAddrMain)-1] + "X",
		params: mainNetParams,
		err:    bech32.ErrMixedCase,
	}, {
		name: "character outside of the charset",
		addr: "zs1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5ht37z38jtfyw0ygmp0j" +
			"a6hhf07twjqj2ug6b",
		params: mainNetParams,
		err:    bech32.ErrNonCharsetChar,
	}, {
		name: "nonzero padding bits",
		addr: "zs1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5ht37z38jtfyw0ygmp0j" +
			"a6hhf07twjp0uga85",
		params: mainNetParams,
		err:    bech32.ErrInvalidIncompleteGroup,
	}, {
		name: "too many padding bits",
		addr: "zs1qqqqqqqqqqqqqqqqqqxrrfaccydp867g6zg7ne5ht37z38jtfyw0ygmp0j" +
			"a6hhf07twjqqvcpppl",
		params: mainNetParams,
		err:    bech32.ErrInvalidIncompleteGroup,
	}, {
		name: "payload one byte short",
		addr: "zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
			"qqqqqqqqqq5mtsnu",
		params: mainNetParams,
		err:    ErrMalformedAddressData,
	}, {
		name: "transmission key not on the curve",
		addr: "zs1qqqqqqqqqqqqqqqqqqpqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
			"qqqqqqqqqqq547u43",
		params: mainNetParams,
		err:    ErrPointDecode,
	}, {
		name: "transmission key y coordinate not canonical",
		addr: "zs1qqqqqqqqqqqqqqqqqqqsqqqqlllllll7t0l07q4yh4fstk9ppyydswfnfp" +
			"7e622n5lkhxdsgd7g",
		params: mainNetParams,
		err:    ErrPointDecode,
	}, {
		name: "transmission key of mixed order",
		addr: "zs1qqqqqqqqqqqqqqqqqqpsqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
			"qqqqqqqqqqqcucg4n",
		params: mainNetParams,
		err:    ErrNotPrimeOrder,
	}, {
		name: "transmission key of low order",
		addr: "zs1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
			"qqqqqqqqqqqpq6d8g",
		params: mainNetParams,
		err:    ErrNotPrimeOrder,
	}}

	for _, test := range tests {
		_, err := DecodeSaplingPaymentAddress(test.addr, test.params)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
	}
}

// TestDecodeExtendedSpendingKey ensures decoding extended spending keys
// produces the expected raw serialization for all networks with an encoding
// and that re-encoding produces the canonical lowercase form.
func TestDecodeExtendedSpendingKey(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNet3Params()

	tests := []struct {
		name    string        // test description
		encoded string        // encoded key to decode
		params  AddressParams // params for the expected network
	}{
		{"mainnet", spendingKeyMain, mainNetParams},
		{"testnet", spendingKeyTest, testNetParams},
		{"mainnet all uppercase", strings.ToUpper(spendingKeyMain), mainNetParams},
	}

	for _, test := range tests {
		key, err := DecodeExtendedSpendingKey(test.encoded, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		if !bytes.Equal(key.Serialize(), hexToBytes(spendingKeyHex)) {
			t.Errorf("%s: mismatched serialization -- got %x, want %s",
				test.name, key.Serialize(), spendingKeyHex)
			continue
		}

		// Spot check a couple of the decoded fields.
		if key.Depth != 4 {
			t.Errorf("%s: mismatched depth -- got %d, want 4", test.name,
				key.Depth)
			continue
		}
		if key.ChildIndex != 0x80000004 {
			t.Errorf("%s: mismatched child index -- got %#08x, want "+
				"0x80000004", test.name, key.ChildIndex)
			continue
		}

		reencoded, err := EncodeExtendedSpendingKey(key, test.params)
		if err != nil {
			t.Errorf("%s: unexpected encode error: %v", test.name, err)
			continue
		}
		if want := strings.ToLower(test.encoded); reencoded != want {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				reencoded, want)
			continue
		}
	}
}

// TestDecodeExtendedFullViewingKey ensures decoding extended full viewing
// keys produces the expected raw serialization for all networks with an
// encoding and that re-encoding produces the canonical lowercase form.
func TestDecodeExtendedFullViewingKey(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNet3Params()

	tests := []struct {
		name    string        // test description
		encoded string        // encoded key to decode
		params  AddressParams // params for the expected network
	}{
		{"mainnet", viewingKeyMain, mainNetParams},
		{"testnet", viewingKeyTest, testNetParams},
		{"mainnet all uppercase", strings.ToUpper(viewingKeyMain), mainNetParams},
	}

	for _, test := range tests {
		key, err := DecodeExtendedFullViewingKey(test.encoded, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}

		if !bytes.Equal(key.Serialize(), hexToBytes(viewingKeyHex)) {
			t.Errorf("%s: mismatched serialization -- got %x, want %s",
				test.name, key.Serialize(), viewingKeyHex)
			continue
		}

		// Spot check a couple of the decoded fields.
		if key.Depth != 3 {
			t.Errorf("%s: mismatched depth -- got %d, want 3", test.name,
				key.Depth)
			continue
		}
		wantTag := [4]byte{0xde, 0xad, 0xbe, 0xef}
		if key.ParentFVKTag != wantTag {
			t.Errorf("%s: mismatched parent tag -- got %x, want %x",
				test.name, key.ParentFVKTag, wantTag)
			continue
		}

		reencoded, err := EncodeExtendedFullViewingKey(key, test.params)
		if err != nil {
			t.Errorf("%s: unexpected encode error: %v", test.name, err)
			continue
		}
		if want := strings.ToLower(test.encoded); reencoded != want {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				reencoded, want)
			continue
		}
	}
}

// TestDecodeExtendedKeyErrors ensures decoding extended keys fails with the
// expected error for encodings of another network, corrupted checksums, and
// payloads that do not deserialize to valid keys.
func TestDecodeExtendedKeyErrors(t *testing.T) {
	mainNetParams := chaincfg.MainNetParams()
	testNetParams := chaincfg.TestNet3Params()

	tests := []struct {
		name    string        // test description
		viewing bool          // decode as a viewing key
		encoded string        // encoded key to decode
		params  AddressParams // params for the expected network
		err     error         // expected error
	}{{
		name:    "spending key decoded for mainnet",
		encoded: spendingKeyTest,
		params:  mainNetParams,
		err:     ErrHRPMismatch,
	}, {
		name:    "spending key with corrupted checksum",
		encoded: spendingKeyMain[:len(spendingKeyMain)-1] + "s",
		params:  mainNetParams,
		err:     bech32.ErrInvalidChecksum,
	}, {
		name: "spending key with non-canonical spend authorizing key",
		encoded: "secret-extended-key-main1qsqsyqcyqsqqpqqqqypqxpq9qcrsszg2pv" +
			"xq6rs0zqg3yyc5z5tpwxqergd3c8g7r7mjea7ktc8f05yzzryveyeqdznqqwe5qyq" +
			"nkecx4xhnxe02k37sa4rnjkjrpml78qxqntn39zcp8mrk3ud0cmrumt3g8v5k2s4h" +
			"7xqdapqx4ycanxuehkvqwu2ufge8e2trvfrxd0pf2gq8r8qzv7t73pvjjgdcll03s" +
			"8nxkxlk358flxjlyz04kherj4canelavn6pr0lddxgyrf9wt",
		params: mainNetParams,
		err:    ErrKeyDeserialize,
	}, {
		name:    "spending key with empty payload",
		encoded: "secret-extended-key-main1yqaxcp",
		params:  mainNetParams,
		err:     ErrKeyDeserialize,
	}, {
		name:    "viewing key decoded for testnet",
		viewing: true,
		encoded: viewingKeyMain,
		params:  testNetParams,
		err:     ErrHRPMismatch,
	}, {
		name:    "viewing key with non-subgroup spend validating key",
		viewing: true,
		encoded: "zxviews1q002m0h0qyqqpqpqyy3zxfp9ycnjs2f29vkz6t30xqcnyve5x5m" +
			"rwwpe8ganc0f78upsqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq" +
			"qp2eey9ls2unc60lm7refjfswkq3aweelxfyzkkyjq0ejtagwsur0hnmjx24gx0pk" +
			"rnvrt5rmrlemag43jh8x86ss78s5gntdl68fvch09fvkv8uvr6jdw474sxeylgeen" +
			"sxn6aqtppahlnxe3x36dwwf9lc9uwjec",
		params: mainNetParams,
		err:    ErrKeyDeserialize,
	}, {
		name:    "viewing key with empty payload",
		viewing: true,
		encoded: "zxviews1yaasf5",
		params:  mainNetParams,
		err:     ErrKeyDeserialize,
	}}

	for _, test := range tests {
		var err error
		if test.viewing {
			_, err = DecodeExtendedFullViewingKey(test.encoded, test.params)
		} else {
			_, err = DecodeExtendedSpendingKey(test.encoded, test.params)
		}
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error -- got %v, want %v", test.name,
				err, test.err)
			continue
		}
	}
}
