// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/zecsuite/zecutil"
	"github.com/zecsuite/zecutil/chaincfg"
	"github.com/zecsuite/zecutil/zip32"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Encode  string `short:"e" long:"encode" description:"Treat arguments as hex-serialized entities of the given kind and print their text encodings (one of: addr, skey, vkey)"`
	TestNet bool   `long:"testnet" description:"Use the test network parameters"`
	RegNet  bool   `long:"regnet" description:"Use the regression test network parameters"`
}

// describe decodes a single textual entity against the given network
// parameters and prints a short report for it.  Extended keys are matched by
// their human-readable prefix, addresses and WIFs by attempting to decode
// them.
func describe(entity string, params *chaincfg.Params) error {
	lower := strings.ToLower(entity)
	switch {
	case strings.HasPrefix(lower, params.SaplingSpendingKeyHRP()+"1"):
		key, err := zecutil.DecodeExtendedSpendingKey(entity, params)
		if err != nil {
			return err
		}
		fmt.Printf("sapling extended spending key (%s)\n", params.Name)
		fmt.Printf("  depth:        %d\n", key.Depth)
		fmt.Printf("  parent tag:   %x\n", key.ParentFVKTag)
		fmt.Printf("  child index:  %d\n", key.ChildIndex)
		return nil

	case strings.HasPrefix(lower, params.SaplingViewingKeyHRP()+"1"):
		key, err := zecutil.DecodeExtendedFullViewingKey(entity, params)
		if err != nil {
			return err
		}
		fp := key.Fingerprint()
		fmt.Printf("sapling extended full viewing key (%s)\n", params.Name)
		fmt.Printf("  depth:        %d\n", key.Depth)
		fmt.Printf("  parent tag:   %x\n", key.ParentFVKTag)
		fmt.Printf("  child index:  %d\n", key.ChildIndex)
		fmt.Printf("  fingerprint:  %x\n", fp)
		return nil
	}

	addr, addrErr := zecutil.DecodeAddress(entity, params)
	if addrErr == nil {
		switch addr := addr.(type) {
		case *zecutil.AddressPubKeyHash:
			fmt.Printf("pay-to-pubkey-hash address (%s)\n", params.Name)
			fmt.Printf("  hash160:      %x\n", *addr.Hash160())
		case *zecutil.AddressScriptHash:
			fmt.Printf("pay-to-script-hash address (%s)\n", params.Name)
			fmt.Printf("  hash160:      %x\n", *addr.Hash160())
		case *zecutil.AddressSapling:
			payAddr := addr.PaymentAddress()
			fmt.Printf("sapling payment address (%s)\n", params.Name)
			fmt.Printf("  diversifier:  %x\n", payAddr.Diversifier)
			fmt.Printf("  pk_d:         %x\n", payAddr.PKD.Serialize())
		}
		fmt.Printf("  address:      %s\n", addr)
		return nil
	}

	wif, wifErr := zecutil.DecodeWIF(entity, params.PrivateKeyID)
	if wifErr == nil {
		pubKey := wif.SerializePubKey()
		payAddr, err := zecutil.NewAddressPubKeyHash(zecutil.Hash160(pubKey),
			params)
		if err != nil {
			return err
		}
		fmt.Printf("WIF private key (%s)\n", params.Name)
		fmt.Printf("  compressed:   %v\n", wif.CompressPubKey)
		fmt.Printf("  public key:   %x\n", pubKey)
		fmt.Printf("  p2pkh:        %s\n", payAddr)
		return nil
	}

	// A string that decodes far enough to be recognized as a WIF reports the
	// more specific WIF failure instead of the generic address error.
	if errors.Is(addrErr, zecutil.ErrUnsupportedAddress) &&
		!errors.Is(wifErr, zecutil.ErrMalformedPrivateKey) {

		return wifErr
	}
	return addrErr
}

// encode parses a single hex-serialized entity of the given kind and prints
// its canonical text encoding for the given network parameters.
func encode(kind, entity string, params *chaincfg.Params) error {
	serialized, err := hex.DecodeString(entity)
	if err != nil {
		return err
	}

	switch kind {
	case "addr":
		addr, err := zecutil.ParseSaplingPaymentAddress(serialized)
		if err != nil {
			return err
		}
		encoded, err := zecutil.EncodeSaplingPaymentAddress(addr, params)
		if err != nil {
			return err
		}
		fmt.Println(encoded)

	case "skey":
		key, err := zip32.ParseExtendedSpendingKey(serialized)
		if err != nil {
			return err
		}
		encoded, err := zecutil.EncodeExtendedSpendingKey(key, params)
		if err != nil {
			return err
		}
		fmt.Println(encoded)

	case "vkey":
		key, err := zip32.ParseExtendedFullViewingKey(serialized)
		if err != nil {
			return err
		}
		encoded, err := zecutil.EncodeExtendedFullViewingKey(key, params)
		if err != nil {
			return err
		}
		fmt.Println(encoded)
	}
	return nil
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] address-or-key..."
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) == 0 {
		usage(parser)
	}

	switch cfg.Encode {
	case "", "addr", "skey", "vkey":
	default:
		fmt.Fprintf(os.Stderr, "unknown entity kind %q\n", cfg.Encode)
		usage(parser)
	}

	// Multiple networks can't be selected simultaneously.
	params := chaincfg.MainNetParams()
	numNets := 0
	if cfg.TestNet {
		numNets++
		params = chaincfg.TestNet3Params()
	}
	if cfg.RegNet {
		numNets++
		params = chaincfg.RegNetParams()
	}
	if numNets > 1 {
		fatalf("the testnet and regnet params can't be used together " +
			"-- choose one of the two\n")
	}

	var failed bool
	for i, entity := range args {
		if i > 0 && cfg.Encode == "" {
			fmt.Println()
		}
		var err error
		if cfg.Encode != "" {
			err = encode(cfg.Encode, entity, params)
		} else {
			err = describe(entity, params)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", entity, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
