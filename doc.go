// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package zecutil provides Zcash-specific convenience functions and types.

# Address Overview

The Address interface provides an abstraction for a Zcash address.  This
package currently provides implementations for the shielded Sapling payment
address type as well as the transparent pay-to-pubkey-hash and
pay-to-script-hash address types.  DecodeAddress decodes any of them from
their string encoding for a given network.

Shielded Sapling payment addresses are encoded with the bech32 checksummed
format, while transparent addresses use the base58 format with a two byte
address magic and a double SHA256 checksum.

# Sapling Key Overview

In addition to payment addresses, this package encodes and decodes the bech32
string forms of the Sapling extended spending and extended full viewing keys
defined by ZIP 32.  The raw forms of those keys are provided by the zip32
package.  Each entity uses a distinct human-readable part per network, so a
key or address encoded for one network will not decode for another.

# WIF Overview

A WIF provides encoding and decoding of private keys using the Wallet Import
Format.  The network a WIF string is intended for is identified by a leading
magic byte.
*/
package zecutil
