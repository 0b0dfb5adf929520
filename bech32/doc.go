// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Copyright (c) 2024 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173.

Bech32 strings consist of a human-readable part (HRP), followed by the
separator 1, then a base32-encoded data section which includes a 6-character
checksum.  It is the textual format used by Zcash for Sapling shielded payment
addresses and extended keys, where the encoded data section routinely exceeds
the 90-character limit BIP 173 imposes, so decoding variants both with and
without that limit are provided.
*/
package bech32
