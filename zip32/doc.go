// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zip32 implements the serialized forms of Sapling extended keys.
//
// This package deals with the raw 169-byte binary encodings defined by ZIP 32
// only.  The bech32 textual forms, along with the network specific
// human-readable parts, are provided by the parent zecutil package, and key
// derivation is intentionally out of scope.
//
// A serialized extended spending key stores the derivation metadata followed
// by the expanded spending key and the diversifier key:
//
//	depth (1) || parent fvk tag (4) || child index (4, little endian) ||
//	chain code (32) || ask (32) || nsk (32) || ovk (32) || dk (32)
//
// An extended full viewing key has the same layout except ask and nsk are
// replaced by the spend and nullifier validating keys ak and nk, which are
// points on the Jubjub curve.  Deserialization enforces the validity rules
// the shielded protocol requires: ask and nsk must be canonical scalars, and
// ak and nk must be points in the prime-order subgroup.
package zip32
