// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package jubjub implements group arithmetic on the Jubjub curve.

Jubjub is the twisted Edwards curve -x^2 + y^2 = 1 + d*x^2*y^2 over the scalar
field of BLS12-381 used by the Zcash Sapling protocol for its key material.
The package provides the operations needed to validate externally supplied
points: deserialization of the 32-byte compressed encoding, canonical
serialization, and membership checks for the prime-order subgroup that all
Sapling public key components are required to inhabit.

The arithmetic is variable time and therefore only suitable for operating on
public values such as decoded addresses and viewing keys.
*/
package jubjub
