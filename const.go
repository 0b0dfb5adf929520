// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Copyright (c) 2024-2026 The zecsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zecutil

const (
	// ZatoshiPerZEC is the number of atomic units in one ZEC.
	ZatoshiPerZEC = 1e8

	// MaxAmount is the maximum transaction amount allowed in zatoshi.
	MaxAmount = 21e6 * ZatoshiPerZEC
)
