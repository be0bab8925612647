// Copyright (c) 2015 The Decred developers
// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	sha256 "github.com/minio/sha256-simd"
)

// HashParts calculates hash(p0 || p1 || ...) without joining the parts first.
func HashParts(parts ...[]byte) Hash {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
