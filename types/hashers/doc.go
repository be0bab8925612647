// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hashers provides ready-made combiners for mtree trees.

Byte oriented combiners hash leaves as H(0x00 || data) and branches as
H(0x01 || left || right), so a leaf digest can never be mistaken for a branch
digest. 64-bit children are encoded big-endian before hashing.

	Name        Digest           Keyed
	sha256      chainhash.Hash   no
	keccak256   chainhash.Hash   no
	blake2b256  chainhash.Hash   no
	siphash     uint64           yes, 16 bytes
	xxhash      uint64           no

Polynomial is the arithmetic combiner LeafHash(x) = x, Combine(l, r) = l*31 + r.
It has no cryptographic value and exists for tests and worked examples.
*/
package hashers
