// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashers

import (
	"hash"

	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/chainhash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	leafPrefix   byte = 0x00
	branchPrefix byte = 0x01
)

var (
	_ mtree.Combiner[[]byte, chainhash.Hash] = SHA256{}
	_ mtree.Combiner[[]byte, chainhash.Hash] = Keccak256{}
	_ mtree.Combiner[[]byte, chainhash.Hash] = Blake2b256{}
)

// SHA256 hashes with SHA-256.
type SHA256 struct{}

func (SHA256) LeafHash(data []byte) chainhash.Hash {
	return chainhash.HashParts([]byte{leafPrefix}, data)
}

func (SHA256) Combine(left, right chainhash.Hash) chainhash.Hash {
	return chainhash.HashParts([]byte{branchPrefix}, left[:], right[:])
}

// Keccak256 hashes with the legacy Keccak-256 used by Ethereum.
type Keccak256 struct{}

func (Keccak256) LeafHash(data []byte) chainhash.Hash {
	return sum(sha3.NewLegacyKeccak256(), []byte{leafPrefix}, data)
}

func (Keccak256) Combine(left, right chainhash.Hash) chainhash.Hash {
	return sum(sha3.NewLegacyKeccak256(), []byte{branchPrefix}, left[:], right[:])
}

// Blake2b256 hashes with unkeyed BLAKE2b-256.
type Blake2b256 struct{}

func (Blake2b256) LeafHash(data []byte) chainhash.Hash {
	return sum(newBlake2b(), []byte{leafPrefix}, data)
}

func (Blake2b256) Combine(left, right chainhash.Hash) chainhash.Hash {
	return sum(newBlake2b(), []byte{branchPrefix}, left[:], right[:])
}

func newBlake2b() hash.Hash {
	// Only a key longer than 64 bytes makes New256 fail.
	h, _ := blake2b.New256(nil)
	return h
}

func sum(h hash.Hash, parts ...[]byte) chainhash.Hash {
	for _, p := range parts {
		h.Write(p)
	}

	var out chainhash.Hash
	h.Sum(out[:0])
	return out
}
