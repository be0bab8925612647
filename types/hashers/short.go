// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashers

import (
	"encoding/binary"

	"github.com/aead/siphash"
	"github.com/cespare/xxhash/v2"
	"gitlab.com/jaxnet/mtree/node/mtree"
)

// SipKeySize is the length of a SipHash key.
const SipKeySize = 16

var (
	_ mtree.Combiner[[]byte, uint64] = SipHash{}
	_ mtree.Combiner[[]byte, uint64] = XXHash{}
	_ mtree.Combiner[uint64, uint64] = Polynomial{}
)

// SipHash hashes with SipHash-2-4 under a fixed key. Trees built with
// different keys have unrelated roots.
type SipHash struct {
	Key [SipKeySize]byte
}

func NewSipHash(key [SipKeySize]byte) SipHash { return SipHash{Key: key} }

func (s SipHash) LeafHash(data []byte) uint64 {
	msg := make([]byte, 0, len(data)+1)
	msg = append(msg, leafPrefix)
	msg = append(msg, data...)
	return siphash.Sum64(msg, &s.Key)
}

func (s SipHash) Combine(left, right uint64) uint64 {
	msg := branchMessage(left, right)
	return siphash.Sum64(msg[:], &s.Key)
}

// XXHash hashes with xxHash64, seed 0.
type XXHash struct{}

func (XXHash) LeafHash(data []byte) uint64 {
	d := xxhash.New()
	d.Write([]byte{leafPrefix})
	d.Write(data)
	return d.Sum64()
}

func (XXHash) Combine(left, right uint64) uint64 {
	msg := branchMessage(left, right)
	return xxhash.Sum64(msg[:])
}

func branchMessage(left, right uint64) [17]byte {
	var msg [17]byte
	msg[0] = branchPrefix
	binary.BigEndian.PutUint64(msg[1:9], left)
	binary.BigEndian.PutUint64(msg[9:], right)
	return msg
}

// Polynomial is LeafHash(x) = x and Combine(l, r) = l*31 + r, wrapping on
// overflow.
type Polynomial struct{}

func (Polynomial) LeafHash(x uint64) uint64          { return x }
func (Polynomial) Combine(left, right uint64) uint64 { return left*31 + right }
