// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

// polynomial is the arithmetic combiner used throughout the tests:
// LeafHash(x) = x, Combine(l, r) = l*31 + r.
func polynomial() Funcs[uint64, uint64] {
	return Funcs[uint64, uint64]{
		Leaf: func(x uint64) uint64 { return x },
		Node: func(l, r uint64) uint64 { return l*31 + r },
	}
}

// spread hashes leaves to well mixed values so that any change in a leaf
// reaches the root.
func spread() Funcs[uint64, uint64] {
	return Funcs[uint64, uint64]{
		Leaf: func(x uint64) uint64 { return mix(x ^ 0x9e3779b97f4a7c15) },
		Node: func(l, r uint64) uint64 { return mix(l*0xbf58476d1ce4e5b9 ^ (r + 0x94d049bb133111eb)) },
	}
}

func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func buildTree(c Combiner[uint64, uint64], blocks ...uint64) *Tree[uint64, uint64] {
	tree := New(c)
	for _, b := range blocks {
		tree.Push(b)
	}
	return tree
}

func seq(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}
