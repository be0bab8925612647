// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blocks := rapid.SliceOfN(rapid.Uint64(), 0, 300).Draw(t, "blocks")

		tree := New[uint64, uint64](spread())
		for i, b := range blocks {
			tree.Push(b)
			if tree.Size() != i+1 {
				t.Fatalf("size %d after %d pushes", tree.Size(), i+1)
			}
		}

		if err := tree.Verify(); err != nil {
			t.Fatalf("verify: %v", err)
		}
		if _, ok := tree.RootHash(); ok != (len(blocks) > 0) {
			t.Fatalf("root presence %v for %d blocks", ok, len(blocks))
		}
	})
}

func TestProperty_Determinism(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blocks := rapid.SliceOfN(rapid.Uint64(), 1, 100).Draw(t, "blocks")

		a := buildTree(spread(), blocks...)
		b := buildTree(spread(), blocks...)

		ra, _ := a.RootHash()
		rb, _ := b.RootHash()
		if ra != rb {
			t.Fatalf("roots differ: %x != %x", ra, rb)
		}
	})
}

func TestProperty_SingleBlockChange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blocks := rapid.SliceOfN(rapid.Uint64(), 1, 64).Draw(t, "blocks")
		at := rapid.IntRange(0, len(blocks)-1).Draw(t, "at")
		delta := rapid.Uint64Range(1, 1<<32).Draw(t, "delta")

		changed := append([]uint64(nil), blocks...)
		changed[at] += delta

		ra, _ := buildTree(spread(), blocks...).RootHash()
		rb, _ := buildTree(spread(), changed...).RootHash()
		if ra == rb {
			t.Fatalf("changing block %d did not change the root", at)
		}
	})
}

func TestProperty_CloneMatches(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blocks := rapid.SliceOfN(rapid.Uint64(), 0, 100).Draw(t, "blocks")
		extra := rapid.SliceOfN(rapid.Uint64(), 0, 20).Draw(t, "extra")

		tree := buildTree(spread(), blocks...)
		fork := tree.Clone()
		for _, b := range extra {
			tree.Push(b)
			fork.Push(b)
		}

		ra, oka := tree.RootHash()
		rb, okb := fork.RootHash()
		if ra != rb || oka != okb {
			t.Fatalf("fork diverged from tree")
		}
	})
}
