// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree_test

import (
	"fmt"

	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/chainhash"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

func ExampleTree() {
	tree := mtree.New[uint64, uint64](hashers.Polynomial{})

	for i := uint64(0); i < 3; i++ {
		tree.Push(i)
		root, _ := tree.RootHash()
		fmt.Println(tree.Size(), root)
	}

	// Output:
	// 1 0
	// 2 1
	// 3 63
}

func ExampleTree_RootHash() {
	tree := mtree.New[[]byte, uint64](hashers.XXHash{})

	if _, ok := tree.RootHash(); !ok {
		fmt.Println("empty")
	}

	tree.Push([]byte("genesis"))
	_, ok := tree.RootHash()
	fmt.Println(ok)

	// Output:
	// empty
	// true
}

func ExampleSyncTree() {
	st := mtree.NewSync[[]byte, chainhash.Hash](hashers.SHA256{})
	st.Push([]byte("a"))
	snap := st.Push([]byte("b"))

	want := hashers.SHA256{}.Combine(hashers.SHA256{}.LeafHash([]byte("a")), hashers.SHA256{}.LeafHash([]byte("b")))
	fmt.Println(snap.Version, snap.Depth, snap.Root == want)

	// Output:
	// 2 1 true
}
