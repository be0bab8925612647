/*
 * Copyright (c) 2022 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package mtree provides an append-only Merkle tree that is built one block at
// a time and keeps its root hash current after every append.
//
// Hashing is injected as a Combiner:
// 	      leaf.hash   = LeafHash(data)
// 	      branch.hash = Combine(left.hash, right.hash)
//
// Combine must be order-sensitive, so pushing a then b yields a different
// root than pushing b then a.
//
// Slot selection:
//
// A new block never rebuilds the tree. The first leaf met in breadth-first,
// left-to-right order (the shallowest and leftmost one) is split into a branch
// whose left child is the old leaf and whose right child is the new block.
// Every branch on the path from the split point to the root is rehashed
// bottom-up.
//
// Tree Topology (bN is the N-th pushed block, rows are labelled with their
// depth from the root):
//
// For 1 leaf:
// 	      0: root = b0
//
// For 2 leaves:
//	      0:      root = b0 + b1
//	             /       \
//	      1:    b0        b1
//
// For 3 leaves (b0 is the shallowest-leftmost leaf):
//	      0:            root = n02 + b1
//	                   /      \
//	      1:        n02        b1
//	              /     \
//	      2:    b0      b2
//
// For 4 leaves:
//	      0:            root = n02 + n13
//	                    /           \
//	      1:         n02            n13
//	               /     \        /     \
//	      2:     b0      b2     b1      b3
//
// For 5 leaves:
//	      0:                 root = n04_2 + n13
//	                          /              \
//	      1:              n04_2              n13
//	                     /     \            /   \
//	      2:          n04       b2        b1     b3
//	                 /   \
//	      3:       b0    b4
//
// Because the tree only ever grows this way, its shape is a function of its
// size: with 2^k <= n < 2^(k+1) leaves the next split target sits at depth k,
// at position n-2^k counted from the left, so it is reached in O(depth) steps.
//
// Tree is not safe for concurrent use. SyncTree serializes writers behind one
// lock and publishes an immutable Snapshot after each push; Writer feeds a
// SyncTree from a single goroutine over a channel.
package mtree
