// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

// Combiner is the hashing capability bound to a tree for its whole lifetime.
//
// Both methods must be pure, deterministic and total. Combine must depend on
// the order of its arguments. D is the fixed-width digest type, e.g. uint64 or
// chainhash.Hash.
type Combiner[T any, D comparable] interface {
	// LeafHash returns the digest of one data block.
	LeafHash(data T) D

	// Combine returns the digest of a branch from its children digests.
	Combine(left, right D) D
}

// Funcs adapts a pair of plain functions to the Combiner interface.
type Funcs[T any, D comparable] struct {
	Leaf func(data T) D
	Node func(left, right D) D
}

func (f Funcs[T, D]) LeafHash(data T) D       { return f.Leaf(data) }
func (f Funcs[T, D]) Combine(left, right D) D { return f.Node(left, right) }
