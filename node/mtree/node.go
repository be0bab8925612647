// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

// Node is either a *Leaf or a *Branch. An empty tree has no Node at all.
type Node[T any, D comparable] interface {
	Hash() D
	clone() Node[T, D]
}

var (
	_ Node[[]byte, uint64] = (*Leaf[[]byte, uint64])(nil)
	_ Node[[]byte, uint64] = (*Branch[[]byte, uint64])(nil)
)

// Leaf holds one pushed data block and its digest.
type Leaf[T any, D comparable] struct {
	hash D
	data T
}

func (l *Leaf[T, D]) Hash() D { return l.hash }
func (l *Leaf[T, D]) Data() T { return l.data }

func (l *Leaf[T, D]) clone() Node[T, D] {
	c := *l
	return &c
}

// Branch owns exactly two children.
type Branch[T any, D comparable] struct {
	hash  D
	left  Node[T, D]
	right Node[T, D]
}

func (b *Branch[T, D]) Hash() D           { return b.hash }
func (b *Branch[T, D]) Left() Node[T, D]  { return b.left }
func (b *Branch[T, D]) Right() Node[T, D] { return b.right }

func (b *Branch[T, D]) clone() Node[T, D] {
	return &Branch[T, D]{
		hash:  b.hash,
		left:  b.left.clone(),
		right: b.right.clone(),
	}
}

// child returns the slot holding the child on the given side, so the caller
// can replace it in place.
func (b *Branch[T, D]) child(dir direction) *Node[T, D] {
	if dir == goLeft {
		return &b.left
	}
	return &b.right
}

// rehash recomputes the cached hash from the current children.
func (b *Branch[T, D]) rehash(c Combiner[T, D]) {
	b.hash = c.Combine(b.left.Hash(), b.right.Hash())
}

func newLeaf[T any, D comparable](c Combiner[T, D], data T) *Leaf[T, D] {
	return &Leaf[T, D]{hash: c.LeafHash(data), data: data}
}

// split turns old into the left child of a new branch with fresh on its right.
func split[T any, D comparable](c Combiner[T, D], old, fresh *Leaf[T, D]) *Branch[T, D] {
	return &Branch[T, D]{
		hash:  c.Combine(old.hash, fresh.hash),
		left:  old,
		right: fresh,
	}
}
