// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyTree is returned by Root when nothing has been pushed yet.
var ErrEmptyTree = errors.New("mtree: tree is empty")

// Tree is an append-only Merkle tree over blocks of type T with digests of
// type D. The zero value is not usable, use New.
type Tree[T any, D comparable] struct {
	combiner Combiner[T, D]
	root     Node[T, D]
	size     int
}

// New returns an empty tree bound to combiner.
func New[T any, D comparable](combiner Combiner[T, D]) *Tree[T, D] {
	if combiner == nil {
		panic("mtree: nil combiner")
	}
	return &Tree[T, D]{combiner: combiner}
}

// Push appends one block. The new leaf either becomes the root of an empty
// tree or replaces the shallowest-leftmost leaf with a branch holding that
// leaf on the left and the new one on the right. Every ancestor of the split
// point is rehashed before Push returns.
//
// The target is located with slotPath(Size()), which is the path to the first
// leaf a breadth-first, left-to-right walk of the tree would reach; Verify
// checks the two agree.
func (t *Tree[T, D]) Push(data T) {
	fresh := newLeaf(t.combiner, data)

	if t.root == nil {
		t.root = fresh
		t.size = 1
		t.pushed()
		return
	}

	slot, ancestors := t.descend(slotPath(t.size))

	old, ok := (*slot).(*Leaf[T, D])
	if !ok {
		panic(fmt.Sprintf("mtree: split target of tree with %d leaves is %T, not a leaf", t.size, *slot))
	}
	*slot = split(t.combiner, old, fresh)

	// Child before parent, up to and including the root.
	for i := len(ancestors) - 1; i >= 0; i-- {
		ancestors[i].rehash(t.combiner)
	}

	t.size++
	t.pushed()
}

// descend follows p from the root and returns the slot at its end together
// with every branch passed on the way, root first.
func (t *Tree[T, D]) descend(p path) (*Node[T, D], []*Branch[T, D]) {
	ancestors := make([]*Branch[T, D], 0, len(p))
	slot := &t.root

	for i, dir := range p {
		branch, ok := (*slot).(*Branch[T, D])
		if !ok {
			panic(fmt.Sprintf("mtree: expected branch at %s, got %T", p[:i], *slot))
		}
		ancestors = append(ancestors, branch)
		slot = branch.child(dir)
	}

	return slot, ancestors
}

func (t *Tree[T, D]) pushed() {
	log.Trace().Int("size", t.size).Int("depth", t.Depth()).Msg("block pushed")

	if !debugChecks {
		return
	}
	if err := t.Verify(); err != nil {
		log.Error().Err(err).Int("size", t.size).Msg("tree invariant violated")
		panic(err)
	}
}

// RootHash returns the digest of the root. ok is false iff the tree is empty;
// the returned digest is meaningless in that case.
func (t *Tree[T, D]) RootHash() (hash D, ok bool) {
	if t.root == nil {
		return hash, false
	}
	return t.root.Hash(), true
}

// Root is RootHash for callers that prefer an error over a flag.
func (t *Tree[T, D]) Root() (D, error) {
	hash, ok := t.RootHash()
	if !ok {
		return hash, ErrEmptyTree
	}
	return hash, nil
}

// Size returns the number of pushed blocks.
func (t *Tree[T, D]) Size() int { return t.size }

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree[T, D]) Depth() int { return depthForSize(t.size) }

// IsEmpty reports whether nothing has been pushed yet.
func (t *Tree[T, D]) IsEmpty() bool { return t.root == nil }

// RootNode exposes the root for read-only inspection. It is nil for an empty
// tree. Callers must not hold on to it across pushes.
func (t *Tree[T, D]) RootNode() Node[T, D] { return t.root }

// Clone returns a deep copy of the tree structure. Block values are copied
// shallowly, so blocks that are slices or pointers are shared.
func (t *Tree[T, D]) Clone() *Tree[T, D] {
	c := &Tree[T, D]{combiner: t.combiner, size: t.size}
	if t.root != nil {
		c.root = t.root.clone()
	}
	return c
}

// Walk visits every node in pre-order (node, left subtree, right subtree).
// depth is 0 for the root. Walk stops early when fn returns false.
func (t *Tree[T, D]) Walk(fn func(n Node[T, D], depth int) bool) {
	type frame struct {
		node  Node[T, D]
		depth int
	}

	if t.root == nil {
		return
	}

	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(top.node, top.depth) {
			return
		}

		if b, ok := top.node.(*Branch[T, D]); ok {
			stack = append(stack,
				frame{node: b.right, depth: top.depth + 1},
				frame{node: b.left, depth: top.depth + 1},
			)
		}
	}
}

// Leaves returns the blocks in left-to-right tree order. This is not the push
// order once the tree holds three or more blocks.
func (t *Tree[T, D]) Leaves() []T {
	out := make([]T, 0, t.size)
	t.Walk(func(n Node[T, D], _ int) bool {
		if l, ok := n.(*Leaf[T, D]); ok {
			out = append(out, l.data)
		}
		return true
	})
	return out
}
