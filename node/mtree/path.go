// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"math/bits"
	"strings"
)

type direction uint8

const (
	goLeft direction = iota
	goRight
)

// path is a sequence of left/right choices from the root down to a node.
type path []direction

// extend returns a copy of p with dir appended. p itself is never modified,
// so sibling paths in the BFS queue do not share a backing array.
func (p path) extend(dir direction) path {
	out := make(path, len(p), len(p)+1)
	copy(out, p)
	return append(out, dir)
}

func (p path) equal(other path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p path) String() string {
	if len(p) == 0 {
		return "root"
	}

	var sb strings.Builder
	for _, dir := range p {
		if dir == goLeft {
			sb.WriteByte('L')
		} else {
			sb.WriteByte('R')
		}
	}
	return sb.String()
}

// slotPath returns the position of the leaf the next push splits in a tree
// that already holds size > 0 leaves.
//
// With 2^k <= size < 2^(k+1), the first size-2^k leaves of level k have been
// split already, so the shallowest-leftmost leaf is the (size-2^k)-th node of
// level k. The binary digits of that index, most significant first, spell the
// path: 0 goes left, 1 goes right.
func slotPath(size int) path {
	if size <= 0 {
		return nil
	}

	k := bits.Len(uint(size)) - 1
	index := uint(size) - 1<<uint(k)

	p := make(path, k)
	for i := 0; i < k; i++ {
		if index&(1<<uint(k-1-i)) != 0 {
			p[i] = goRight
		}
	}
	return p
}

// bfsSlot walks the live tree level by level, left to right, and returns the
// path of the first leaf it meets. This is the canonical definition of the
// split target; slotPath must always agree with it.
func bfsSlot[T any, D comparable](root Node[T, D]) (path, bool) {
	type queued struct {
		node Node[T, D]
		at   path
	}

	if root == nil {
		return nil, false
	}

	queue := []queued{{node: root}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		switch n := current.node.(type) {
		case *Leaf[T, D]:
			return current.at, true

		case *Branch[T, D]:
			queue = append(queue,
				queued{node: n.left, at: current.at.extend(goLeft)},
				queued{node: n.right, at: current.at.extend(goRight)},
			)
		}
	}

	return nil, false
}

// depthForSize returns the number of edges on the longest root-to-leaf path of
// a tree holding size leaves.
func depthForSize(size int) int {
	if size <= 1 {
		return 0
	}
	return bits.Len(uint(size - 1))
}
