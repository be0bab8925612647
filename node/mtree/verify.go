// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"fmt"
)

// InvariantError describes a node that breaks the hash or shape rules of the
// tree. It always indicates a defect, never a recoverable condition.
type InvariantError struct {
	Path   string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mtree: invariant violated at %s: %s", e.Path, e.Reason)
}

func violation(at path, format string, args ...interface{}) error {
	return &InvariantError{Path: at.String(), Reason: fmt.Sprintf(format, args...)}
}

// Verify recomputes every digest from scratch and checks the tree shape:
//   - each leaf hash equals LeafHash(data)
//   - each branch has two children and hash Combine(left, right)
//   - the number of leaves equals Size
//   - the breadth-first split target matches the one derived from Size
func (t *Tree[T, D]) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return violation(nil, "empty root with size %d", t.size)
		}
		return nil
	}

	leaves, err := t.verifyNode(t.root, nil)
	if err != nil {
		return err
	}
	if leaves != t.size {
		return violation(nil, "%d reachable leaves, size is %d", leaves, t.size)
	}

	got, _ := bfsSlot(t.root)
	if want := slotPath(t.size); !got.equal(want) {
		return violation(nil, "next split target is %s, size %d implies %s", got, t.size, want)
	}

	return nil
}

func (t *Tree[T, D]) verifyNode(n Node[T, D], at path) (int, error) {
	switch node := n.(type) {
	case *Leaf[T, D]:
		if want := t.combiner.LeafHash(node.data); node.hash != want {
			return 0, violation(at, "leaf hash %v, data hashes to %v", node.hash, want)
		}
		return 1, nil

	case *Branch[T, D]:
		if node.left == nil || node.right == nil {
			return 0, violation(at, "branch with a missing child")
		}

		left, err := t.verifyNode(node.left, at.extend(goLeft))
		if err != nil {
			return 0, err
		}
		right, err := t.verifyNode(node.right, at.extend(goRight))
		if err != nil {
			return 0, err
		}

		if want := t.combiner.Combine(node.left.Hash(), node.right.Hash()); node.hash != want {
			return 0, violation(at, "branch hash %v, children combine to %v", node.hash, want)
		}
		return left + right, nil

	default:
		return 0, violation(at, "unexpected node type %T", n)
	}
}
