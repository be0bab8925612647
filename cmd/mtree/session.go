// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/chainhash"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

// session hides the digest type of the tree behind hex strings, so commands
// work the same for 64 and 256 bit hashes.
type session interface {
	push(block []byte)
	root() (string, bool)
	size() int
	depth() int
	verify() error
}

type treeSession[D comparable] struct {
	tree   *mtree.Tree[[]byte, D]
	format func(D) string
}

func (s *treeSession[D]) push(block []byte) { s.tree.Push(block) }
func (s *treeSession[D]) size() int         { return s.tree.Size() }
func (s *treeSession[D]) depth() int        { return s.tree.Depth() }
func (s *treeSession[D]) verify() error     { return s.tree.Verify() }

func (s *treeSession[D]) root() (string, bool) {
	hash, ok := s.tree.RootHash()
	if !ok {
		return "", false
	}
	return s.format(hash), true
}

func newSession(hash string, key [hashers.SipKeySize]byte) (session, error) {
	if hashers.Width(hash) == 256 {
		c, err := hashers.ByName(hash)
		if err != nil {
			return nil, err
		}
		return &treeSession[chainhash.Hash]{
			tree:   mtree.New(c),
			format: chainhash.Hash.String,
		}, nil
	}

	c, err := hashers.ByName64(hash, key)
	if err != nil {
		return nil, err
	}
	return &treeSession[uint64]{
		tree:   mtree.New(c),
		format: func(d uint64) string { return fmt.Sprintf("%016x", d) },
	}, nil
}
