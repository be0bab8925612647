// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"sync"
	"sync/atomic"
)

// Observer is notified after every push into a SyncTree, while the write lock
// is still held, so calls arrive in push order. Implementations must be quick
// and must not call back into the tree.
type Observer interface {
	ObservePush(size, depth int)
}

// Snapshot is the state of a SyncTree right after a push completed.
type Snapshot[D comparable] struct {
	// Version counts completed pushes; it equals Size.
	Version uint64
	Size    int
	Depth   int
	Root    D
	// Empty is set before the first push. Root carries no meaning then.
	Empty bool
}

// RootHash mirrors Tree.RootHash.
func (s Snapshot[D]) RootHash() (D, bool) { return s.Root, !s.Empty }

// SyncTree wraps a Tree with a single-writer discipline: pushes are serialized
// by one lock, readers share it, and Snapshot gives lock-free access to the
// last published state.
type SyncTree[T any, D comparable] struct {
	sync.RWMutex

	tree      *Tree[T, D]
	snapshot  atomic.Pointer[Snapshot[D]]
	observers []Observer
}

// NewSync returns an empty SyncTree bound to combiner.
func NewSync[T any, D comparable](combiner Combiner[T, D], observers ...Observer) *SyncTree[T, D] {
	st := &SyncTree[T, D]{
		tree:      New(combiner),
		observers: observers,
	}
	st.snapshot.Store(&Snapshot[D]{Empty: true})
	return st
}

// Push appends data and returns the snapshot published for it.
func (st *SyncTree[T, D]) Push(data T) Snapshot[D] {
	st.Lock()
	defer st.Unlock()

	st.tree.Push(data)

	snap := &Snapshot[D]{
		Version: uint64(st.tree.Size()),
		Size:    st.tree.Size(),
		Depth:   st.tree.Depth(),
	}
	snap.Root, _ = st.tree.RootHash()
	st.snapshot.Store(snap)

	for _, o := range st.observers {
		o.ObservePush(snap.Size, snap.Depth)
	}

	return *snap
}

// Snapshot returns the last published state without taking the lock. It never
// reflects a push that is still propagating hashes.
func (st *SyncTree[T, D]) Snapshot() Snapshot[D] {
	return *st.snapshot.Load()
}

func (st *SyncTree[T, D]) RootHash() (D, bool) {
	st.RLock()
	defer st.RUnlock()
	return st.tree.RootHash()
}

func (st *SyncTree[T, D]) Size() int {
	st.RLock()
	defer st.RUnlock()
	return st.tree.Size()
}

func (st *SyncTree[T, D]) Depth() int {
	st.RLock()
	defer st.RUnlock()
	return st.tree.Depth()
}

// Verify runs Tree.Verify under the read lock.
func (st *SyncTree[T, D]) Verify() error {
	st.RLock()
	defer st.RUnlock()
	return st.tree.Verify()
}

// Fork returns a deep copy of the current tree that the caller owns outright.
func (st *SyncTree[T, D]) Fork() *Tree[T, D] {
	st.RLock()
	defer st.RUnlock()
	return st.tree.Clone()
}
