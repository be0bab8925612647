// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrWriterClosed is returned by Writer.Push after Close.
	ErrWriterClosed = errors.New("mtree: writer closed")
	// ErrWriterStopped is returned by Writer.Push once Run has returned.
	ErrWriterStopped = errors.New("mtree: writer stopped")
	// ErrWriterRunning is returned by a second call to Writer.Run.
	ErrWriterRunning = errors.New("mtree: writer already running")
)

// Writer lets any number of producers hand blocks to one goroutine that owns
// all pushes into a SyncTree. Blocks are pushed in the order the writer
// receives them.
type Writer[T any, D comparable] struct {
	tree *SyncTree[T, D]
	in   chan T

	mu     sync.RWMutex
	closed bool

	running atomic.Bool
	stopped chan struct{}
}

// NewWriter returns a writer for tree that buffers up to backlog blocks.
func NewWriter[T any, D comparable](tree *SyncTree[T, D], backlog int) *Writer[T, D] {
	if backlog < 0 {
		backlog = 0
	}
	return &Writer[T, D]{
		tree:    tree,
		in:      make(chan T, backlog),
		stopped: make(chan struct{}),
	}
}

// Tree returns the tree the writer pushes into.
func (w *Writer[T, D]) Tree() *SyncTree[T, D] { return w.tree }

// Run pushes received blocks until Close is called and the backlog is
// drained, in which case it returns nil, or until ctx is done, in which case
// blocks still in the backlog are dropped and ctx.Err() is returned.
func (w *Writer[T, D]) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return ErrWriterRunning
	}
	defer close(w.stopped)

	for {
		select {
		case data, ok := <-w.in:
			if !ok {
				log.Debug().Int("size", w.tree.Size()).Msg("writer drained")
				return nil
			}
			w.tree.Push(data)

		case <-ctx.Done():
			log.Debug().Err(ctx.Err()).Int("backlog", len(w.in)).Msg("writer cancelled")
			return ctx.Err()
		}
	}
}

// Push hands data to the writer goroutine. It blocks while the backlog is
// full. A nil error means the block is queued, not that it is already in the
// tree; Run pushes it before it returns nil.
func (w *Writer[T, D]) Push(ctx context.Context, data T) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return ErrWriterClosed
	}

	select {
	case <-w.stopped:
		return ErrWriterStopped
	default:
	}

	select {
	case w.in <- data:
		return nil
	case <-w.stopped:
		return ErrWriterStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting blocks. Run returns once the backlog is pushed.
// Close waits for producers blocked in Push, which return once Run makes room,
// Run stops or their context ends.
func (w *Writer[T, D]) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.in)
}

// Done is closed when Run returns.
func (w *Writer[T, D]) Done() <-chan struct{} { return w.stopped }
