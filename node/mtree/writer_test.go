// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mtree

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestWriter_ConcurrentProducers(t *testing.T) {
	const (
		producers = 8
		perWorker = 250
	)

	st := NewSync[uint64, uint64](spread())
	w := NewWriter(st, 16)

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(context.Background()) }()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				if err := w.Push(context.Background(), uint64(p*perWorker+i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	w.Close()
	require.NoError(t, <-runErr)

	assert.Equal(t, producers*perWorker, st.Size())
	assert.NoError(t, st.Verify())

	// Interleaving is arbitrary but every block is present exactly once.
	seen := make(map[uint64]int)
	for _, b := range st.Fork().Leaves() {
		seen[b]++
	}
	assert.Len(t, seen, producers*perWorker)
	for b, n := range seen {
		assert.Equal(t, 1, n, "block %d", b)
	}
}

func TestWriter_PreservesOrderForOneProducer(t *testing.T) {
	st := NewSync[uint64, uint64](polynomial())
	w := NewWriter(st, 0)

	go func() {
		for i := 0; i < 3; i++ {
			_ = w.Push(context.Background(), uint64(i))
		}
		w.Close()
	}()

	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, uint64(63), st.Snapshot().Root)
}

func TestWriter_PushAfterClose(t *testing.T) {
	w := NewWriter(NewSync[uint64, uint64](polynomial()), 1)
	w.Close()
	w.Close()

	assert.ErrorIs(t, w.Push(context.Background(), 1), ErrWriterClosed)
	assert.NoError(t, w.Run(context.Background()))
}

func TestWriter_Cancel(t *testing.T) {
	st := NewSync[uint64, uint64](polynomial())
	w := NewWriter(st, 0)

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	require.NoError(t, w.Push(context.Background(), 1))
	cancel()

	assert.ErrorIs(t, <-runErr, context.Canceled)
	<-w.Done()
	assert.ErrorIs(t, w.Push(context.Background(), 2), ErrWriterStopped)
	assert.ErrorIs(t, w.Run(context.Background()), ErrWriterRunning)
}

func TestWriter_PushContext(t *testing.T) {
	w := NewWriter(NewSync[uint64, uint64](polynomial()), 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Nobody runs the writer, so an unbuffered push can only time out.
	assert.ErrorIs(t, w.Push(ctx, 1), context.DeadlineExceeded)
}
