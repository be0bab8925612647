// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/binary"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/mtree/config"
	"gitlab.com/jaxnet/mtree/node/mtree"
	"golang.org/x/sync/errgroup"
)

type result struct {
	size     int
	depth    int
	root     string
	verified bool
	elapsed  time.Duration
}

// runBench pushes cfg.Blocks synthetic blocks through one Writer fed by
// cfg.Producers goroutines. Producer p generates blocks p, p+P, p+2P, ...
func runBench[D comparable](ctx context.Context, cfg *config.Config, c mtree.Combiner[[]byte, D],
	format func(D) string, observer mtree.Observer, log zerolog.Logger) (result, error) {
	st := mtree.NewSync(c, observer)
	w := mtree.NewWriter(st, cfg.Backlog)

	start := time.Now()

	runErr := make(chan error, 1)
	go func() { runErr <- w.Run(ctx) }()

	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < cfg.Producers; p++ {
		p := p
		g.Go(func() error {
			for i := p; i < cfg.Blocks; i += cfg.Producers {
				if err := w.Push(gctx, syntheticBlock(i, cfg.BlockSize)); err != nil {
					return errors.Wrapf(err, "producer %d", p)
				}
			}
			log.Debug().Int("producer", p).Msg("producer done")
			return nil
		})
	}

	produceErr := g.Wait()
	w.Close()
	if err := <-runErr; err != nil {
		return result{}, errors.Wrap(err, "writer stopped")
	}
	if produceErr != nil {
		return result{}, produceErr
	}

	snap := st.Snapshot()
	res := result{
		size:    snap.Size,
		depth:   snap.Depth,
		elapsed: time.Since(start),
	}
	if root, ok := snap.RootHash(); ok {
		res.root = format(root)
	}

	if cfg.Verify {
		if err := st.Verify(); err != nil {
			log.Error().Err(err).Msg("tree is inconsistent")
			return res, err
		}
		res.verified = true
	}

	return res, nil
}

// syntheticBlock returns a block of size bytes that starts with the big-endian
// index and is padded with its low byte.
func syntheticBlock(index, size int) []byte {
	block := make([]byte, size)
	var prefix [8]byte
	binary.BigEndian.PutUint64(prefix[:], uint64(index))
	n := copy(block, prefix[:])
	for i := n; i < size; i++ {
		block[i] = byte(index)
	}
	return block
}

func writeHeapProfile(path string) error {
	runtime.GC()
	outFile, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create heap out file")
	}
	defer outFile.Close()

	return errors.Wrap(pprof.WriteHeapProfile(outFile), "cannot write heap profile")
}
