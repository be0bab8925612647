// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/mtree/config"
	"gitlab.com/jaxnet/mtree/node/metrics"
	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

func benchConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cfg, _, err := config.Load(args)
	require.NoError(t, err)
	return cfg
}

func TestBenchmark(t *testing.T) {
	for _, hash := range hashers.Names() {
		t.Run(hash, func(t *testing.T) {
			cfg := benchConfig(t, "--hash", hash, "-n", "300", "-p", "3", "--backlog", "4", "--verify")

			tm, err := metrics.NewTreeMetrics("test", prometheus.NewRegistry())
			require.NoError(t, err)

			res, err := benchmark(context.Background(), cfg, tm, zerolog.Nop())
			require.NoError(t, err)

			assert.Equal(t, 300, res.size)
			assert.Equal(t, 9, res.depth)
			assert.True(t, res.verified)
			assert.NotEmpty(t, res.root)
			assert.Equal(t, float64(300), tm.Pushes())
		})
	}
}

func TestBenchmark_SingleProducerMatchesSequential(t *testing.T) {
	cfg := benchConfig(t, "--hash", "xxhash", "-n", "50", "-p", "1", "--blocksize", "12")

	tm, err := metrics.NewTreeMetrics("single", prometheus.NewRegistry())
	require.NoError(t, err)

	format := func(d uint64) string { return strconv.FormatUint(d, 16) }
	res, err := runBench[uint64](context.Background(), cfg, hashers.XXHash{}, format, tm, zerolog.Nop())
	require.NoError(t, err)

	tree := mtree.New[[]byte, uint64](hashers.XXHash{})
	for i := 0; i < 50; i++ {
		tree.Push(syntheticBlock(i, 12))
	}
	want, ok := tree.RootHash()
	require.True(t, ok)
	assert.Equal(t, format(want), res.root)
}

func TestBenchmark_Cancelled(t *testing.T) {
	cfg := benchConfig(t, "-n", "100000", "-p", "2", "--backlog", "0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm, err := metrics.NewTreeMetrics("cancelled", prometheus.NewRegistry())
	require.NoError(t, err)

	_, err = benchmark(ctx, cfg, tm, zerolog.Nop())
	assert.Error(t, err)
}

func TestSyntheticBlock(t *testing.T) {
	a := syntheticBlock(1, 16)
	b := syntheticBlock(2, 16)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, byte(1), a[7])
	assert.Equal(t, byte(1), a[15])
}

func TestWriteHeapProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.out")
	assert.NoError(t, writeHeapProfile(path))
	assert.FileExists(t, path)
}
