// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/mtree/config"
	"gitlab.com/jaxnet/mtree/node/metrics"
	"gitlab.com/jaxnet/mtree/types/chainhash"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, _, err := config.Load(args)
	if err != nil {
		return err
	}

	loggers, err := cfg.SetupLogging()
	if err != nil {
		return err
	}
	log := loggers[config.LogUnitBNCH]

	ctx, stop := withInterrupt(context.Background(), log)
	defer stop()

	registry := prometheus.NewRegistry()
	treeMetrics, err := metrics.NewTreeMetrics("bench", registry)
	if err != nil {
		return err
	}

	manager := metrics.Metrics(ctx, time.Second, registry)
	manager.Add(metrics.RuntimeMetrics("bench", registry))
	if cfg.MetricsAddr != "" {
		go func() {
			if err := manager.Listen(ctx, cfg.MetricsAddr); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	res, err := benchmark(ctx, cfg, treeMetrics, log)
	if err != nil {
		return err
	}

	log.Info().
		Str("hash", cfg.Hash).
		Int("producers", cfg.Producers).
		Int("size", res.size).
		Int("depth", res.depth).
		Str("root", res.root).
		Bool("verified", res.verified).
		Float64("pushes_total", treeMetrics.Pushes()).
		Dur("elapsed", res.elapsed).
		Float64("blocks_per_sec", float64(res.size)/res.elapsed.Seconds()).
		Msg("benchmark finished")

	if cfg.HeapProfile != "" {
		if err := writeHeapProfile(cfg.HeapProfile); err != nil {
			return err
		}
		log.Info().Str("path", cfg.HeapProfile).Msg("heap profile written")
	}
	return nil
}

// benchmark picks the digest type for cfg.Hash and runs the pushes.
func benchmark(ctx context.Context, cfg *config.Config, observer *metrics.TreeMetrics, log zerolog.Logger) (result, error) {
	if hashers.Width(cfg.Hash) == 256 {
		c, err := hashers.ByName(cfg.Hash)
		if err != nil {
			return result{}, err
		}
		return runBench(ctx, cfg, c, chainhash.Hash.String, observer, log)
	}

	key, err := cfg.SipKeyBytes()
	if err != nil {
		return result{}, err
	}
	c, err := hashers.ByName64(cfg.Hash, key)
	if err != nil {
		return result{}, err
	}
	return runBench(ctx, cfg, c, func(d uint64) string { return fmt.Sprintf("%016x", d) }, observer, log)
}
