// Command assocstress runs randomized workloads against every container
// variant and compares each against a reference model.
//
// Usage:
//
//	assocstress -ops 200000 -keys 5000 -workers 8 -seed 4711
//
// Every variant runs in its own goroutine per worker with its own seed.
// The process exits non-zero on the first divergence or failed Check.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/assoc"
)

type config struct {
	ops        int
	keys       int
	workers    int
	seed       int64
	checkEvery int
	jsonLogs   bool
	verbose    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.ops, "ops", 100_000, "operations per worker and variant")
	flag.IntVar(&cfg.keys, "keys", 1_000, "size of the key domain")
	flag.IntVar(&cfg.workers, "workers", 4, "workers per variant")
	flag.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "base seed")
	flag.IntVar(&cfg.checkEvery, "check-every", 10_000, "run a full consistency check every n operations")
	flag.BoolVar(&cfg.jsonLogs, "json", false, "emit JSON logs")
	flag.BoolVar(&cfg.verbose, "v", false, "log container events at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := assoc.NewTextLogger(level)
	if cfg.jsonLogs {
		logger = assoc.NewJSONLogger(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("stress run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *assoc.Logger) error {
	if cfg.ops <= 0 || cfg.keys <= 0 || cfg.workers <= 0 {
		return fmt.Errorf("ops, keys and workers must be positive")
	}

	logger.Info("stress run started",
		"seed", cfg.seed,
		"ops", cfg.ops,
		"keys", cfg.keys,
		"workers", cfg.workers,
		"variants", len(variants),
	)
	start := time.Now()

	mc := &assoc.BasicMetricsCollector{}
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		for w := range cfg.workers {
			seed := cfg.seed + int64(i*cfg.workers+w)
			g.Go(func() error {
				wl := newWorkload(v, cfg, seed, logger.WithName(v.name), mc)
				if err := wl.run(ctx); err != nil {
					return fmt.Errorf("%s (seed %d): %w", v.name, seed, err)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	stats := mc.GetStats()
	logger.Info("stress run passed",
		"duration", time.Since(start),
		"inserts", stats.InsertCount,
		"rejected", stats.InsertRejected,
		"lookups", stats.LookupCount,
		"erased", stats.ErasedItems,
		"rehashes", stats.RehashCount,
		"max_buckets", stats.MaxBucketCount,
	)
	return nil
}
