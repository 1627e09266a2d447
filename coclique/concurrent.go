package coclique

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coclique/core"
	"github.com/katalvlaran/coclique/internal/pairwise"
)

const methodConcurrent = "IsIndependentSetConcurrent"

// Option configures IsIndependentSetConcurrent.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers sets the number of shards. Panics on k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("coclique: WithWorkers(k < 1)")
	}
	return func(c *config) { c.workers = k }
}

func newConfig(opts ...Option) config {
	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// IsIndependentSetConcurrent is IsIndependentSet with the pair enumeration
// split by row across worker goroutines. Worker w owns rows w, w+k, w+2k…
// of the sorted candidate list, which keeps the triangular workload
// balanced. The first adjacent pair cancels every other shard.
//
// Errors:
//   - ErrInvalidVertex: an element is not a vertex of g.
//   - ctx.Err(): the context ended before a verdict.
func IsIndependentSetConcurrent(ctx context.Context, g *core.Graph, vertices []string, opts ...Option) (bool, error) {
	cfg := newConfig(opts...)
	ids, err := collect(methodConcurrent, g, vertices)
	if err != nil {
		return false, err
	}
	if err = ctx.Err(); err != nil {
		return false, err
	}
	if len(ids) < 2 {
		return true, nil
	}

	workers := min(cfg.workers, len(ids)-1)
	pred := nonAdjacent(g)
	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		grp.Go(func() error {
			for i := w; i < len(ids)-1; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if !pairwise.Row(ids, i, pred) {
					return errAdjacentPair
				}
			}
			return nil
		})
	}

	err = grp.Wait()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errAdjacentPair):
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w", methodConcurrent, err)
	}
}
