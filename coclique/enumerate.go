package coclique

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/coclique/core"
)

const (
	methodEnumerate = "Enumerate"
	methodFree      = "Free"
)

// Enumerate returns every independent set of g with exactly n vertices.
// Each set is sorted ascending and the list is in lexicographic order.
// n = 0 yields a single empty set.
//
// The search is exponential in n; it checks ctx between branches.
//
// Errors:
//   - ErrInvalidSize: n < 0.
//   - ctx.Err() when cancelled.
func Enumerate(ctx context.Context, g *core.Graph, n int) ([][]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodEnumerate, n, ErrInvalidSize)
	}
	var out [][]string
	err := search(ctx, g, n, func(set []string) bool {
		out = append(out, slices.Clone(set))
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodEnumerate, err)
	}

	return out, nil
}

// Free reports whether g has no independent set of n vertices.
// It stops at the first one found.
func Free(ctx context.Context, g *core.Graph, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("%s: n=%d: %w", methodFree, n, ErrInvalidSize)
	}
	found := false
	err := search(ctx, g, n, func([]string) bool {
		found = true
		return false
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", methodFree, err)
	}

	return !found, nil
}

// search walks n-independent sets in lexicographic order and hands each to
// visit until visit returns false. A graph with fewer than n vertices has
// none.
func search(ctx context.Context, g *core.Graph, n int, visit func([]string) bool) error {
	ids := g.Vertices()
	if n > len(ids) {
		return nil
	}
	cur := make([]string, 0, n)
	stopped := false

	var walk func(start int) error
	walk = func(start int) error {
		if len(cur) == n {
			stopped = !visit(cur)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := start; i <= len(ids)-(n-len(cur)) && !stopped; i++ {
			v := ids[i]
			if !independentOf(g, cur, v) {
				continue
			}
			cur = append(cur, v)
			if err := walk(i + 1); err != nil {
				return err
			}
			cur = cur[:len(cur)-1]
		}
		return nil
	}

	return walk(0)
}

func independentOf(g *core.Graph, set []string, v string) bool {
	for _, u := range set {
		if g.HasEdge(u, v) {
			return false
		}
	}

	return true
}
