package coclique_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coclique/builder"
	"github.com/katalvlaran/coclique/coclique"
	"github.com/katalvlaran/coclique/core"
)

func TestConcurrent_AgreesWithSequential(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < propSeeds; seed++ {
		g := randomGraph(t, seed, 0.3)
		for _, set := range subsets(g.Vertices()) {
			want, err := coclique.IsIndependentSet(g, set)
			require.NoError(t, err)
			for _, k := range []int{1, 2, 3, 16} {
				got, err := coclique.IsIndependentSetConcurrent(ctx, g, set, coclique.WithWorkers(k))
				require.NoError(t, err)
				require.Equal(t, want, got, "seed=%d k=%d set=%v", seed, k, set)
			}
		}
	}
}

func TestConcurrent_LargeSets(t *testing.T) {
	ctx := context.Background()

	// Even-indexed vertices of a 400-cycle are independent.
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(400))
	require.NoError(t, err)
	var evens []string
	for i := 0; i < 400; i += 2 {
		evens = append(evens, fmt.Sprint(i))
	}
	ok, err := coclique.IsIndependentSetConcurrent(ctx, g, evens, coclique.WithWorkers(8))
	require.NoError(t, err)
	assert.True(t, ok)

	// Adding an odd vertex creates adjacent pairs.
	ok, err = coclique.IsIndependentSetConcurrent(ctx, g, append(evens, "201"), coclique.WithWorkers(8))
	require.NoError(t, err)
	assert.False(t, ok)

	// Default worker count.
	ok, err = coclique.IsIndependentSetConcurrent(ctx, g, evens)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConcurrent_Errors(t *testing.T) {
	g := core.NewGraph(core.WithVertices("a", "b", "c"))

	_, err := coclique.IsIndependentSetConcurrent(context.Background(), g, []string{"a", "z"})
	require.ErrorIs(t, err, coclique.ErrInvalidVertex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = coclique.IsIndependentSetConcurrent(ctx, g, []string{"a", "b", "c"})
	require.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { coclique.WithWorkers(0) })
}
