package coclique_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coclique/builder"
	"github.com/katalvlaran/coclique/clique"
	"github.com/katalvlaran/coclique/coclique"
)

// TestStar_LeavesAreIndependent: the leaves of a star form its largest
// independent set and the hub blocks every leaf.
func TestStar_LeavesAreIndependent(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Star(7))
	require.NoError(t, err)
	leaves := []string{"v1", "v2", "v3", "v4", "v5", "v6"}

	ok, err := coclique.IsNIndependentSet(g, leaves, 6)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = coclique.IsIndependentSet(g, append([]string{"Center"}, leaves[:1]...))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = coclique.CanInsert(g, leaves, "Center")
	require.NoError(t, err)
	assert.False(t, ok)

	free, err := coclique.Free(context.Background(), g, 7)
	require.NoError(t, err)
	assert.True(t, free)
}

// TestCompleteBipartite_Sides: each side is independent and any set mixing
// both sides is not.
func TestCompleteBipartite_Sides(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithPartitionPrefix("day", "night")}
	g, err := builder.BuildGraph(nil, opts, builder.CompleteBipartite(3, 4))
	require.NoError(t, err)

	tests := []struct {
		name string
		set  []string
		want bool
	}{
		{"left side", []string{"day0", "day1", "day2"}, true},
		{"right side", []string{"night0", "night1", "night2", "night3"}, true},
		{"mixed", []string{"day0", "night3"}, false},
		{"left side plus one", []string{"day0", "day1", "day2", "night0"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coclique.IsIndependentSet(g, tc.set)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			viaComplement, err := coclique.IsIndependentSetViaComplement(g, tc.set)
			require.NoError(t, err)
			assert.Equal(t, tc.want, viaComplement)
		})
	}

	sets, err := coclique.Enumerate(context.Background(), g, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"night0", "night1", "night2", "night3"}}, sets)
}

// TestWheel_RimOnly: the hub of W6 touches every rim vertex, so independent
// sets live on the C5 rim, which has independence number 2.
func TestWheel_RimOnly(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Wheel(6))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "Center", "D", "E"}, g.Vertices())

	ok, err := coclique.IsIndependentSet(g, []string{"A", "C"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = coclique.IsIndependentSet(g, []string{"A", "C", "E"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = clique.IsNClique(g, []string{"Center", "A", "B"}, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ctx := context.Background()
	sets, err := coclique.Enumerate(ctx, g, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "C"}, {"A", "D"}, {"B", "D"}, {"B", "E"}, {"C", "E"}}, sets)

	free, err := coclique.Free(ctx, g, 3)
	require.NoError(t, err)
	assert.True(t, free)
}
