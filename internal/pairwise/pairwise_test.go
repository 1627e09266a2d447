package pairwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coclique/core"
)

func TestCollect(t *testing.T) {
	g := core.NewGraph(core.WithVertices("a", "b", "c"))

	ids, err := Collect(g, []string{"c", "a", "c", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	ids, err = Collect(g, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = Collect(g, []string{"a", "z"})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), `"z"`)

	_, err = Collect(g, []string{""})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAll(t *testing.T) {
	var calls [][2]string
	record := func(u, v string) bool {
		calls = append(calls, [2]string{u, v})
		return true
	}

	assert.True(t, All([]string{"a", "b", "c"}, record))
	assert.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, calls)

	calls = nil
	assert.True(t, All([]string{"a"}, record))
	assert.True(t, All(nil, record))
	assert.Empty(t, calls)

	// Short-circuits on the first failing pair.
	n := 0
	assert.False(t, All([]string{"a", "b", "c", "d"}, func(u, v string) bool {
		n++
		return !(u == "a" && v == "c")
	}))
	assert.Equal(t, 2, n)
}
