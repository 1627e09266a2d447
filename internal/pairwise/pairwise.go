// Package pairwise holds the candidate-set handling shared by the clique and
// coclique checkers: membership validation, deduplication, and enumeration
// of unordered pairs.
package pairwise

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/coclique/core"
)

// Collect validates every candidate against g and returns the distinct IDs
// sorted ascending. The first missing vertex yields an error wrapping
// core.ErrVertexNotFound.
//
// Complexity: O(|S| log |S|).
func Collect(g *core.Graph, vertices []string) ([]string, error) {
	seen := make(map[string]struct{}, len(vertices))
	out := make([]string, 0, len(vertices))
	for _, v := range vertices {
		if _, dup := seen[v]; dup {
			continue
		}
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("vertex %q: %w", v, core.ErrVertexNotFound)
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// All reports whether pred holds for every unordered pair {ids[i], ids[j]},
// i < j, stopping at the first pair that fails.
func All(ids []string, pred func(u, v string) bool) bool {
	for i := range ids {
		if !Row(ids, i, pred) {
			return false
		}
	}

	return true
}

// Row checks pred for the pairs (ids[i], ids[j]) with j > i.
func Row(ids []string, i int, pred func(u, v string) bool) bool {
	u := ids[i]
	for _, v := range ids[i+1:] {
		if !pred(u, v) {
			return false
		}
	}

	return true
}
