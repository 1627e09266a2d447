// Package clique decides whether a vertex subset of a simple graph is a
// clique: every two distinct members are adjacent.
//
// It is the dual of package coclique: S is independent in G exactly when S
// is a clique in the complement of G.
package clique

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coclique/core"
	"github.com/katalvlaran/coclique/internal/pairwise"
)

var (
	// ErrInvalidVertex indicates a candidate vertex is not in the graph.
	ErrInvalidVertex = errors.New("clique: invalid vertex")

	// ErrInvalidSize indicates a negative target cardinality.
	ErrInvalidSize = errors.New("clique: invalid size")
)

// IsClique reports whether every unordered pair of distinct elements of
// vertices is adjacent in g. Duplicates are ignored; the empty set and
// singletons are cliques.
//
// Complexity: O(|S|²) adjacency tests.
func IsClique(g *core.Graph, vertices []string) (bool, error) {
	ids, err := pairwise.Collect(g, vertices)
	if err != nil {
		return false, fmt.Errorf("IsClique: %w: %w", ErrInvalidVertex, err)
	}

	return pairwise.All(ids, g.HasEdge), nil
}

// IsNClique reports whether vertices is a clique of exactly n distinct vertices.
func IsNClique(g *core.Graph, vertices []string, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("IsNClique: n=%d: %w", n, ErrInvalidSize)
	}
	ids, err := pairwise.Collect(g, vertices)
	if err != nil {
		return false, fmt.Errorf("IsNClique: %w: %w", ErrInvalidVertex, err)
	}
	if len(ids) != n {
		return false, nil
	}

	return pairwise.All(ids, g.HasEdge), nil
}
