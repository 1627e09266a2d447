package coclique

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coclique/clique"
	"github.com/katalvlaran/coclique/core"
	"github.com/katalvlaran/coclique/internal/pairwise"
)

const (
	methodIsIndependentSet  = "IsIndependentSet"
	methodIsNIndependentSet = "IsNIndependentSet"
	methodViaComplement     = "IsIndependentSetViaComplement"
	methodCanInsert         = "CanInsert"
)

// IsIndependentSet reports whether no two distinct elements of vertices are
// adjacent in g.
//
// Errors:
//   - ErrInvalidVertex: an element is not a vertex of g.
//
// Complexity: O(|S|²) adjacency tests; stops at the first adjacent pair.
func IsIndependentSet(g *core.Graph, vertices []string) (bool, error) {
	ids, err := collect(methodIsIndependentSet, g, vertices)
	if err != nil {
		return false, err
	}

	return pairwise.All(ids, nonAdjacent(g)), nil
}

// IsNIndependentSet reports whether vertices is an independent set of
// exactly n distinct vertices. Membership is validated first, then the
// cardinality, and only then the pairs.
//
// Errors:
//   - ErrInvalidSize: n < 0.
//   - ErrInvalidVertex: an element is not a vertex of g.
func IsNIndependentSet(g *core.Graph, vertices []string, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("%s: n=%d: %w", methodIsNIndependentSet, n, ErrInvalidSize)
	}
	ids, err := collect(methodIsNIndependentSet, g, vertices)
	if err != nil {
		return false, err
	}
	if len(ids) != n {
		return false, nil
	}

	return pairwise.All(ids, nonAdjacent(g)), nil
}

// IsIndependentSetViaComplement answers IsIndependentSet by testing whether
// vertices is a clique of core.Complement(g). It costs an extra O(V²) to
// build the complement and exists as a cross-check.
func IsIndependentSetViaComplement(g *core.Graph, vertices []string) (bool, error) {
	ok, err := clique.IsClique(core.Complement(g), vertices)
	if errors.Is(err, clique.ErrInvalidVertex) {
		return false, fmt.Errorf("%s: %w: %w", methodViaComplement, ErrInvalidVertex, err)
	}

	return ok, err
}

// CanInsert reports whether a is non-adjacent to every element of vertices,
// i.e. whether adding a to an independent set keeps it independent.
// Pairs of vertices with each other are not examined.
func CanInsert(g *core.Graph, vertices []string, a string) (bool, error) {
	ids, err := collect(methodCanInsert, g, append([]string{a}, vertices...))
	if err != nil {
		return false, err
	}
	for _, b := range ids {
		if b != a && g.HasEdge(a, b) {
			return false, nil
		}
	}

	return true, nil
}

func collect(method string, g *core.Graph, vertices []string) ([]string, error) {
	ids, err := pairwise.Collect(g, vertices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidVertex, err)
	}

	return ids, nil
}

func nonAdjacent(g *core.Graph) func(u, v string) bool {
	return func(u, v string) bool { return !g.HasEdge(u, v) }
}
