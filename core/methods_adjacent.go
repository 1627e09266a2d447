// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex sorted slices that share no backing arrays.
// Concurrency:
//   - Read lock only.

package core

import "sort"

// NeighborIDs returns the sorted IDs of every vertex adjacent to id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d = deg(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(nbrs), nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = sortedKeys(nbrs)
	}

	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
