// File: view.go
// Role: Non-mutating graph views: complement, induced subgraph, relabeling,
//       and the subgraph order.
// Concurrency:
//   - Read lock on the source; every result is a fresh graph instance.
//   - At most one graph's lock is held at a time, and user callbacks run
//     with no lock held.

package core

import "fmt"

// Complement returns the complement of g: the same vertices, and u~v in the
// result iff u != v and u, v are not adjacent in g.
//
// Complexity: O(V²).
func Complement(g *Graph) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.verticesLocked()
	out := NewGraph(WithCapacity(len(ids)))
	for _, id := range ids {
		out.addVertexLocked(id)
	}
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			if !g.adjacentLocked(u, v) {
				out.addEdgeLocked(u, v)
			}
		}
	}

	return out
}

// InducedSubgraph returns the subgraph induced by the vertices of g whose ID
// is in keep: those vertices and every edge of g between two of them.
// IDs in keep that are not vertices of g are ignored.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id, nbrs := range g.adjacency {
		if !keep[id] {
			continue
		}
		out.addVertexLocked(id)
		for nb := range nbrs {
			if keep[nb] {
				out.addEdgeLocked(id, nb)
			}
		}
	}

	return out
}

// Map relabels every vertex of g through f and pushes each edge along.
// f runs on a snapshot of g taken under its read lock, so f may itself
// read or modify g.
//
// Errors:
//   - ErrEmptyVertexID: f returned "" for some vertex.
//   - ErrNotInjective: f sends two distinct vertices to the same ID.
//
// Complexity: O(V + E).
func Map(g *Graph, f func(string) string) (*Graph, error) {
	ids, edges := g.snapshot()

	image := make(map[string]string, len(ids))
	preimage := make(map[string]string, len(ids))
	for _, id := range ids {
		to := f(id)
		if to == "" {
			return nil, fmt.Errorf("Map: vertex %q: %w", id, ErrEmptyVertexID)
		}
		if prev, dup := preimage[to]; dup {
			return nil, fmt.Errorf("Map: %q and %q both map to %q: %w", prev, id, to, ErrNotInjective)
		}
		image[id] = to
		preimage[to] = id
	}

	out := NewGraph(WithCapacity(len(image)))
	for _, id := range ids {
		out.addVertexLocked(image[id])
	}
	for _, e := range edges {
		out.addEdgeLocked(image[e.From], image[e.To])
	}

	return out, nil
}

// IsSubgraphOf reports whether g ≤ h: every vertex of g is a vertex of h and
// every edge of g is an edge of h. The two graphs are never locked at the
// same time: g is snapshotted first, then h is read.
//
// Complexity: O(V + E) of g.
func IsSubgraphOf(g, h *Graph) bool {
	if g == h {
		return true
	}
	ids, edges := g.snapshot()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, id := range ids {
		if _, ok := h.adjacency[id]; !ok {
			return false
		}
	}
	for _, e := range edges {
		if !h.adjacentLocked(e.From, e.To) {
			return false
		}
	}

	return true
}

// snapshot returns the sorted vertices and canonical edges of g, read under
// one read lock.
func (g *Graph) snapshot() ([]string, []Edge) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesLocked(), g.edgesLocked()
}
