// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns canonical edges (From < To) sorted by (From, To).
// Concurrency:
//   - Mutations under the write lock; read queries under the read lock.

package core

import "sort"

// AddEdge links u and v. Missing endpoints are added first.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, ensure both endpoints exist.
//  3. If the pair is already adjacent, return (idempotent).
//  4. Insert v into N(u) and u into N(v).
//
// Errors:
//   - ErrEmptyVertexID: either endpoint is "".
//   - ErrLoopNotAllowed: u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(u, v)

	return nil
}

// addEdgeLocked inserts the symmetric pair; caller validated u != v.
func (g *Graph) addEdgeLocked(u, v string) {
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	if _, ok := g.adjacency[u][v]; ok {
		return
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrEdgeNotFound: the pair is not adjacent (including unknown vertices).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent. The relation is symmetric,
// so HasEdge(u, v) == HasEdge(v, u), and HasEdge(v, v) is always false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacentLocked(u, v)
}

func (g *Graph) adjacentLocked(u, v string) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns all edges in canonical form sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
