// Package core defines the simple undirected Graph used by the checkers,
// together with the sentinel errors and the NewGraph constructor.
//
// A Graph is a vertex catalog plus a symmetric, irreflexive adjacency
// relation. All APIs are guarded by a single sync.RWMutex, so a Graph can be
// read from many goroutines while one writer mutates it.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - self-loop requested on a simple graph.
//	ErrNotInjective    - relabeling maps two vertices onto one ID.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was requested. Simple graphs are irreflexive.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotInjective indicates a relabeling function sent two vertices to the same ID.
	ErrNotInjective = errors.New("core: relabeling is not injective")
)

// Edge is an unordered pair of distinct vertices.
//
// Edges returned by the Graph are canonical: From < To.
type Edge struct {
	From string
	To   string
}

// NewEdge returns the canonical form of the unordered pair {u, v}.
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{From: u, To: v}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertices pre-registers the given vertex IDs. Empty IDs are skipped.
func WithVertices(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id != "" {
				g.addVertexLocked(id)
			}
		}
	}
}

// WithCapacity hints the expected number of vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 && len(g.adjacency) == 0 {
			g.adjacency = make(map[string]map[string]struct{}, n)
		}
	}
}

// Graph is a simple undirected graph.
//
// adjacency[u] holds the neighbor set of u; every vertex has an entry even
// when isolated, so the key set of adjacency is the vertex catalog.
// Invariants: v ∈ adjacency[u] ⇔ u ∈ adjacency[v], and u ∉ adjacency[u].
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)) plus whatever the options insert.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.adjacency == nil {
		g.adjacency = make(map[string]map[string]struct{})
	}

	return g
}
