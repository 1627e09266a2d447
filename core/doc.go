// Package core provides a thread-safe, in-memory simple graph G = (V, E)
// with a minimal, composable API surface.
//
// A simple graph has no direction, no weights, no parallel edges and no
// self-loops. Its adjacency relation is therefore symmetric and irreflexive:
//
//	HasEdge(u, v) == HasEdge(v, u)
//	HasEdge(v, v) == false
//
// Storage is a nested map adjacency[u][v] = struct{}{} mirrored in both
// directions, so every edge query is O(1).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1), idempotent
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error         // O(1), idempotent, auto-adds endpoints
//	RemoveEdge(u, v string) error      // O(1)
//	HasEdge(u, v string) bool          // O(1)
//
//	// Queries
//	Vertices() []string                // sorted
//	Edges() []Edge                     // canonical From < To, sorted
//	NeighborIDs(id string) ([]string, error)
//	Stats() GraphStats
//
// Views never mutate their input:
//
//	Complement(g)            // flip adjacency between distinct vertices
//	InducedSubgraph(g, keep) // restrict to a vertex subset
//	Map(g, f)                // injective relabeling
//	IsSubgraphOf(g, h)       // g ≤ h
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("C", "D")
//	g.HasEdge("B", "A") // true
//	core.Complement(g).HasEdge("A", "C") // true
//
// Concurrency: one sync.RWMutex guards each Graph. Views take the read lock
// of their source only.
package core
