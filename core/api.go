// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a graph.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int // vertices of degree 0
	MaxDegree     int
}

// Density returns |E| / C(|V|, 2), or 0 for graphs with fewer than two vertices.
func (s GraphStats) Density() float64 {
	if s.VertexCount < 2 {
		return 0
	}
	pairs := s.VertexCount * (s.VertexCount - 1) / 2

	return float64(s.EdgeCount) / float64(pairs)
}

// Stats produces a consistent snapshot of vertex/edge counts and degree extremes.
//
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
	}
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return stats
}
