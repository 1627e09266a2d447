// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

// CloneEmpty returns a new Graph with the same vertices and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for id := range g.adjacency {
		clone.adjacency[id] = make(map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for id, nbrs := range g.adjacency {
		cp := make(map[string]struct{}, len(nbrs))
		for nb := range nbrs {
			cp[nb] = struct{}{}
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes all vertices and edges.
// Complexity: O(1) plus garbage collection of the old catalog.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
}
