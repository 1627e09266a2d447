package core_test

import (
	"fmt"

	"github.com/katalvlaran/coclique/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Edges auto-add their endpoints.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.Edges())

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// After removing B: [A C] [{A C}]
}

// ExampleComplement shows that the complement of a triangle plus an isolated
// vertex is a star around that vertex.
func ExampleComplement() {
	g := core.NewGraph(core.WithVertices("D"))
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println(core.Complement(g).Edges())

	// Output:
	// [{A D} {B D} {C D}]
}
