package core_test

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// ExampleGraph demonstrates mirrored links and vertex removal.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	_ = g.AddVertex("C")
	_, _ = g.SetLink("A", "B", 5)
	_, _ = g.SetLink("B", "C", 2)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Arc B→A exists?", g.HasLink("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.ArcCount())

	// Output:
	// Vertices: [A B C]
	// Arc B→A exists? true
	// After removing B: [A C] 0
}
