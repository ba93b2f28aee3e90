// File: torusgraph/example_test.go
package torusgraph_test

import (
	"fmt"

	"github.com/katalvlaran/torus/torusgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_Neighbors shows the wraparound adjacency of a corner node.
// Scenario:
//
//   - 3×3 torus
//   - (0,0) sits in a corner, yet still has four neighbors:
//     up (0,1), right (1,0), left wraps to (2,0), down wraps to (0,2)
//
// Complexity: O(1)
func ExampleGraph_Neighbors() {
	g, err := torusgraph.New(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbs, err := g.Neighbors(torusgraph.ID{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nbs)
	// Output: [(0,1) (1,0) (2,0) (0,2)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Nodes
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_Nodes prints every node with its connected neighbors, row by row.
func ExampleGraph_Nodes() {
	g, _ := torusgraph.New(2, 2)
	for _, n := range g.Nodes() {
		fmt.Println(n, "Connected:", n.Neighbors())
	}
	// Output:
	// (0,0) Connected: [(0,1) (1,0) (1,0) (0,1)]
	// (1,0) Connected: [(1,1) (0,0) (0,0) (1,1)]
	// (0,1) Connected: [(0,0) (1,1) (1,1) (0,0)]
	// (1,1) Connected: [(1,0) (0,1) (0,1) (1,0)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Distances
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_EdgeCost shows that distances ignore the wrap even though
// adjacency does not: (0,0) and (4,0) are neighbors on a 5-wide torus.
func ExampleGraph_EdgeCost() {
	g, _ := torusgraph.New(5, 5)
	a, b := torusgraph.ID{X: 0, Y: 0}, torusgraph.ID{X: 4, Y: 0}

	cost, _ := g.EdgeCost(a, b)
	h, _ := g.HeuristicDistance(a, b)
	fmt.Println(g.Adjacent(a, b), cost, h)
	// Output: true 4 16
}
