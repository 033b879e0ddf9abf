package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/primweight/core"
	"github.com/katalvlaran/primweight/prim_kruskal"
)

// ExamplePrim grows the MST of a small 4-vertex graph from vertex 0.
// The cheapest spanning set is {0-1, 1-2, 2-3} with total weight 1+2+1 = 4.
func ExamplePrim() {
	// 1. Four vertices; edges are walked in the direction they are added.
	g, _ := core.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 4)
	g.AddEdge(1, 2, 2)
	g.AddEdge(1, 3, 5)
	g.AddEdge(2, 3, 1)

	// 2. Run Prim.
	res, err := prim_kruskal.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total.
	fmt.Println(res)
	// Output: 4
}

// ExamplePrim_notConnected shows the outcome for an isolated vertex.
func ExamplePrim_notConnected() {
	g, _ := core.NewGraph(3)
	g.AddEdge(0, 1, 3)

	res, _ := prim_kruskal.Prim(g)
	fmt.Println(res, res.Reached)
	// Output: not connected 2
}

// ExampleKruskal computes the same weight on an undirected pentagon with one chord.
func ExampleKruskal() {
	g, _ := core.NewGraph(5, core.WithSymmetric())
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 4)
	g.AddEdge(3, 4, 5)
	g.AddEdge(4, 0, 6)
	g.AddEdge(0, 2, 1)

	k, _ := prim_kruskal.Kruskal(g)
	p, _ := prim_kruskal.Prim(g)
	fmt.Println(k.Weight, p.Weight)
	// Output: 12 12
}
