// Package core_test provides runnable examples for core.Graph.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// ExampleGraph_Induced builds a small distance graph and extracts the
// neighborhood of one vertex.
func ExampleGraph_Induced() {
	g := core.NewGraph()
	_, _ = g.AddEdge("hub", "a", 1.5)
	_, _ = g.AddEdge("hub", "b", 2)
	_, _ = g.AddEdge("a", "b", 0.5)

	hub, _ := g.IndexOf("hub")
	var keep []int
	for _, nb := range g.Neighbors(hub) {
		keep = append(keep, nb.Vertex)
	}
	sub, _ := g.Induced(keep)
	fmt.Println(sub.VertexCount(), sub.EdgeCount())
	// Output: 2 1
}
