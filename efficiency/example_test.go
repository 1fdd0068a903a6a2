package efficiency_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/efficiency"
)

// ExampleGlobal: on a unit path a—b—c the pairs contribute 1, 1 and 1/2.
func ExampleGlobal() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)

	e, _ := efficiency.Global(g, efficiency.PairsAll)
	fmt.Printf("%.4f\n", e)
	// Output: 0.8333
}
