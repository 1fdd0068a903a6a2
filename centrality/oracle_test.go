package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/centrality"
	"github.com/katalvlaran/lvlath/core"
)

// toGonum mirrors g as a gonum weighted undirected graph with node IDs equal
// to vertex indices.
func toGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.VertexCount(); i++ {
		out.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To)), e.Weight))
	}

	return out
}

// gonum's closeness is 1/Σd over all vertices; on a connected graph ours is
// that times n−1.
func TestCloseness_MatchesGonumOnConnectedGraphs(t *testing.T) {
	for _, con := range []builder.Constructor{builder.Grid(4, 5), builder.Complete(6), builder.Cycle(9)} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11),
			builder.WithWeightFn(builder.UniformWeightFn(0.5, 4))}, con)
		require.NoError(t, err)

		got, err := centrality.Closeness(g)
		require.NoError(t, err)
		gg := toGonum(g)
		want := network.Closeness(gg, path.DijkstraAllPaths(gg))
		n := float64(g.VertexCount())
		for v := range got {
			require.InDelta(t, (n-1)*want[int64(v)], got[v], 1e-9, "vertex %d", v)
		}
	}
}
