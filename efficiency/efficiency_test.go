package efficiency_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/efficiency"
	"github.com/stretchr/testify/require"
)

func TestGlobal_TwoVertices(t *testing.T) {
	for _, d := range []float64{0.25, 1, 3.7} {
		g := core.NewGraph()
		_, err := g.AddEdge("a", "b", d)
		require.NoError(t, err)

		e, err := efficiency.Global(g, efficiency.PairsAll)
		require.NoError(t, err)
		require.Equal(t, 1/d, e, "two vertices at distance d have efficiency exactly 1/d")
	}
}

func TestTriangle_UnitWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)

	e, err := efficiency.Global(g, efficiency.PairsAll)
	require.NoError(t, err)
	require.Equal(t, 1.0, e)

	locals, avg, err := efficiency.Local(g, efficiency.PairsAll)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1}, locals)
	require.Equal(t, 1.0, avg)
}

func TestLocal_DegenerateVertices(t *testing.T) {
	// Star: the hub's leaves are pairwise disconnected, each leaf has one neighbor.
	g, err := builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)
	_, err = g.AddVertex("isolated")
	require.NoError(t, err)

	locals, avg, err := efficiency.Local(g, efficiency.PairsAll)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0, 0}, locals)
	require.Equal(t, 0.0, avg)
}

func TestGlobal_PairPolicy(t *testing.T) {
	// Two disjoint unit edges: 2 reachable pairs out of 6.
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("c", "d", 1)

	all, err := efficiency.Global(g, efficiency.PairsAll)
	require.NoError(t, err)
	require.InDelta(t, 2.0/6.0, all, 1e-15)

	reach, err := efficiency.Global(g, efficiency.PairsReachable)
	require.NoError(t, err)
	require.Equal(t, 1.0, reach)
}

func TestGlobal_TooFewVertices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("solo")
	_, err := efficiency.Global(g, efficiency.PairsAll)
	require.ErrorIs(t, err, efficiency.ErrTooFewVertices)

	_, _, err = efficiency.Local(core.NewGraph(), efficiency.PairsAll)
	require.ErrorIs(t, err, efficiency.ErrTooFewVertices)
}

func TestFromDistances_IgnoresInfAndZero(t *testing.T) {
	inf := math.Inf(1)
	d := [][]float64{
		{0, 2, inf},
		{2, 0, 4},
		{inf, 4, 0},
	}
	require.InDelta(t, (0.5+0.25)/3, efficiency.FromDistances(d, efficiency.PairsAll), 1e-15)
	require.Equal(t, 0.0, efficiency.FromDistances(nil, efficiency.PairsAll))
}

func TestParsePairPolicy(t *testing.T) {
	p, err := efficiency.ParsePairPolicy("reachable")
	require.NoError(t, err)
	require.Equal(t, efficiency.PairsReachable, p)
	require.Equal(t, "reachable", p.String())
	p, err = efficiency.ParsePairPolicy("")
	require.NoError(t, err)
	require.Equal(t, efficiency.PairsAll, p)
	_, err = efficiency.ParsePairPolicy("some")
	require.Error(t, err)
}
