// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, basic distances, cutoff handling, path counting and all-pairs.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
	"github.com/stretchr/testify/require"
)

// build creates a graph from (from, to, weight) triples.
func build(t *testing.T, edges [][3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64))
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.AllPairs(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("A")
	_, err := dijkstra.Dijkstra(g, 3)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A—B(1), B—C(2), A—C(5): A→C is 3 via B.
	g := build(t, [][3]interface{}{{"A", "B", 1.0}, {"B", "C", 2.0}, {"A", "C", 5.0}})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 3}, res.Dist)
	require.Nil(t, res.Sigma, "path counts are off by default")
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := build(t, [][3]interface{}{{"A", "B", 1.0}, {"C", "D", 1.0}})
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.True(t, res.Reached(1))
	require.False(t, res.Reached(2))
	require.True(t, math.IsInf(res.Dist[3], 1))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	// Path A—B—C—D with unit weights; cutoff 2 leaves D unreached.
	g := build(t, [][3]interface{}{{"A", "B", 1.0}, {"B", "C", 1.0}, {"C", "D", 1.0}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2), dijkstra.WithPathCounts())
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Dist[2])
	require.True(t, math.IsInf(res.Dist[3], 1))
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

// ------------------------------------------------------------------------
// 3. Path counting
// ------------------------------------------------------------------------

func TestDijkstra_PathCounts_Diamond(t *testing.T) {
	// S—A(1), S—B(1), A—T(1), B—T(1): two shortest S→T paths.
	g := build(t, [][3]interface{}{{"S", "A", 1.0}, {"S", "B", 1.0}, {"A", "T", 1.0}, {"B", "T", 1.0}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithPathCounts())
	require.NoError(t, err)

	tIdx, _ := g.IndexOf("T")
	require.Equal(t, 2.0, res.Sigma[tIdx])
	require.ElementsMatch(t, []int{1, 2}, res.Pred[tIdx])
	require.Equal(t, 0, res.Order[0], "source settles first")
	require.Equal(t, tIdx, res.Order[len(res.Order)-1])
}

func TestDijkstra_PathCounts_FloatTie(t *testing.T) {
	// 0.1+0.2 and 0.3 differ by float noise yet are the same length.
	g := build(t, [][3]interface{}{{"S", "A", 0.1}, {"A", "T", 0.2}, {"S", "T", 0.3}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithPathCounts())
	require.NoError(t, err)
	tIdx, _ := g.IndexOf("T")
	require.Equal(t, 2.0, res.Sigma[tIdx])
}

func TestAllPairs_Symmetric(t *testing.T) {
	g := build(t, [][3]interface{}{{"A", "B", 2.0}, {"B", "C", 3.0}, {"C", "D", 1.5}, {"A", "D", 10.0}})
	d, err := dijkstra.AllPairs(g)
	require.NoError(t, err)
	require.Len(t, d, 4)
	for i := range d {
		require.Equal(t, 0.0, d[i][i])
		for j := range d {
			require.InDelta(t, d[i][j], d[j][i], 1e-12)
		}
	}
	require.InDelta(t, 6.5, d[0][3], 1e-12)
}
