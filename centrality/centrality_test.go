package centrality_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/centrality"
	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

// mustBuild wraps builder.BuildGraph with unit weights.
func mustBuild(t *testing.T, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, con)
	require.NoError(t, err)

	return g
}

func TestNilGraph(t *testing.T) {
	_, err := centrality.Closeness(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
	_, err = centrality.Betweenness(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
	_, err = centrality.Eigenvector(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
	_, err = centrality.Convergence(nil)
	require.ErrorIs(t, err, centrality.ErrNilGraph)
}

func TestWithCutoff_Panics(t *testing.T) {
	require.Panics(t, func() { centrality.WithCutoff(-0.5) })
	require.Panics(t, func() { centrality.WithCutoff(math.NaN()) })
}

// ------------------------------------------------------------------------
// Closeness
// ------------------------------------------------------------------------

func TestCloseness_Path(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	c, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.0 / 3, 1, 2.0 / 3}, c, 1e-12)
}

func TestCloseness_IsolatedIsNaN(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 2)
	_, _ = g.AddVertex("lonely")
	c, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.Equal(t, 0.5, c[0])
	require.Equal(t, 0.5, c[1])
	require.True(t, math.IsNaN(c[2]))
}

func TestCloseness_Cutoff(t *testing.T) {
	g := mustBuild(t, builder.Path(3))
	c, err := centrality.Closeness(g, centrality.WithCutoff(1))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, c, 1e-12)
}

func TestCloseness_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := centrality.Closeness(mustBuild(t, builder.Path(3)), centrality.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// Betweenness
// ------------------------------------------------------------------------

func TestBetweenness_Path(t *testing.T) {
	b, err := centrality.Betweenness(mustBuild(t, builder.Path(3)))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 0}, b, 1e-12)
}

func TestBetweenness_StarHub(t *testing.T) {
	// Hub lies on all C(4,2) leaf-to-leaf paths.
	b, err := centrality.Betweenness(mustBuild(t, builder.Star(5)))
	require.NoError(t, err)
	require.InDelta(t, 6, b[0], 1e-12)
	for i := 1; i < 5; i++ {
		require.InDelta(t, 0, b[i], 1e-12)
	}
}

func TestBetweenness_SplitsTies(t *testing.T) {
	// Square S-A-T-B-S: every opposite pair has two shortest paths.
	g := core.NewGraph()
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("A", "T", 1)
	_, _ = g.AddEdge("T", "B", 1)
	_, _ = g.AddEdge("B", "S", 1)
	b, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, b, 1e-12)
}

func TestBetweenness_WeightedDetour(t *testing.T) {
	// A—C direct costs 5, via B costs 2: B carries the pair.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 5)
	b, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 1, 0}, b, 1e-12)
}

func TestBetweenness_Cutoff(t *testing.T) {
	b, err := centrality.Betweenness(mustBuild(t, builder.Path(4)), centrality.WithCutoff(1))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0, 0, 0}, b, 1e-12)
}

// ------------------------------------------------------------------------
// Eigenvector
// ------------------------------------------------------------------------

func TestEigenvector_CompleteIsUniform(t *testing.T) {
	x, err := centrality.Eigenvector(mustBuild(t, builder.Complete(4)))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, x, 1e-8)
}

func TestEigenvector_StarHubDominates(t *testing.T) {
	x, err := centrality.Eigenvector(mustBuild(t, builder.Star(6)))
	require.NoError(t, err)
	var sq float64
	for i, v := range x {
		sq += v * v
		if i > 0 {
			require.Greater(t, x[0], v)
			require.InDelta(t, x[1], v, 1e-8)
		}
	}
	require.InDelta(t, 1, sq, 1e-9)
	// Star K(1,5): hub/leaf ratio is √5.
	require.InDelta(t, math.Sqrt(5), x[0]/x[1], 1e-6)
}

func TestEigenvector_Degenerate(t *testing.T) {
	x, err := centrality.Eigenvector(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, x)

	g := core.NewGraph()
	_, _ = g.AddVertex("a")
	_, _ = g.AddVertex("b")
	x, err = centrality.Eigenvector(g)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, x)
}

func TestEigenvector_NoConvergence(t *testing.T) {
	_, err := centrality.Eigenvector(mustBuild(t, builder.Path(6)),
		centrality.WithMaxIter(1), centrality.WithTolerance(1e-300))
	require.ErrorIs(t, err, centrality.ErrNoConvergence)
}

// ------------------------------------------------------------------------
// Convergence
// ------------------------------------------------------------------------

func TestConvergence_EdgeIndexed(t *testing.T) {
	g := mustBuild(t, builder.Star(4))
	c, err := centrality.Convergence(g)
	require.NoError(t, err)
	require.Len(t, c, g.EdgeCount())
	// hub→leaf: {hub, other leaves} vs {leaf} = |3−1|/4.
	for _, v := range c {
		require.InDelta(t, 0.5, v, 1e-12)
	}
}

func TestConvergence_SymmetricIsZero(t *testing.T) {
	for _, con := range []builder.Constructor{builder.Cycle(4), builder.Cycle(7), builder.Path(2)} {
		c, err := centrality.Convergence(mustBuild(t, con))
		require.NoError(t, err)
		for _, v := range c {
			require.InDelta(t, 0, v, 1e-12)
		}
	}
}

func TestConvergence_NoEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("a")
	c, err := centrality.Convergence(g)
	require.NoError(t, err)
	require.Empty(t, c)
}
