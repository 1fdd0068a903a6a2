// SPDX-License-Identifier: MIT
// Package core_test verifies vertex/edge lifecycle rules, index stability
// and induced-subgraph semantics of core.Graph.
package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/stretchr/testify/require"
)

// triangle builds A–B(1), B–C(2), A–C(3).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 3)
	require.NoError(t, err)

	return g
}

func TestAddVertex_IdempotentAndIndexed(t *testing.T) {
	g := core.NewGraph()
	a, err := g.AddVertex("A")
	require.NoError(t, err)
	b, err := g.AddVertex("B")
	require.NoError(t, err)
	again, err := g.AddVertex("A")
	require.NoError(t, err)

	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, a, again, "re-adding must return the existing index")
	require.Equal(t, 2, g.VertexCount())

	_, err = g.AddVertex("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_Validation(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		w        float64
		want     error
	}{
		{"empty", "", "B", 1, core.ErrEmptyVertexID},
		{"zero weight", "A", "B", 0, core.ErrBadWeight},
		{"negative weight", "A", "B", -2, core.ErrBadWeight},
		{"nan weight", "A", "B", math.NaN(), core.ErrBadWeight},
		{"inf weight", "A", "B", math.Inf(1), core.ErrBadWeight},
		{"loop", "A", "A", 1, core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestAddEdge_RejectsParallelInEitherDirection(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 4)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Equal(t, 1, g.EdgeCount())
}

func TestNeighborsAndDegrees(t *testing.T) {
	g := triangle(t)
	require.Equal(t, []int{2, 2, 2}, g.Degrees())

	nbs := g.Neighbors(0) // A
	require.Len(t, nbs, 2)
	require.Equal(t, 1, nbs[0].Vertex)
	require.Equal(t, 1.0, nbs[0].Weight)
	require.Equal(t, 2, nbs[1].Vertex)
	require.Equal(t, 3.0, nbs[1].Weight)

	w, ok := g.Weight(2, 1)
	require.True(t, ok)
	require.Equal(t, 2.0, w)
	require.False(t, g.HasEdge(0, 5))
	require.Nil(t, g.Neighbors(9))
	require.Equal(t, 6.0, g.TotalWeight())
}

func TestVertexID_RoundTrip(t *testing.T) {
	g := triangle(t)
	for _, v := range g.Vertices() {
		id, err := g.VertexID(v.Index)
		require.NoError(t, err)
		idx, ok := g.IndexOf(id)
		require.True(t, ok)
		require.Equal(t, v.Index, idx)
	}
	_, err := g.VertexID(7)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdgeByIndex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex("x")
	_, _ = g.AddVertex("y")
	eid, err := g.AddEdgeByIndex(0, 1, 2.5)
	require.NoError(t, err)
	require.Equal(t, 0, eid)
	_, err = g.AddEdgeByIndex(0, 3, 1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestInduced_KeepsOnlyInternalEdges(t *testing.T) {
	g := triangle(t)
	_, err := g.AddEdge("C", "D", 5)
	require.NoError(t, err)

	sub, err := g.Induced([]int{2, 3}) // C, D
	require.NoError(t, err)
	require.Equal(t, 2, sub.VertexCount())
	require.Equal(t, 1, sub.EdgeCount())
	id, _ := sub.VertexID(0)
	require.Equal(t, "C", id)
	w, ok := sub.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 5.0, w)

	_, err = g.Induced([]int{0, 0})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Induced([]int{42})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := triangle(t)
	c := g.Clone()
	require.Equal(t, g.Edges(), c.Edges())

	_, err := c.AddEdge("C", "D", 1)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount(), "mutating the clone must not touch the source")
	require.Equal(t, 4, c.EdgeCount())
}
