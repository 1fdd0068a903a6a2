// Package efficiency computes the global and local efficiency of a
// distance-weighted core.Graph.
//
// Global efficiency is the mean reciprocal shortest-path distance over
// unordered vertex pairs:
//
//	E(G) = (1/P) · Σ_{i<j, 0<d(i,j)<∞} 1/d(i,j)
//
// where P depends on the pair policy: PairsAll uses every pair, n(n−1)/2,
// so unreachable pairs pull the value towards 0; PairsReachable counts only
// pairs with a finite positive distance.
//
// Local efficiency of v is the global efficiency of the subgraph induced by
// v's neighbors (v itself excluded), and 0 when v has fewer than two
// neighbors.
//
// Complexity:
//
//	Global: O(V·(V + E) log V). Local: Σ_v O(k_v·(k_v + e_v) log k_v) where
//	k_v is the degree of v and e_v the number of edges among its neighbors.
package efficiency

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// ErrTooFewVertices is returned when global efficiency is requested for a
// graph with fewer than two vertices (no pairs to average).
var ErrTooFewVertices = errors.New("efficiency: need at least two vertices")

// PairPolicy selects the denominator of the efficiency average.
type PairPolicy int

const (
	// PairsAll divides by n(n−1)/2; unreachable pairs count as zero.
	PairsAll PairPolicy = iota

	// PairsReachable divides by the number of pairs with finite distance.
	PairsReachable
)

// String implements fmt.Stringer.
func (p PairPolicy) String() string {
	switch p {
	case PairsAll:
		return "all"
	case PairsReachable:
		return "reachable"
	default:
		return fmt.Sprintf("PairPolicy(%d)", int(p))
	}
}

// ParsePairPolicy maps "all" / "reachable" to a PairPolicy.
func ParsePairPolicy(s string) (PairPolicy, error) {
	switch s {
	case "", "all":
		return PairsAll, nil
	case "reachable":
		return PairsReachable, nil
	default:
		return PairsAll, fmt.Errorf("efficiency: unknown pair policy %q", s)
	}
}

// Global returns the global efficiency of g under policy.
// Returns ErrTooFewVertices when g has fewer than two vertices.
func Global(g *core.Graph, policy PairPolicy) (float64, error) {
	n := g.VertexCount()
	if n < 2 {
		return 0, fmt.Errorf("Global: n=%d: %w", n, ErrTooFewVertices)
	}
	dist, err := dijkstra.AllPairs(g)
	if err != nil {
		return 0, fmt.Errorf("Global: %w", err)
	}

	return FromDistances(dist, policy), nil
}

// FromDistances evaluates the efficiency average over a precomputed distance
// matrix. Only the upper triangle is read. A matrix with fewer than two rows,
// or a PairsReachable matrix with no reachable pair, yields 0.
func FromDistances(dist [][]float64, policy PairPolicy) float64 {
	n := len(dist)
	if n < 2 {
		return 0
	}
	var sum float64
	reachable := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist[i][j]
			if d > 0 && !math.IsInf(d, 1) {
				sum += 1 / d
				reachable++
			}
		}
	}

	pairs := float64(n) * float64(n-1) / 2
	if policy == PairsReachable {
		if reachable == 0 {
			return 0
		}
		pairs = float64(reachable)
	}

	return sum / pairs
}

// LocalAt returns the local efficiency of vertex v.
func LocalAt(g *core.Graph, v int, policy PairPolicy) (float64, error) {
	nbs := g.Neighbors(v)
	if len(nbs) <= 1 {
		return 0, nil
	}
	keep := make([]int, len(nbs))
	for i, nb := range nbs {
		keep[i] = nb.Vertex
	}
	sub, err := g.Induced(keep)
	if err != nil {
		return 0, fmt.Errorf("LocalAt(%d): %w", v, err)
	}

	return Global(sub, policy)
}

// Local returns the local efficiency of every vertex in index order and
// their arithmetic mean. An empty graph yields (nil, 0, ErrTooFewVertices).
func Local(g *core.Graph, policy PairPolicy) ([]float64, float64, error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, fmt.Errorf("Local: empty graph: %w", ErrTooFewVertices)
	}
	out := make([]float64, n)
	var sum float64
	for v := 0; v < n; v++ {
		e, err := LocalAt(g, v, policy)
		if err != nil {
			return nil, 0, err
		}
		out[v] = e
		sum += e
	}

	return out, sum / float64(n), nil
}
