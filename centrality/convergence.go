package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// Convergence returns the convergence degree of every edge, indexed by edge
// index (length EdgeCount, not VertexCount).
//
// For edge {a, b} let in(a→b) be the number of vertices x whose hop-count
// shortest path to b may end with a→b, i.e. d(x, b) = d(x, a) + 1. Then
//
//	conv(a, b) = |in(a→b) − in(b→a)| / (in(a→b) + in(b→a))
//
// which is 0 for an edge balanced between the two sides and approaches 1
// for an edge that funnels one side into the other. The denominator is
// never zero because a ∈ in(a→b) and b ∈ in(b→a).
func Convergence(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := build(opts)
	edges := g.Edges()
	inAB := make([]int, len(edges))
	inBA := make([]int, len(edges))
	for x := 0; x < g.VertexCount(); x++ {
		if err := o.canceled(); err != nil {
			return nil, err
		}
		d, err := bfs.HopDistances(g, x)
		if err != nil {
			return nil, fmt.Errorf("Convergence: source %d: %w", x, err)
		}
		for i, e := range edges {
			da, db := d[e.From], d[e.To]
			if da == bfs.Unreached {
				continue
			}
			switch {
			case db == da+1:
				inAB[i]++
			case da == db+1:
				inBA[i]++
			}
		}
	}

	out := make([]float64, len(edges))
	for i := range edges {
		out[i] = math.Abs(float64(inAB[i]-inBA[i])) / float64(inAB[i]+inBA[i])
	}

	return out, nil
}
