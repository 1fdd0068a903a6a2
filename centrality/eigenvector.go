package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// Eigenvector returns the principal eigenvector of the weighted adjacency
// matrix W, scaled to unit Euclidean norm with non-negative entries.
//
// Power iteration runs on W + I, which has the same eigenvectors but no
// period-2 oscillation on bipartite graphs. The start vector is 1 + degree.
// A graph with no edges yields all ones; an empty graph yields an empty
// slice. ErrNoConvergence is returned with the last iterate when the L1
// change stays above Tolerance after MaxIter rounds.
func Eigenvector(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := build(opts)
	n := g.VertexCount()
	if n == 0 {
		return []float64{}, nil
	}
	x := make([]float64, n)
	if g.EdgeCount() == 0 {
		for i := range x {
			x[i] = 1
		}
		return x, nil
	}

	for i := range x {
		x[i] = 1 + float64(g.Degree(i))
	}
	normalizeL2(x)
	next := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		if err := o.canceled(); err != nil {
			return nil, err
		}
		for v := 0; v < n; v++ {
			acc := x[v]
			for _, nb := range g.Neighbors(v) {
				acc += nb.Weight * x[nb.Vertex]
			}
			next[v] = acc
		}
		normalizeL2(next)

		var change float64
		for i := range x {
			change += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if change < float64(n)*o.Tolerance {
			return x, nil
		}
	}

	return x, fmt.Errorf("Eigenvector: %d iterations: %w", o.MaxIter, ErrNoConvergence)
}

// normalizeL2 scales x in place to unit Euclidean norm; a zero vector is left as is.
func normalizeL2(x []float64) {
	var sq float64
	for _, v := range x {
		sq += v * v
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for i := range x {
		x[i] /= norm
	}
}
