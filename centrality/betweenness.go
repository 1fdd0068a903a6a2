package centrality

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// Betweenness returns the shortest-path betweenness of every vertex using
// Brandes' dependency accumulation over weighted shortest paths.
//
// Each unordered pair is visited from both ends, so the raw sums are halved.
// Scores are not normalized. Paths longer than the cutoff are ignored.
func Betweenness(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := build(opts)
	n := g.VertexCount()
	bc := make([]float64, n)
	delta := make([]float64, n)
	for s := 0; s < n; s++ {
		if err := o.canceled(); err != nil {
			return nil, err
		}
		res, err := dijkstra.Dijkstra(g, s, dijkstra.WithMaxDistance(o.Cutoff), dijkstra.WithPathCounts())
		if err != nil {
			return nil, fmt.Errorf("Betweenness: source %d: %w", s, err)
		}
		for _, w := range res.Order {
			delta[w] = 0
		}
		// Back-propagate dependencies in non-increasing distance order.
		for i := len(res.Order) - 1; i >= 0; i-- {
			w := res.Order[i]
			coeff := (1 + delta[w]) / res.Sigma[w]
			for _, v := range res.Pred[w] {
				delta[v] += res.Sigma[v] * coeff
			}
			if w != s {
				bc[w] += delta[w]
			}
		}
	}
	for i := range bc {
		bc[i] /= 2
	}

	return bc, nil
}
