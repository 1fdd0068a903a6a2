package centrality

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// Closeness returns the normalized closeness of every vertex, indexed by
// vertex index. Only vertices reachable within the cutoff contribute:
//
//	C(v) = (r − 1) / Σ_{u reached, u≠v} d(v, u)
//
// where r is the number of reached vertices including v. A vertex with no
// reachable neighbor gets NaN.
func Closeness(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := build(opts)
	n := g.VertexCount()
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		if err := o.canceled(); err != nil {
			return nil, err
		}
		res, err := dijkstra.Dijkstra(g, v, dijkstra.WithMaxDistance(o.Cutoff))
		if err != nil {
			return nil, fmt.Errorf("Closeness: source %d: %w", v, err)
		}
		var sum float64
		reached := 0
		for _, d := range res.Dist {
			if math.IsInf(d, 1) {
				continue
			}
			sum += d
			reached++
		}
		if reached <= 1 {
			out[v] = math.NaN()
			continue
		}
		out[v] = float64(reached-1) / sum
	}

	return out, nil
}
