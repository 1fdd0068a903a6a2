// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Equal-length paths are detected with a relative tolerance (see sameDist).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// tieEpsilon is the relative tolerance under which two path lengths are equal.
const tieEpsilon = 1e-10

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a valid vertex index (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: index %d of %d", ErrVertexNotFound, source, n)
	}

	r := newRunner(g, cfg, source, n)
	r.process()

	return r.res, nil
}

// AllPairs returns the V×V matrix of shortest distances (+Inf where
// unreachable, 0 on the diagonal). Options apply to every source.
// Complexity: O(V·(V + E) log V) time, O(V²) space.
func AllPairs(g *core.Graph, opts ...Option) ([][]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	out := make([][]float64, n)
	for s := 0; s < n; s++ {
		res, err := Dijkstra(g, s, opts...)
		if err != nil {
			return nil, err
		}
		out[s] = res.Dist
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited []bool
	pq      nodePQ
}

// newRunner initializes dist=+Inf everywhere, dist[source]=0 and seeds the heap.
func newRunner(g *core.Graph, cfg Options, source, n int) *runner {
	res := &Result{Source: source, Dist: make([]float64, n)}
	for i := range res.Dist {
		res.Dist[i] = math.Inf(1)
	}
	res.Dist[source] = 0
	if cfg.PathCounts {
		res.Sigma = make([]float64, n)
		res.Pred = make([][]int, n)
		res.Order = make([]int, 0, n)
		res.Sigma[source] = 1
	}

	r := &runner{
		g:       g,
		options: cfg,
		res:     res,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// process repeatedly settles the closest unvisited vertex and relaxes its edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if r.res.Order != nil {
			r.res.Order = append(r.res.Order, u)
		}
		r.relax(u)
	}
}

// relax examines each edge incident to the settled vertex u.
func (r *runner) relax(u int) {
	dist := r.res.Dist
	for _, nb := range r.g.Neighbors(u) {
		v := nb.Vertex
		if r.visited[v] {
			continue
		}
		newDist := dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		switch {
		case sameDist(newDist, dist[v]):
			if r.res.Sigma != nil {
				r.res.Sigma[v] += r.res.Sigma[u]
				r.res.Pred[v] = append(r.res.Pred[v], u)
			}
		case newDist < dist[v]:
			dist[v] = newDist
			if r.res.Sigma != nil {
				r.res.Sigma[v] = r.res.Sigma[u]
				r.res.Pred[v] = append(r.res.Pred[v][:0], u)
			}
			heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
		}
	}
}

// sameDist reports whether a and b are equal within tieEpsilon (relative).
func sameDist(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	scale := math.Max(math.Abs(a), math.Abs(b))

	return math.Abs(a-b) <= tieEpsilon*scale
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
