// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"github.com/katalvlaran/lvlath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from vertex index start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or the
// context error on cancellation.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[head]
		w.res.Order = append(w.res.Order, u)
		next := w.res.Depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.Neighbors(u) {
			if w.res.Depth[nb.Vertex] == Unreached {
				w.enqueue(nb.Vertex, next, u)
			}
		}
	}

	return nil
}

// HopDistances returns the hop-count distance from start to every vertex,
// Unreached where no path exists.
func HopDistances(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
