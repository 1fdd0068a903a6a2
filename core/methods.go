// Package core: Graph method implementations.
//
// All mutators take the write lock; all queries take the read lock. Adjacency
// is a slice of Neighbor per vertex, giving O(1) neighbor access by index.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex with the given ID and returns its index.
// If the vertex already exists its existing index is returned (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (int, error) {
	if id == "" {
		return -1, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(id), nil
}

// addVertexLocked assumes the write lock is held.
func (g *Graph) addVertexLocked(id string) int {
	if idx, ok := g.index[id]; ok {
		return idx
	}
	idx := len(g.ids)
	g.index[id] = idx
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)

	return idx
}

// AddEdge connects from and to with an undirected edge of the given weight,
// creating missing endpoints, and returns the new edge index.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed (wrapped with the offending endpoints).
// Complexity: O(deg(from)) for the parallel-edge check.
func (g *Graph) AddEdge(from, to string, weight float64) (int, error) {
	if from == "" || to == "" {
		return -1, ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return -1, fmt.Errorf("AddEdge(%s,%s) w=%g: %w", from, to, weight, ErrBadWeight)
	}
	if from == to {
		return -1, fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.addVertexLocked(from)
	v := g.addVertexLocked(to)
	for _, nb := range g.adj[u] {
		if nb.Vertex == v {
			return -1, fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrMultiEdgeNotAllowed)
		}
	}

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{Index: eid, From: u, To: v, Weight: weight})
	g.adj[u] = append(g.adj[u], Neighbor{Vertex: v, Edge: eid, Weight: weight})
	g.adj[v] = append(g.adj[v], Neighbor{Vertex: u, Edge: eid, Weight: weight})

	return eid, nil
}

// AddEdgeByIndex connects two existing vertices by index.
// Same validation as AddEdge; ErrVertexNotFound for out-of-range indices.
func (g *Graph) AddEdgeByIndex(u, v int, weight float64) (int, error) {
	g.mu.RLock()
	n := len(g.ids)
	var from, to string
	if u >= 0 && u < n && v >= 0 && v < n {
		from, to = g.ids[u], g.ids[v]
	}
	g.mu.RUnlock()
	if from == "" || to == "" {
		return -1, fmt.Errorf("AddEdgeByIndex(%d,%d): %w", u, v, ErrVertexNotFound)
	}

	return g.AddEdge(from, to, weight)
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns |E|. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// IndexOf returns the index of the vertex with the given ID.
func (g *Graph) IndexOf(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.index[id]

	return idx, ok
}

// VertexID returns the ID of vertex i, or ErrVertexNotFound.
func (g *Graph) VertexID(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.ids) {
		return "", fmt.Errorf("VertexID(%d): %w", i, ErrVertexNotFound)
	}

	return g.ids[i], nil
}

// Vertices returns all vertices in index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.ids))
	for i, id := range g.ids {
		out[i] = Vertex{ID: id, Index: i}
	}

	return out
}

// Edges returns a copy of the edge catalog in index order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the adjacency of vertex i in insertion order.
// The returned slice is shared with the graph and MUST be treated as read-only.
// Out-of-range indices yield nil.
// Complexity: O(1).
func (g *Graph) Neighbors(i int) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.adj) {
		return nil
	}

	return g.adj[i]
}

// Degree returns the number of edges incident to vertex i (0 if out of range).
func (g *Graph) Degree(i int) int {
	return len(g.Neighbors(i))
}

// Degrees returns the degree sequence in index order.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, len(g.adj))
	for i, nbs := range g.adj {
		out[i] = len(nbs)
	}

	return out
}

// Weight returns the distance of the edge u–v, if any.
// Complexity: O(min(deg u, deg v)).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return 0, false
	}
	a, b := u, v
	if len(g.adj[b]) < len(g.adj[a]) {
		a, b = b, a
	}
	for _, nb := range g.adj[a] {
		if nb.Vertex == b {
			return nb.Weight, true
		}
	}

	return 0, false
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// TotalWeight returns the sum of all edge distances.
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}
