// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Induced renumbers kept vertices 0..k-1 in the order given by the caller.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "fmt"

// Induced returns the subgraph induced by the vertex indices in keep: the
// result has len(keep) vertices (vertex j of the result is keep[j] of g, with
// the same ID) and every edge of g whose endpoints are both kept.
// Duplicate or out-of-range indices yield ErrVertexNotFound.
//
// Complexity: O(Σ deg(keep)). Concurrency: read lock only on source.
func (g *Graph) Induced(keep []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos := make(map[int]int, len(keep)) // source index → result index
	for j, i := range keep {
		if i < 0 || i >= len(g.ids) {
			return nil, fmt.Errorf("Induced: index %d: %w", i, ErrVertexNotFound)
		}
		if _, dup := pos[i]; dup {
			return nil, fmt.Errorf("Induced: duplicate index %d: %w", i, ErrVertexNotFound)
		}
		pos[i] = j
	}

	out := NewGraph(WithCapacity(len(keep), 0))
	for _, i := range keep {
		out.addVertexLocked(g.ids[i])
	}
	for _, i := range keep {
		u := pos[i]
		for _, nb := range g.adj[i] {
			v, ok := pos[nb.Vertex]
			if !ok || v < u {
				continue // outside the set, or already emitted from the other side
			}
			eid := len(out.edges)
			out.edges = append(out.edges, Edge{Index: eid, From: u, To: v, Weight: nb.Weight})
			out.adj[u] = append(out.adj[u], Neighbor{Vertex: v, Edge: eid, Weight: nb.Weight})
			out.adj[v] = append(out.adj[v], Neighbor{Vertex: u, Edge: eid, Weight: nb.Weight})
		}
	}

	return out, nil
}

// Clone returns a deep copy of g with identical vertex and edge indices.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(g.ids), len(g.edges)))
	for _, id := range g.ids {
		out.addVertexLocked(id)
	}
	out.edges = append(out.edges, g.edges...)
	for i, nbs := range g.adj {
		out.adj[i] = append([]Neighbor(nil), nbs...)
	}

	return out
}
