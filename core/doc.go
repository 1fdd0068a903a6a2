// Package core provides the in-memory Graph used by every lvlath algorithm:
// an undirected, simple graph whose edges carry a strictly positive float64
// "distance" weight.
//
// Vertices are inserted with a caller-chosen string ID (for example the node
// id of a GraphML document) and are addressed by a stable 0-based index equal
// to their insertion order. Algorithms work on indices only, which keeps hot
// loops free of map lookups; the ID↔index mapping is available through
// IndexOf and VertexID.
//
// Guarantees:
//
//   - Undirected: AddEdge(u,v) is visible from both endpoints.
//   - Simple: self-loops (ErrLoopNotAllowed) and parallel edges
//     (ErrMultiEdgeNotAllowed) are rejected.
//   - Positive weights: NaN, ±Inf, zero and negative weights are rejected
//     with ErrBadWeight, so every path-based metric sees a metric space.
//   - Stable indices: vertex i stays vertex i for the lifetime of the Graph;
//     edge indices follow insertion order as well.
//   - Concurrency: all methods take a sync.RWMutex, so a graph built once can
//     be read from many goroutines.
//
// Core Methods:
//
//	AddVertex(id string) (int, error)              // O(1), idempotent
//	AddEdge(from, to string, w float64) (int, error) // O(1)
//	VertexCount() / EdgeCount()                      // O(1)
//	Neighbors(i int) []Neighbor                      // O(1), read-only view
//	Degrees() []int                                  // O(V)
//	Induced(keep []int) (*Graph, error)              // O(V+E)
//
// Complexity:
//
//	Memory O(V + E): one adjacency slice per vertex plus the edge catalog.
package core
