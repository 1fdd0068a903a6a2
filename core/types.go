// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex and Edge types and the
// sentinel errors returned by graph construction.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - edge weight is not a finite positive number.
//	ErrLoopNotAllowed      - self-loop attempted.
//	ErrMultiEdgeNotAllowed - parallel edge attempted.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight that is NaN, infinite, zero or negative.
	ErrBadWeight = errors.New("core: edge weight must be finite and positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex pairs the caller-visible ID with its stable index.
type Vertex struct {
	// ID is the unique identifier supplied at insertion.
	ID string

	// Index is the 0-based insertion position of the vertex.
	Index int
}

// Edge is one undirected connection. From < To is NOT guaranteed; the
// endpoints are stored in the order they were passed to AddEdge.
type Edge struct {
	// Index is the 0-based insertion position of the edge.
	Index int

	// From and To are vertex indices.
	From int
	To   int

	// Weight is the "distance" carried by the edge (always > 0).
	Weight float64
}

// Neighbor is one adjacency entry as seen from a fixed vertex.
type Neighbor struct {
	Vertex int     // index of the adjacent vertex
	Edge   int     // index of the connecting edge
	Weight float64 // distance of the connecting edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and edge catalogs. Negative hints are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.ids = make([]string, 0, vertices)
			g.adj = make([][]Neighbor, 0, vertices)
			g.index = make(map[string]int, vertices)
		}
		if edges > 0 {
			g.edges = make([]Edge, 0, edges)
		}
	}
}

// Graph is an undirected, simple, positively weighted graph.
//
// mu guards every field; the adjacency slices returned by Neighbors are
// read-only views and must not be modified by callers.
type Graph struct {
	mu sync.RWMutex

	index map[string]int // vertex ID → index
	ids   []string       // index → vertex ID
	edges []Edge         // edge index → Edge
	adj   [][]Neighbor   // vertex index → incident neighbors in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the capacity hint, if any).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.index == nil {
		g.index = make(map[string]int)
	}

	return g
}
