// Package dijkstra defines the options, result type and sentinel errors of
// the weighted shortest-path routines.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is out of range.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – paths longer than this are not explored. Default +Inf.
// PathCounts  – if true, Result.Sigma/Pred/Order are populated.
type Options struct {
	MaxDistance float64
	PathCounts  bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets the path-length cutoff.
// Panics with ErrBadMaxDistance on a negative or NaN value, signalling a
// configuration error early.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithPathCounts enables shortest-path counting and predecessor tracking.
func WithPathCounts() Option {
	return func(o *Options) {
		o.PathCounts = true
	}
}

// DefaultOptions returns Options with no cutoff and no path counting.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		PathCounts:  false,
	}
}

// Result is the outcome of one single-source run.
//
// Dist[v] is +Inf for vertices not reached (unreachable or beyond the
// cutoff). Sigma, Pred and Order are nil unless WithPathCounts was given:
// Sigma[v] is the number of shortest source→v paths, Pred[v] the
// predecessors of v on those paths, and Order the reached vertices in
// non-decreasing distance order (source first).
type Result struct {
	Source int
	Dist   []float64
	Sigma  []float64
	Pred   [][]int
	Order  []int
}

// Reached reports whether v was reached from the source.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}
