package centrality

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by centrality routines.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrBadCutoff indicates a negative or NaN cutoff.
	ErrBadCutoff = errors.New("centrality: cutoff must be non-negative")

	// ErrNoConvergence indicates that power iteration hit MaxIter.
	ErrNoConvergence = errors.New("centrality: power iteration did not converge")
)

// Default iteration parameters for Eigenvector.
const (
	DefaultMaxIter   = 1000
	DefaultTolerance = 1e-10
)

// Options configures the centrality routines.
type Options struct {
	// Ctx is checked once per source vertex or iteration. Nil means Background.
	Ctx context.Context

	// Cutoff bounds path lengths for Closeness and Betweenness. +Inf disables it.
	Cutoff float64

	// MaxIter and Tolerance bound Eigenvector power iteration.
	MaxIter   int
	Tolerance float64
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns a background context, no cutoff and the default
// power-iteration bounds.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Cutoff:    math.Inf(1),
		MaxIter:   DefaultMaxIter,
		Tolerance: DefaultTolerance,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithCutoff ignores shortest paths longer than max.
// Panics with ErrBadCutoff on a negative or NaN value.
func WithCutoff(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadCutoff.Error())
	}

	return func(o *Options) {
		o.Cutoff = max
	}
}

// WithMaxIter bounds the number of power iterations. Values < 1 are ignored.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIter = n
		}
	}
}

// WithTolerance sets the L1 change under which power iteration stops.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// build applies opts on top of DefaultOptions and fills a nil context.
func build(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}

// canceled reports the context error, if any, without blocking.
func (o Options) canceled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
