// Package metrics decides which graph metrics a record still needs and
// computes them, one isolated attempt per metric.
package metrics

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/cosmo/accumulator"
	"github.com/katalvlaran/lvlath/cosmo/logging"
)

// Target names the files one evaluation is about.
type Target struct {
	// Path is the graph artifact, used in logs and errors.
	Path string

	// LaplacianPath is where the spectral artifact goes. Empty disables writing.
	LaplacianPath string
}

// ComputeFunc produces the values of one metric. It may return several
// keys (e.g. a sequence and its mean).
type ComputeFunc func(ctx context.Context, g *core.Graph, t Target) (accumulator.Record, error)

// Metric is one catalog entry. Name is the key the gate inspects.
type Metric struct {
	Name    string
	Policy  Policy
	Len     func(g *core.Graph) int
	Compute ComputeFunc
}

// expectedLen returns the sequence length Decide checks against, -1 if none.
func (m Metric) expectedLen(g *core.Graph) int {
	if m.Len == nil {
		return -1
	}
	return m.Len(g)
}

// Outcome is what happened to one metric during Run.
type Outcome struct {
	Metric   string
	Decision Decision
	Values   accumulator.Record
	Err      error
	Elapsed  time.Duration
}

// Skipped reports whether the metric was not attempted.
func (o Outcome) Skipped() bool { return !o.Decision.NeedsCompute() }

// Catalog is an ordered list of metrics.
type Catalog struct {
	metrics []Metric
	logger  *logging.Logger
}

// NewCatalog returns a catalog evaluating metrics in the given order. A nil
// logger discards output.
func NewCatalog(logger *logging.Logger, metrics ...Metric) *Catalog {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Catalog{metrics: append([]Metric(nil), metrics...), logger: logger}
}

// Metrics returns a copy of the catalog entries.
func (c *Catalog) Metrics() []Metric {
	return append([]Metric(nil), c.metrics...)
}

// Plan returns the gate decision of every metric for rec, in catalog order.
func (c *Catalog) Plan(g *core.Graph, rec accumulator.Record) []Decision {
	out := make([]Decision, len(c.metrics))
	for i, m := range c.metrics {
		out[i] = Decide(rec, m.Name, m.Policy, m.expectedLen(g))
	}

	return out
}

// Run evaluates every metric that the plan marks for computation and
// writes successful values into rec. A failing metric leaves rec untouched
// for its keys and does not stop the others. Once ctx is done the
// remaining metrics are reported with the context error.
func (c *Catalog) Run(ctx context.Context, g *core.Graph, rec accumulator.Record, t Target) []Outcome {
	plan := c.Plan(g, rec)
	out := make([]Outcome, len(c.metrics))
	for i, m := range c.metrics {
		out[i] = Outcome{Metric: m.Name, Decision: plan[i]}
		if !plan[i].NeedsCompute() {
			c.logger.Debug("metric trusted, skipping", "path", t.Path, "metric", m.Name)
			continue
		}
		if err := ctx.Err(); err != nil {
			out[i].Err = err
			continue
		}

		start := time.Now()
		values, err := attempt(ctx, m, g, t)
		out[i].Elapsed = time.Since(start)
		if err != nil {
			out[i].Err = &ComputationError{Metric: m.Name, Path: t.Path, Err: err}
			c.logger.Error("metric failed",
				"path", t.Path, "metric", m.Name, "decision", plan[i].String(), "error", err)
			continue
		}
		for k, v := range values {
			rec[k] = v
		}
		out[i].Values = values
		c.logger.Debug("metric computed", "path", t.Path, "metric", m.Name, "elapsed", out[i].Elapsed)
	}

	return out
}

// attempt runs m.Compute, turning a panic into an error.
func attempt(ctx context.Context, m Metric, g *core.Graph, t Target) (values accumulator.Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	if m.Compute == nil {
		return nil, fmt.Errorf("metric %q has no compute function", m.Name)
	}

	return m.Compute(ctx, g, t)
}
