package metrics

import (
	"context"
	"math"
	"strings"

	"github.com/katalvlaran/lvlath/centrality"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/cosmo/accumulator"
	"github.com/katalvlaran/lvlath/efficiency"
	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/series"
)

// Keys of the metrics document.
const (
	NameGlobalEfficiency   = "global_efficiency"
	NameLocalEfficiencies  = "local_efficiencies"
	NameAvgLocalEfficiency = "avg_local_efficiency"
	NameEntropy            = "entropy"
	NameHurst              = "hurst"
	NameCloseness          = "closeness"
	NameBetweenness        = "betweenness"
	NameEigenvector        = "eigenvector"
	NameConvergence        = "convergence"
	NameLaplacian          = "laplacian"

	// NameFractalDimension is reserved; no metric writes it.
	NameFractalDimension = "fractal_dimension"
)

// NPZExt is the extension that enables writing the spectral artifact.
const NPZExt = ".npz"

// Options parameterize DefaultMetrics.
type Options struct {
	// Cutoff bounds path lengths for closeness and betweenness; +Inf or 0
	// means no cutoff.
	Cutoff float64

	// Pairs is the efficiency denominator policy.
	Pairs efficiency.PairPolicy

	// Hurst tunes the R/S estimator.
	Hurst series.HurstOptions
}

// DefaultOptions returns no cutoff, every pair counted and the default
// Hurst estimator.
func DefaultOptions() Options {
	return Options{
		Cutoff: math.Inf(1),
		Pairs:  efficiency.PairsAll,
		Hurst:  series.DefaultHurstOptions(),
	}
}

func vertexCount(g *core.Graph) int { return g.VertexCount() }
func edgeCount(g *core.Graph) int   { return g.EdgeCount() }

// DefaultMetrics returns the full catalog in document order.
func DefaultMetrics(opts Options) []Metric {
	return []Metric{
		{
			Name:   NameGlobalEfficiency,
			Policy: PolicyScalar,
			Compute: func(_ context.Context, g *core.Graph, _ Target) (accumulator.Record, error) {
				e, err := efficiency.Global(g, opts.Pairs)
				if err != nil {
					return nil, err
				}
				return accumulator.Record{NameGlobalEfficiency: accumulator.Scalar(e)}, nil
			},
		},
		{
			Name:   NameLocalEfficiencies,
			Policy: PolicySequence,
			Len:    vertexCount,
			Compute: func(_ context.Context, g *core.Graph, _ Target) (accumulator.Record, error) {
				local, avg, err := efficiency.Local(g, opts.Pairs)
				if err != nil {
					return nil, err
				}
				return accumulator.Record{
					NameLocalEfficiencies:  accumulator.Sequence(local),
					NameAvgLocalEfficiency: accumulator.Scalar(avg),
				}, nil
			},
		},
		{
			Name:   NameEntropy,
			Policy: PolicyScalar,
			Compute: func(_ context.Context, g *core.Graph, _ Target) (accumulator.Record, error) {
				p, err := series.Distribution(g.Degrees())
				if err != nil {
					return nil, err
				}
				h, err := series.Entropy(p)
				if err != nil {
					return nil, err
				}
				return accumulator.Record{NameEntropy: accumulator.Scalar(h)}, nil
			},
		},
		{
			Name:   NameHurst,
			Policy: PolicyScalar,
			Compute: func(_ context.Context, g *core.Graph, _ Target) (accumulator.Record, error) {
				degrees := g.Degrees()
				data := make([]float64, len(degrees))
				for i, d := range degrees {
					data[i] = float64(d)
				}
				h, err := series.HurstRS(data, opts.Hurst)
				if err != nil {
					return nil, err
				}
				return accumulator.Record{NameHurst: accumulator.Scalar(h)}, nil
			},
		},
		{
			Name:    NameCloseness,
			Policy:  PolicySequence,
			Len:     vertexCount,
			Compute: sequenceMetric(NameCloseness, centrality.Closeness, opts.Cutoff),
		},
		{
			Name:    NameBetweenness,
			Policy:  PolicySequence,
			Len:     vertexCount,
			Compute: sequenceMetric(NameBetweenness, centrality.Betweenness, opts.Cutoff),
		},
		{
			Name:    NameEigenvector,
			Policy:  PolicySequence,
			Len:     vertexCount,
			Compute: sequenceMetric(NameEigenvector, centrality.Eigenvector, math.Inf(1)),
		},
		{
			Name:    NameConvergence,
			Policy:  PolicySequence,
			Len:     edgeCount,
			Compute: sequenceMetric(NameConvergence, centrality.Convergence, math.Inf(1)),
		},
		{
			Name:    NameLaplacian,
			Policy:  PolicyAlways,
			Compute: laplacian,
		},
	}
}

// sequenceMetric adapts a centrality routine to a ComputeFunc.
func sequenceMetric(
	name string,
	fn func(*core.Graph, ...centrality.Option) ([]float64, error),
	cutoff float64,
) ComputeFunc {
	return func(ctx context.Context, g *core.Graph, _ Target) (accumulator.Record, error) {
		copts := []centrality.Option{centrality.WithContext(ctx)}
		if cutoff > 0 && !math.IsInf(cutoff, 1) {
			copts = append(copts, centrality.WithCutoff(cutoff))
		}
		xs, err := fn(g, copts...)
		if err != nil {
			return nil, err
		}
		return accumulator.Record{name: accumulator.Sequence(xs)}, nil
	}
}

// laplacian recomputes L = D − W and writes it when the target path has the
// .npz extension. The record only references the file once it exists.
func laplacian(_ context.Context, g *core.Graph, t Target) (accumulator.Record, error) {
	l, err := matrix.Laplacian(g)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(t.LaplacianPath, NPZExt) {
		return accumulator.Record{}, nil
	}
	if err = matrix.WriteNPZ(t.LaplacianPath, l); err != nil {
		return nil, err
	}

	return accumulator.Record{NameLaplacian: accumulator.Ref(t.LaplacianPath)}, nil
}
