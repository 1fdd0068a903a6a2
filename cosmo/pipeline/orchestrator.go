package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/cosmo/accumulator"
	"github.com/katalvlaran/lvlath/cosmo/keypath"
	"github.com/katalvlaran/lvlath/cosmo/logging"
	"github.com/katalvlaran/lvlath/cosmo/metrics"
	"github.com/katalvlaran/lvlath/cosmo/telemetry"
	"github.com/katalvlaran/lvlath/graphml"
)

// SnapshotPlaceholder is replaced by the snapshot in LaplacianName.
const SnapshotPlaceholder = "{snapshot}"

// DefaultLaplacianName is the spectral artifact file name.
const DefaultLaplacianName = "laplacian_" + SnapshotPlaceholder + ".npz"

// Loader reads one graph artifact.
type Loader interface {
	Load(path string) (*core.Graph, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*core.Graph, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (*core.Graph, error) { return f(path) }

// GraphMLLoader loads GraphML files with the given options.
func GraphMLLoader(opts ...graphml.Option) Loader {
	return LoaderFunc(func(path string) (*core.Graph, error) {
		return graphml.LoadFile(path, opts...)
	})
}

// Result is the outcome of one artifact: the full updated record for Key.
type Result struct {
	Path     string
	Key      keypath.Key
	Record   accumulator.Record
	Outcomes []metrics.Outcome
	Elapsed  time.Duration
}

// Orchestrator fans artifacts out to a bounded pool of workers.
type Orchestrator struct {
	Loader    Loader
	Catalog   *metrics.Catalog
	Logger    *logging.Logger
	Telemetry *telemetry.Recorder

	// Workers bounds concurrent tasks; values < 1 mean 1.
	Workers int

	// LaplacianName is the spectral artifact file name placed next to each
	// graph artifact, with SnapshotPlaceholder expanded. Empty disables it.
	LaplacianName string

	// Drain is how long an interrupted Run waits for in-flight tasks to
	// observe the cancellation before returning. Zero returns at once.
	Drain time.Duration
}

// Run evaluates every artifact against prior, which must not be modified
// until Run returns. Results come back in artifact order; dropped artifacts
// have no entry.
//
// If ctx ends first, Run returns ErrInterrupted after waiting at most Drain
// for in-flight tasks; their results are discarded.
func (o *Orchestrator) Run(ctx context.Context, prior *accumulator.Tree, artifacts []string, snapshot string) ([]Result, error) {
	if prior == nil {
		prior = accumulator.New()
	}
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}

	slots := make([]*Result, len(artifacts))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	done := make(chan error, 1)
	go func() {
		for i, path := range artifacts {
			i, path := i, path
			if gctx.Err() != nil {
				break
			}
			eg.Go(func() error {
				res, err := o.process(gctx, logger, prior, path, snapshot)
				if err != nil {
					return err
				}
				slots[i] = res
				return nil
			})
		}
		done <- eg.Wait()
	}()

	var err error
	select {
	case <-ctx.Done():
		o.drain(logger, done)
	case err = <-done:
	}
	if ctx.Err() != nil || err != nil {
		if err == nil {
			err = ctx.Err()
		}
		logger.Warn("run interrupted", "artifacts", len(artifacts), "reason", err)
		return nil, fmt.Errorf("%w: %v", ErrInterrupted, err)
	}

	results := make([]Result, 0, len(artifacts))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	return results, nil
}

// process handles one artifact. It returns an error only when ctx ended;
// artifact and metric failures are logged and absorbed.
func (o *Orchestrator) process(
	ctx context.Context,
	logger *logging.Logger,
	prior *accumulator.Tree,
	path, snapshot string,
) (*Result, error) {
	start := time.Now()
	log := logger.With("path", path)

	key, err := keypath.Classify(path, snapshot)
	if err != nil {
		o.drop(log, &ArtifactError{Path: path, Stage: telemetry.StageClassify, Err: err})
		return nil, nil
	}
	g, err := o.Loader.Load(path)
	if err != nil {
		o.drop(log, &ArtifactError{Path: path, Stage: telemetry.StageLoad, Err: err})
		return nil, nil
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	rec := accumulator.Record{}
	if prev, ok := prior.Record(key); ok {
		rec = prev.Clone()
	}
	log.Info("processing graph", "key", key.String(), "vertices", g.VertexCount(), "edges", g.EdgeCount())

	outcomes := o.Catalog.Run(ctx, g, rec, metrics.Target{
		Path:          path,
		LaplacianPath: o.laplacianPath(path, snapshot),
	})
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	computed, skipped, failed := 0, 0, 0
	for _, oc := range outcomes {
		switch {
		case oc.Skipped():
			skipped++
			o.Telemetry.MetricSkipped(oc.Metric)
		case oc.Err != nil:
			failed++
			o.Telemetry.MetricFailed(oc.Metric)
		default:
			computed++
			o.Telemetry.MetricComputed(oc.Metric)
		}
	}
	elapsed := time.Since(start)
	o.Telemetry.ArtifactProcessed()
	o.Telemetry.ObserveTask(elapsed)
	log.Info("graph done",
		"key", key.String(), "computed", computed, "skipped", skipped, "failed", failed, "elapsed", elapsed)

	return &Result{Path: path, Key: key, Record: rec, Outcomes: outcomes, Elapsed: elapsed}, nil
}

// drain waits up to Drain for the task pool to finish after cancellation.
func (o *Orchestrator) drain(logger *logging.Logger, done <-chan error) {
	if o.Drain <= 0 {
		return
	}
	timer := time.NewTimer(o.Drain)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		logger.Warn("in-flight tasks abandoned", "drain", o.Drain)
	}
}

func (o *Orchestrator) drop(log *logging.Logger, err *ArtifactError) {
	o.Telemetry.ArtifactFailed(err.Stage)
	log.Error("artifact dropped", "stage", err.Stage, "error", err.Err)
}

// laplacianPath places the expanded LaplacianName next to the artifact.
func (o *Orchestrator) laplacianPath(path, snapshot string) string {
	if o.LaplacianName == "" {
		return ""
	}
	name := strings.ReplaceAll(o.LaplacianName, SnapshotPlaceholder, snapshot)

	return filepath.Join(filepath.Dir(path), name)
}
