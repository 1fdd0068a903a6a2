package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlath/cosmo/config"
	"github.com/katalvlaran/lvlath/cosmo/discovery"
	"github.com/katalvlaran/lvlath/cosmo/logging"
	"github.com/katalvlaran/lvlath/cosmo/metrics"
	"github.com/katalvlaran/lvlath/cosmo/pipeline"
	"github.com/katalvlaran/lvlath/cosmo/store"
	"github.com/katalvlaran/lvlath/cosmo/telemetry"
	"github.com/katalvlaran/lvlath/graphml"
)

// drainTimeout bounds how long an interrupted run waits for in-flight
// graphs, so that spectral artifacts being written are finished or removed.
const drainTimeout = 10 * time.Second

// run executes one full pass: discover, load prior results, compute,
// reduce, save. An interrupted pass leaves the results document untouched.
func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	base, err := logging.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer base.Sync()
	logger := base.With("run_id", uuid.NewString(), "snapshot", cfg.Snapshot)

	start := time.Now()
	artifacts, err := discovery.Find(cfg.GraphsRoot, cfg.GraphExt, cfg.Snapshot)
	if err != nil {
		return err
	}
	logger.Info("artifacts discovered", "root", cfg.GraphsRoot, "count", len(artifacts))

	gw := store.File{Path: cfg.OutputPath()}
	tree, err := gw.Load()
	if err != nil {
		return err
	}

	mopts, err := cfg.MetricOptions()
	if err != nil {
		return err
	}
	rec := telemetry.New()
	orch := &pipeline.Orchestrator{
		Loader:        pipeline.GraphMLLoader(graphml.WithWeightAttr(cfg.WeightAttr)),
		Catalog:       metrics.NewCatalog(logger, metrics.DefaultMetrics(mopts)...),
		Logger:        logger,
		Telemetry:     rec,
		Workers:       cfg.Workers,
		LaplacianName: cfg.LaplacianName,
		Drain:         drainTimeout,
	}

	results, err := orch.Run(ctx, tree, artifacts, cfg.Snapshot)
	if err != nil {
		if errors.Is(err, pipeline.ErrInterrupted) {
			logger.Warn("results not saved", "output", gw.Path)
		}
		return err
	}

	stats := pipeline.Reduce(tree, results, logger)
	if err = gw.Save(tree); err != nil {
		return err
	}
	if cfg.MetricsTextfile != "" {
		if err = rec.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("telemetry not written", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	elapsed := time.Since(start)
	logger.Info("run finished",
		"artifacts", len(artifacts), "merged", stats.Merged, "conflicts", stats.Conflicts,
		"output", gw.Path, "elapsed", elapsed)
	fmt.Fprintf(out, "%d/%d artifacts merged into %s in %s\n",
		stats.Merged, len(artifacts), gw.Path, elapsed.Round(time.Millisecond))

	return nil
}
