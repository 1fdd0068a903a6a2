// Package telemetry counts what a run did on a private Prometheus registry
// and can dump it in the node-exporter textfile format.
package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "graphmetrics"

	// Artifact stages used as the "stage" label.
	StageClassify = "classify"
	StageLoad     = "load"
	StageCompute  = "compute"
)

// Recorder holds the run counters. A nil *Recorder ignores every call.
type Recorder struct {
	reg *prometheus.Registry

	metricsComputed *prometheus.CounterVec
	metricsSkipped  *prometheus.CounterVec
	metricsFailed   *prometheus.CounterVec

	artifactsProcessed prometheus.Counter
	artifactsFailed    *prometheus.CounterVec

	taskDuration prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		metricsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "metric",
			Name:      "computed_total",
			Help:      "Metrics computed and stored, by metric name",
		}, []string{"metric"}),
		metricsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "metric",
			Name:      "skipped_total",
			Help:      "Metrics skipped because a trusted value was already stored",
		}, []string{"metric"}),
		metricsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "metric",
			Name:      "failed_total",
			Help:      "Metric computations that returned an error",
		}, []string{"metric"}),
		artifactsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "artifact",
			Name:      "processed_total",
			Help:      "Graph artifacts that produced a result",
		}),
		artifactsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "artifact",
			Name:      "failed_total",
			Help:      "Graph artifacts dropped, by stage",
		}, []string{"stage"}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "artifact",
			Name:      "duration_seconds",
			Help:      "Wall time of one artifact task",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900, 3600},
		}),
	}
	r.reg.MustRegister(
		r.metricsComputed,
		r.metricsSkipped,
		r.metricsFailed,
		r.artifactsProcessed,
		r.artifactsFailed,
		r.taskDuration,
	)

	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

func (r *Recorder) MetricComputed(metric string) {
	if r != nil {
		r.metricsComputed.WithLabelValues(metric).Inc()
	}
}

func (r *Recorder) MetricSkipped(metric string) {
	if r != nil {
		r.metricsSkipped.WithLabelValues(metric).Inc()
	}
}

func (r *Recorder) MetricFailed(metric string) {
	if r != nil {
		r.metricsFailed.WithLabelValues(metric).Inc()
	}
}

func (r *Recorder) ArtifactProcessed() {
	if r != nil {
		r.artifactsProcessed.Inc()
	}
}

func (r *Recorder) ArtifactFailed(stage string) {
	if r != nil {
		r.artifactsFailed.WithLabelValues(stage).Inc()
	}
}

// ObserveTask records the duration of one artifact task.
func (r *Recorder) ObserveTask(d time.Duration) {
	if r != nil {
		r.taskDuration.Observe(d.Seconds())
	}
}

// WriteTextfile writes the registry to path atomically in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}
