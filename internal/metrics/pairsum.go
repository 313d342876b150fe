// Package metrics provides Prometheus metrics for pairsum runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var outcomes = []string{OutcomeFound, OutcomeNotFound, OutcomeError}

// Recorder owns a private registry for one process. Nothing is registered
// globally, so concurrent tests and repeated runs do not collide.
type Recorder struct {
	reg *prometheus.Registry

	// RunsTotal counts runs by outcome.
	RunsTotal *prometheus.CounterVec
	// SequenceLength observes the number of values read.
	SequenceLength prometheus.Histogram
	// ScannedElements observes how far the scan got before stopping.
	ScannedElements prometheus.Histogram
	// RunDuration observes wall time from read start to result written.
	RunDuration prometheus.Histogram
}

// NewRecorder builds a Recorder with every outcome series pre-initialised to zero.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		reg: reg,
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pairsum_runs_total",
			Help: "Total number of pairsum runs, by outcome.",
		}, []string{"outcome"}),
		SequenceLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairsum_sequence_length",
			Help:    "Number of values in the input sequence.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
		ScannedElements: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairsum_scanned_elements",
			Help:    "Number of elements examined before the scan stopped.",
			Buckets: prometheus.ExponentialBuckets(1, 10, 8),
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairsum_run_duration_seconds",
			Help:    "Wall time of a run, from reading input to writing the result.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	for _, o := range outcomes {
		r.RunsTotal.WithLabelValues(o)
	}
	return r
}

// ObserveRun records a completed search.
func (r *Recorder) ObserveRun(outcome string, length, scanned int, d time.Duration) {
	r.RunsTotal.WithLabelValues(outcome).Inc()
	r.SequenceLength.Observe(float64(length))
	r.ScannedElements.Observe(float64(scanned))
	r.RunDuration.Observe(d.Seconds())
}

// ObserveFailure records a run that ended before a search completed.
func (r *Recorder) ObserveFailure(d time.Duration) {
	r.RunsTotal.WithLabelValues(OutcomeError).Inc()
	r.RunDuration.Observe(d.Seconds())
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes the registry in text exposition format for the
// node_exporter textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
