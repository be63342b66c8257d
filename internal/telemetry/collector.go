package telemetry

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/rwseg/randomwalker"
)

// warning kinds as metric label values
var warningKinds = map[error]string{
	randomwalker.ErrNotConverged:              "not_converged",
	randomwalker.ErrPreconditionerUnavailable: "preconditioner_unavailable",
	randomwalker.ErrNoUnlabeledNodes:          "no_unlabeled_nodes",
	randomwalker.ErrIllConditioned:            "ill_conditioned",
}

// Collector exports solve reports as Prometheus metrics on a private registry.
// It implements randomwalker.Observer and is safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	solves     *prometheus.CounterVec   // by requested and effective mode
	duration   *prometheus.HistogramVec // seconds, by effective mode
	iterations *prometheus.HistogramVec // CG iterations per column, by effective mode
	unknowns   prometheus.Histogram
	warnings   *prometheus.CounterVec // by kind
}

// NewCollector creates and registers the solve metrics under namespace.
func NewCollector(namespace string) (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed random walker solves.",
		}, []string{"requested", "effective"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a solve, from validation to assembly.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"mode"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cg_iterations",
			Help:      "Conjugate gradient iterations per right-hand side.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"mode"}),
		unknowns: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unknowns",
			Help:      "Unlabeled nodes per solve.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "warnings_total",
			Help:      "Recoverable solver warnings.",
		}, []string{"kind"}),
	}
	for _, m := range []prometheus.Collector{c.solves, c.duration, c.iterations, c.unknowns, c.warnings} {
		if err := c.registry.Register(m); err != nil {
			return nil, fmt.Errorf("telemetry: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSolve records one report.
func (c *Collector) ObserveSolve(r randomwalker.SolveReport) {
	eff := r.Effective.String()
	c.solves.WithLabelValues(r.Requested.String(), eff).Inc()
	c.duration.WithLabelValues(eff).Observe(r.Elapsed.Seconds())
	c.unknowns.Observe(float64(r.Unlabeled))
	if r.Effective != randomwalker.ModeDirect {
		for _, col := range r.Columns {
			c.iterations.WithLabelValues(eff).Observe(float64(col.Iterations))
		}
	}
	for _, w := range r.Warnings {
		c.warnings.WithLabelValues(warningKind(w)).Inc()
	}
}

func warningKind(w randomwalker.Warning) string {
	for kind, name := range warningKinds {
		if errors.Is(w, kind) {
			return name
		}
	}

	return "other"
}

// Registry exposes the private registry, e.g. for an HTTP handler or tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteText writes every metric family in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
