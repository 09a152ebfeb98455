// Package middleware provides cross-cutting concerns for the
// classification engine: metrics collection and distributed tracing
// decorators that wrap the core classifier without touching its logic.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/variomics/varclass/internal/ports"
)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of classification
// throughput, latency, and outcome distribution.
type PrometheusMetrics struct {
	classificationsTotal *prometheus.CounterVec
	criteriaApplied      *prometheus.CounterVec
	conflictsTotal       *prometheus.CounterVec
	classifyLatency      *prometheus.HistogramVec
	systemGauges         *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a new PrometheusMetrics instance and
// registers all required metrics in the given registry. Passing nil
// registers against the global default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	if reg == nil {
		factory = promauto.With(prometheus.DefaultRegisterer)
	}

	return &PrometheusMetrics{
		classificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "varclass_classifications_total",
				Help: "Total number of variant classifications, by verdict and guideline mode.",
			},
			[]string{"classification", "mode"},
		),
		criteriaApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "varclass_criteria_applied_total",
				Help: "Total number of times each criterion applied at each strength.",
			},
			[]string{"criterion", "strength"},
		),
		conflictsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "varclass_evidence_conflicts_total",
				Help: "Total number of evidence conflicts detected, by conflict kind.",
			},
			[]string{"kind"},
		),
		classifyLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "varclass_classify_duration_seconds",
				Help:    "Wall-clock time of a full classification run.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "mode"},
		),
		systemGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "varclass_system_state",
				Help: "Current system state values for the classification service.",
			},
			[]string{"metric", "mode"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	mode, ok := labels["mode"]
	if !ok {
		mode = "unknown"
	}
	pm.classifyLatency.WithLabelValues(operation, mode).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by
// incrementing Prometheus counters.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	switch metric {
	case "classifications_total":
		pm.classificationsTotal.WithLabelValues(
			labels["classification"],
			labels["mode"],
		).Add(value)
	case "criteria_applied_total":
		pm.criteriaApplied.WithLabelValues(
			labels["criterion"],
			labels["strength"],
		).Add(value)
	case "evidence_conflicts_total":
		pm.conflictsTotal.WithLabelValues(labels["kind"]).Add(value)
	default:
		mode, ok := labels["mode"]
		if !ok {
			mode = "unknown"
		}
		pm.systemGauges.WithLabelValues(metric, mode).Add(value)
	}
}

// RecordGauge implements the MetricsCollector interface by setting
// Prometheus gauge values.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	mode, ok := labels["mode"]
	if !ok {
		mode = "unknown"
	}
	pm.systemGauges.WithLabelValues(metric, mode).Set(value)
}

// Compile-time verification that PrometheusMetrics implements MetricsCollector.
var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)
