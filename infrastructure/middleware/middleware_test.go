package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/internal/domain"
)

// fakeClassifier returns a canned result or error and records calls.
type fakeClassifier struct {
	result domain.ClassificationResult
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(context.Context, *domain.EvidenceRecord) (domain.ClassificationResult, error) {
	f.calls++
	return f.result, f.err
}

// memoryMetrics captures recorded metrics for assertions.
type memoryMetrics struct {
	mu        sync.Mutex
	counters  map[string]float64
	latencies []time.Duration
	gauges    map[string]float64
}

func newMemoryMetrics() *memoryMetrics {
	return &memoryMetrics{
		counters: make(map[string]float64),
		gauges:   make(map[string]float64),
	}
}

func (m *memoryMetrics) RecordLatency(_ string, d time.Duration, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latencies = append(m.latencies, d)
}

func (m *memoryMetrics) RecordCounter(metric string, value float64, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := metric
	for _, label := range []string{"classification", "criterion", "strength", "kind"} {
		if v, ok := labels[label]; ok {
			key += "/" + v
		}
	}
	m.counters[key] += value
}

func (m *memoryMetrics) RecordGauge(metric string, value float64, _ map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[metric] = value
}

func classifiedResult() domain.ClassificationResult {
	return domain.ClassificationResult{
		Classification:  domain.ClassLikelyPathogenic,
		Confidence:      domain.ConfidenceMedium,
		Mode:            domain.Guidelines2023,
		AppliedCriteria: []domain.CriterionID{domain.PM2, domain.PP3},
		Outcomes: []domain.CriterionOutcome{
			domain.Applied(domain.PM2, domain.StrengthModerate, "rare"),
			domain.Applied(domain.PP3, domain.StrengthSupporting, "predicted damaging"),
			domain.NotApplicable(domain.BA1, "rare"),
		},
		Conflicts: []domain.Conflict{
			{Kind: domain.ConflictMixedPolarity, Description: "test"},
		},
	}
}

func testRecord() *domain.EvidenceRecord {
	return &domain.EvidenceRecord{
		Variant: domain.VariantIdentity{
			Gene:         "BRCA1",
			Consequence:  domain.ConsequenceMissense,
			CDNANotation: "c.181T>G",
		},
	}
}

func TestInstrumentedClassifier(t *testing.T) {
	t.Run("delegates and records the outcome", func(t *testing.T) {
		inner := &fakeClassifier{result: classifiedResult()}
		metrics := newMemoryMetrics()
		classifier := NewInstrumentedClassifier(inner, metrics)

		result, err := classifier.Classify(context.Background(), testRecord())
		require.NoError(t, err)
		assert.Equal(t, domain.ClassLikelyPathogenic, result.Classification)
		assert.Equal(t, 1, inner.calls)

		assert.Len(t, metrics.latencies, 1)
		assert.Equal(t, 1.0, metrics.counters["classifications_total/Likely Pathogenic"])
		assert.Equal(t, 1.0, metrics.counters["criteria_applied_total/PM2/moderate"])
		assert.Equal(t, 1.0, metrics.counters["criteria_applied_total/PP3/supporting"])
		assert.Equal(t, 1.0, metrics.counters["evidence_conflicts_total/mixed_polarity"])
		assert.NotContains(t, metrics.counters, "criteria_applied_total/BA1/")
	})

	t.Run("records errors without outcome metrics", func(t *testing.T) {
		inner := &fakeClassifier{err: errors.New("boom")}
		metrics := newMemoryMetrics()
		classifier := NewInstrumentedClassifier(inner, metrics)

		_, err := classifier.Classify(context.Background(), testRecord())
		require.Error(t, err)
		assert.Equal(t, 1.0, metrics.counters["classify_errors_total"])
		assert.Empty(t, metrics.latencies)
	})

	t.Run("nil metrics collector is tolerated", func(t *testing.T) {
		inner := &fakeClassifier{result: classifiedResult()}
		classifier := NewInstrumentedClassifier(inner, nil)

		_, err := classifier.Classify(context.Background(), testRecord())
		assert.NoError(t, err)
	})
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(reg)

	pm.RecordCounter("classifications_total", 1, map[string]string{
		"classification": "Pathogenic", "mode": "2023",
	})
	pm.RecordCounter("classifications_total", 1, map[string]string{
		"classification": "Pathogenic", "mode": "2023",
	})
	pm.RecordCounter("criteria_applied_total", 1, map[string]string{
		"criterion": "PVS1", "strength": "very_strong",
	})
	pm.RecordCounter("evidence_conflicts_total", 1, map[string]string{"kind": "mixed_polarity"})
	pm.RecordLatency("classify", 25*time.Millisecond, map[string]string{"mode": "2023"})
	pm.RecordGauge("evaluators_registered", 28, map[string]string{"mode": "2023"})

	assert.Equal(t, 2.0, testutil.ToFloat64(
		pm.classificationsTotal.WithLabelValues("Pathogenic", "2023")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		pm.criteriaApplied.WithLabelValues("PVS1", "very_strong")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		pm.conflictsTotal.WithLabelValues("mixed_polarity")))
	assert.Equal(t, 28.0, testutil.ToFloat64(
		pm.systemGauges.WithLabelValues("evaluators_registered", "2023")))

	// Unknown counters fall through to the system gauges.
	pm.RecordCounter("custom_metric", 3, map[string]string{"mode": "2015"})
	assert.Equal(t, 3.0, testutil.ToFloat64(
		pm.systemGauges.WithLabelValues("custom_metric", "2015")))
}
