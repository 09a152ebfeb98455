package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

var _ ports.Classifier = (*InstrumentedClassifier)(nil)

// InstrumentedClassifier wraps a Classifier with OpenTelemetry tracing
// and metrics collection. Each classification run becomes a span
// carrying the variant identity and the resulting verdict, and the
// outcome distribution is forwarded to the metrics collector.
type InstrumentedClassifier struct {
	inner   ports.Classifier
	metrics ports.MetricsCollector
	tracer  trace.Tracer
}

// NewInstrumentedClassifier decorates the given classifier. The metrics
// collector may be nil, in which case only tracing is performed.
func NewInstrumentedClassifier(inner ports.Classifier, metrics ports.MetricsCollector) *InstrumentedClassifier {
	return &InstrumentedClassifier{
		inner:   inner,
		metrics: metrics,
		tracer:  otel.Tracer("varclass-classifier"),
	}
}

// Classify implements the Classifier interface. It delegates to the
// wrapped classifier and records the span and metrics for the run.
func (c *InstrumentedClassifier) Classify(
	ctx context.Context, rec *domain.EvidenceRecord,
) (domain.ClassificationResult, error) {
	ctx, span := c.tracer.Start(ctx, "Classifier.Classify", trace.WithAttributes(
		attribute.String("variant.gene", rec.Variant.Gene),
		attribute.String("variant.cdna", rec.Variant.CDNANotation),
		attribute.String("variant.consequence", string(rec.Variant.Consequence)),
	))
	defer span.End()

	start := time.Now()
	result, err := c.inner.Classify(ctx, rec)
	elapsed := time.Since(start)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if c.metrics != nil {
			c.metrics.RecordCounter("classify_errors_total", 1, map[string]string{
				"mode": string(result.Mode),
			})
		}
		return result, err
	}

	span.SetAttributes(
		attribute.String("classification.verdict", string(result.Classification)),
		attribute.String("classification.confidence", string(result.Confidence)),
		attribute.String("classification.mode", string(result.Mode)),
		attribute.Int("classification.criteria_applied", len(result.AppliedCriteria)),
		attribute.Int("classification.conflicts", len(result.Conflicts)),
	)
	span.SetStatus(codes.Ok, "classification completed")

	c.recordOutcome(result, elapsed)
	return result, nil
}

func (c *InstrumentedClassifier) recordOutcome(result domain.ClassificationResult, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	modeLabels := map[string]string{"mode": string(result.Mode)}
	c.metrics.RecordLatency("classify", elapsed, modeLabels)
	c.metrics.RecordCounter("classifications_total", 1, map[string]string{
		"classification": string(result.Classification),
		"mode":           string(result.Mode),
	})

	for _, outcome := range result.Outcomes {
		if !outcome.Applies {
			continue
		}
		c.metrics.RecordCounter("criteria_applied_total", 1, map[string]string{
			"criterion": string(outcome.ID),
			"strength":  string(outcome.Strength),
		})
	}

	for _, conflict := range result.Conflicts {
		c.metrics.RecordCounter("evidence_conflicts_total", 1, map[string]string{
			"kind": string(conflict.Kind),
		})
	}
}
