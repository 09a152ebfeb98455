// Package ports defines the boundary interfaces between the
// classification core and its infrastructure adapters.
package ports

import (
	"context"

	"github.com/variomics/varclass/internal/domain"
)

// Evaluator decides whether one named criterion applies to an evidence
// record under a guideline mode.
//
// Implementations must be pure and stateless per call: they read only
// the record fields relevant to their criterion, never mutate the record,
// never perform I/O, and never depend on wall-clock time or randomness.
// Missing input data yields a non-applying outcome with an explanatory
// rationale, not an error. Because evaluators share nothing, the engine
// may invoke them in any order or in parallel.
type Evaluator interface {
	// ID returns the criterion this evaluator decides.
	ID() domain.CriterionID

	// Evaluate inspects the record and reports whether the criterion
	// applies and at what strength.
	Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome
}

// Classifier runs one full classification pass over an evidence record.
// The context is accepted for middleware (tracing, metrics) layered
// around the core; the pure engine itself has no suspension points.
type Classifier interface {
	Classify(ctx context.Context, rec *domain.EvidenceRecord) (domain.ClassificationResult, error)
}

// MetascoreProvider fuses the computational predictor scores available
// on a record into a single normalized pathogenicity signal with
// frequency-adjusted decision thresholds. Implementations are pure and
// stateless per call.
type MetascoreProvider interface {
	Compute(rec *domain.EvidenceRecord) domain.MetascoreResult
}

// EvaluatorFactory creates an evaluator from a raw configuration map.
// Factories back the registry so evaluator sets and their thresholds can
// be assembled from configuration without touching evaluator logic.
type EvaluatorFactory func(config map[string]any) (Evaluator, error)
