package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that BP7Evaluator implements Evaluator.
var _ ports.Evaluator = (*BP7Evaluator)(nil)

// bp7SpliceCutoff is the splice-impact delta score at or above which a
// synonymous variant is no longer presumed silent.
const bp7SpliceCutoff = 0.1

// BP7Evaluator decides the silent-synonymous criterion: a synonymous
// variant with no predicted splice impact. Synonymous variants without
// any splice predictions are presumed silent; a prediction at or above
// the cutoff blocks the criterion.
type BP7Evaluator struct{}

// NewBP7Evaluator creates the evaluator.
func NewBP7Evaluator() *BP7Evaluator { return &BP7Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BP7Evaluator) ID() domain.CriterionID { return domain.BP7 }

// Evaluate implements ports.Evaluator.
func (e *BP7Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceSynonymous {
		return domain.NotApplicable(domain.BP7, "criterion applies to synonymous variants only")
	}

	splice, ok := rec.MaxSpliceScore()
	if !ok {
		return domain.Applied(domain.BP7, domain.StrengthSupporting,
			"synonymous variant with no splice-impact predictions; presumed silent")
	}
	if splice < bp7SpliceCutoff {
		return domain.Applied(domain.BP7, domain.StrengthSupporting,
			fmt.Sprintf("synonymous variant with negligible predicted splice impact (delta %.2f)", splice)).
			WithScore(splice)
	}
	return domain.NotApplicable(domain.BP7,
		fmt.Sprintf("predicted splice impact (delta %.2f) prevents the silent presumption", splice)).
		WithScore(splice)
}
