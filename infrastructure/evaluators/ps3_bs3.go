package evaluators

import (
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PS3Evaluator)(nil)
	_ ports.Evaluator = (*BS3Evaluator)(nil)
)

// PS3Evaluator decides the damaging-functional-study criterion. A
// damaging result from a validated assay carries strong weight; an
// unvalidated assay is downgraded to supporting rather than discarded.
type PS3Evaluator struct{}

// NewPS3Evaluator creates the evaluator.
func NewPS3Evaluator() *PS3Evaluator { return &PS3Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PS3Evaluator) ID() domain.CriterionID { return domain.PS3 }

// Evaluate implements ports.Evaluator.
func (e *PS3Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	switch rec.Functional.Outcome {
	case domain.FunctionalNotPerformed:
		return domain.NotApplicable(domain.PS3, "no functional studies performed")
	case domain.FunctionalInconclusive:
		return domain.NotApplicable(domain.PS3, "functional studies were inconclusive")
	case domain.FunctionalBenign:
		return domain.NotApplicable(domain.PS3, "functional studies indicate no damaging effect")
	}

	if !rec.Functional.AssayValidated {
		return domain.Applied(domain.PS3, domain.StrengthSupporting,
			"damaging effect shown by a functional assay not yet validated for this gene-disease mechanism")
	}
	return domain.Applied(domain.PS3, domain.StrengthStrong,
		"well-established functional studies show a damaging effect")
}

// BS3Evaluator decides the benign-functional-study criterion: validated
// functional studies showing no damaging effect.
type BS3Evaluator struct{}

// NewBS3Evaluator creates the evaluator.
func NewBS3Evaluator() *BS3Evaluator { return &BS3Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BS3Evaluator) ID() domain.CriterionID { return domain.BS3 }

// Evaluate implements ports.Evaluator.
func (e *BS3Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	switch rec.Functional.Outcome {
	case domain.FunctionalNotPerformed:
		return domain.NotApplicable(domain.BS3, "no functional studies performed")
	case domain.FunctionalInconclusive:
		return domain.NotApplicable(domain.BS3, "functional studies were inconclusive")
	case domain.FunctionalDamaging:
		return domain.NotApplicable(domain.BS3, "functional studies indicate a damaging effect")
	}

	if !rec.Functional.AssayValidated {
		return domain.Applied(domain.BS3, domain.StrengthSupporting,
			"no damaging effect shown, but the assay is not validated for this gene-disease mechanism")
	}
	return domain.Applied(domain.BS3, domain.StrengthStrong,
		"well-established functional studies show no damaging effect")
}
