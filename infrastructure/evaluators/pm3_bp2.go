package evaluators

import (
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PM3Evaluator)(nil)
	_ ports.Evaluator = (*BP2Evaluator)(nil)
)

// PM3Evaluator decides the in-trans-with-pathogenic criterion for
// recessive disorders: the variant is observed on the opposite allele
// from an established pathogenic variant.
type PM3Evaluator struct{}

// NewPM3Evaluator creates the evaluator.
func NewPM3Evaluator() *PM3Evaluator { return &PM3Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PM3Evaluator) ID() domain.CriterionID { return domain.PM3 }

// Evaluate implements ports.Evaluator.
func (e *PM3Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if !rec.External.InTransPathogenic {
		return domain.NotApplicable(domain.PM3, "no pathogenic variant observed in trans")
	}

	switch rec.Family.Inheritance {
	case domain.InheritanceRecessive, domain.InheritanceXLinkedRecessive:
		return domain.Applied(domain.PM3, domain.StrengthModerate,
			"variant detected in trans with an established pathogenic variant in a recessive disorder")
	case domain.InheritanceUnknown:
		return domain.NotApplicable(domain.PM3,
			"phase observation present but inheritance mode unknown")
	default:
		return domain.NotApplicable(domain.PM3,
			"in-trans observation is only pathogenic evidence for recessive disorders")
	}
}

// BP2Evaluator decides the phase-inconsistency benign criterion: the
// variant is in trans with a pathogenic variant in a fully penetrant
// dominant gene, or in cis with a pathogenic variant in any context.
type BP2Evaluator struct{}

// NewBP2Evaluator creates the evaluator.
func NewBP2Evaluator() *BP2Evaluator { return &BP2Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BP2Evaluator) ID() domain.CriterionID { return domain.BP2 }

// Evaluate implements ports.Evaluator.
func (e *BP2Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.External.InCisPathogenic {
		return domain.Applied(domain.BP2, domain.StrengthSupporting,
			"variant observed in cis with an established pathogenic variant")
	}
	if rec.External.InTransPathogenic {
		switch rec.Family.Inheritance {
		case domain.InheritanceDominant, domain.InheritanceXLinkedDominant:
			return domain.Applied(domain.BP2, domain.StrengthSupporting,
				"variant observed in trans with a pathogenic variant in a dominant disorder")
		}
	}
	return domain.NotApplicable(domain.BP2, "no qualifying phase observations")
}
