package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PS1Evaluator)(nil)
	_ ports.Evaluator = (*PM5Evaluator)(nil)
)

// PS1Evaluator decides the same-amino-acid-change criterion: the variant
// produces the identical protein change as an established pathogenic
// variant, regardless of nucleotide difference.
type PS1Evaluator struct{}

// NewPS1Evaluator creates the evaluator.
func NewPS1Evaluator() *PS1Evaluator { return &PS1Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PS1Evaluator) ID() domain.CriterionID { return domain.PS1 }

// Evaluate implements ports.Evaluator.
func (e *PS1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceMissense {
		return domain.NotApplicable(domain.PS1, "criterion applies to missense variants only")
	}
	if n := rec.External.SameAminoAcidPathogenic; n >= 1 {
		return domain.Applied(domain.PS1, domain.StrengthStrong,
			fmt.Sprintf("%d established pathogenic variant(s) produce the identical amino-acid change", n))
	}
	return domain.NotApplicable(domain.PS1, "no established pathogenic variant with the same amino-acid change")
}

// PM5Evaluator decides the novel-missense-at-known-residue criterion:
// a different missense change at a residue where pathogenic missense
// variation is established. The newer guideline revision requires at
// least two established changes at the residue before the criterion
// applies.
type PM5Evaluator struct{}

// NewPM5Evaluator creates the evaluator.
func NewPM5Evaluator() *PM5Evaluator { return &PM5Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PM5Evaluator) ID() domain.CriterionID { return domain.PM5 }

// Evaluate implements ports.Evaluator.
func (e *PM5Evaluator) Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceMissense {
		return domain.NotApplicable(domain.PM5, "criterion applies to missense variants only")
	}
	if rec.External.SameAminoAcidPathogenic >= 1 {
		// The identical change is covered by the strong same-change
		// criterion; this one requires a different change.
		return domain.NotApplicable(domain.PM5, "identical amino-acid change is already established pathogenic")
	}

	required := 1
	if mode == domain.Guidelines2023 {
		required = 2
	}
	if n := rec.External.SameResiduePathogenic; n >= required {
		return domain.Applied(domain.PM5, domain.StrengthModerate,
			fmt.Sprintf("%d established pathogenic missense change(s) at the same residue", n))
	}
	return domain.NotApplicable(domain.PM5,
		fmt.Sprintf("fewer than %d established pathogenic change(s) at the residue", required))
}
