package evaluators

import (
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PS2Evaluator)(nil)
	_ ports.Evaluator = (*PM6Evaluator)(nil)
)

// PS2Evaluator decides the confirmed-de-novo criterion. It requires a
// confirmed de novo status with BOTH maternity and paternity verified by
// genetic testing; anything less falls to the assumed-de-novo criterion
// and is never silently upgraded. The newer guideline revision grants
// very-strong weight to a fully confirmed de novo event.
type PS2Evaluator struct{}

// NewPS2Evaluator creates the evaluator.
func NewPS2Evaluator() *PS2Evaluator { return &PS2Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PS2Evaluator) ID() domain.CriterionID { return domain.PS2 }

// Evaluate implements ports.Evaluator.
func (e *PS2Evaluator) Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome {
	fam := rec.Family
	switch fam.DeNovo {
	case domain.DeNovoUnknown:
		return domain.NotApplicable(domain.PS2, rationaleNoFamily)
	case domain.DeNovoNo:
		return domain.NotApplicable(domain.PS2, "variant is inherited")
	case domain.DeNovoAssumed:
		return domain.NotApplicable(domain.PS2, "de novo status assumed without parental testing; assumed-de-novo criterion covers this case")
	}

	if !fam.MaternityConfirmed || !fam.PaternityConfirmed {
		return domain.NotApplicable(domain.PS2,
			"de novo status reported confirmed but parental origins are not both verified; treated as assumed")
	}

	strength := domain.StrengthStrong
	if mode == domain.Guidelines2023 {
		strength = domain.StrengthVeryStrong
	}
	return domain.Applied(domain.PS2, strength,
		"de novo occurrence confirmed with both maternity and paternity verified")
}

// PM6Evaluator decides the assumed-de-novo criterion: de novo status
// asserted without full parental verification. It also absorbs records
// marked confirmed whose parentage flags are incomplete.
type PM6Evaluator struct{}

// NewPM6Evaluator creates the evaluator.
func NewPM6Evaluator() *PM6Evaluator { return &PM6Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PM6Evaluator) ID() domain.CriterionID { return domain.PM6 }

// Evaluate implements ports.Evaluator.
func (e *PM6Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	fam := rec.Family
	switch fam.DeNovo {
	case domain.DeNovoUnknown:
		return domain.NotApplicable(domain.PM6, rationaleNoFamily)
	case domain.DeNovoNo:
		return domain.NotApplicable(domain.PM6, "variant is inherited")
	case domain.DeNovoAssumed:
		return domain.Applied(domain.PM6, domain.StrengthModerate,
			"de novo occurrence assumed without parental genetic testing")
	}

	// Confirmed status with incomplete parentage verification drops to
	// assumed weight here instead of strong weight under the confirmed
	// criterion.
	if !fam.MaternityConfirmed || !fam.PaternityConfirmed {
		return domain.Applied(domain.PM6, domain.StrengthModerate,
			"de novo occurrence reported confirmed but parental origins not both verified")
	}
	return domain.NotApplicable(domain.PM6,
		"fully confirmed de novo occurrence is covered by the confirmed-de-novo criterion")
}
