package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/infrastructure/stats"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PP1Evaluator)(nil)
	_ ports.Evaluator = (*BS4Evaluator)(nil)
)

// segregationBars are the LOD cutoffs per guideline revision. The newer
// revision introduces a graded scale with a strong tier at a higher bar
// and requires stronger non-segregation evidence on the benign side.
type segregationBars struct {
	strong     float64
	moderate   float64 // 0 disables the tier
	supporting float64
	benign     float64 // BS4 applies at or below -benign
}

var segregationBarsByMode = map[domain.GuidelineMode]segregationBars{
	domain.Guidelines2015: {strong: 3.0, moderate: 0, supporting: 1.5, benign: 1.5},
	domain.Guidelines2023: {strong: 5.0, moderate: 3.0, supporting: 1.5, benign: 2.0},
}

// PP1Evaluator decides the co-segregation criterion by scoring the
// supplied family observations and grading the summed LOD against the
// revision's tiers. Fewer than the minimum informative families yields
// no evidence regardless of score.
type PP1Evaluator struct{}

// NewPP1Evaluator creates the evaluator.
func NewPP1Evaluator() *PP1Evaluator { return &PP1Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PP1Evaluator) ID() domain.CriterionID { return domain.PP1 }

// Evaluate implements ports.Evaluator.
func (e *PP1Evaluator) Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome {
	result, ok := scoreSegregation(rec)
	if !ok {
		return domain.NotApplicable(domain.PP1, rationaleNoFamily)
	}
	if !result.Informative() {
		return domain.NotApplicable(domain.PP1,
			fmt.Sprintf("only %d informative families; at least %d required",
				result.InformativeFamilies, stats.MinInformativeFamilies))
	}

	bars := segregationBarsByMode[mode]
	switch {
	case result.LOD >= bars.strong:
		return domain.Applied(domain.PP1, domain.StrengthStrong,
			fmt.Sprintf("strong co-segregation with disease (LOD %.2f across %d families)",
				result.LOD, result.InformativeFamilies)).WithScore(result.LOD)
	case bars.moderate > 0 && result.LOD >= bars.moderate:
		return domain.Applied(domain.PP1, domain.StrengthModerate,
			fmt.Sprintf("moderate co-segregation with disease (LOD %.2f across %d families)",
				result.LOD, result.InformativeFamilies)).WithScore(result.LOD)
	case result.LOD >= bars.supporting:
		return domain.Applied(domain.PP1, domain.StrengthSupporting,
			fmt.Sprintf("co-segregation with disease (LOD %.2f across %d families)",
				result.LOD, result.InformativeFamilies)).WithScore(result.LOD)
	default:
		return domain.NotApplicable(domain.PP1,
			fmt.Sprintf("segregation score inconclusive (LOD %.2f)", result.LOD)).WithScore(result.LOD)
	}
}

// BS4Evaluator decides the lack-of-segregation benign criterion from the
// same family observations: sufficiently negative LOD scores indicate
// the variant does not track with disease.
type BS4Evaluator struct{}

// NewBS4Evaluator creates the evaluator.
func NewBS4Evaluator() *BS4Evaluator { return &BS4Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BS4Evaluator) ID() domain.CriterionID { return domain.BS4 }

// Evaluate implements ports.Evaluator.
func (e *BS4Evaluator) Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome {
	result, ok := scoreSegregation(rec)
	if !ok {
		return domain.NotApplicable(domain.BS4, rationaleNoFamily)
	}
	if !result.Informative() {
		return domain.NotApplicable(domain.BS4,
			fmt.Sprintf("only %d informative families; at least %d required",
				result.InformativeFamilies, stats.MinInformativeFamilies))
	}

	bars := segregationBarsByMode[mode]
	if result.LOD <= -bars.benign {
		return domain.Applied(domain.BS4, domain.StrengthStrong,
			fmt.Sprintf("variant fails to segregate with disease (LOD %.2f across %d families)",
				result.LOD, result.InformativeFamilies)).WithScore(result.LOD)
	}
	return domain.NotApplicable(domain.BS4,
		fmt.Sprintf("no qualifying non-segregation evidence (LOD %.2f)", result.LOD)).WithScore(result.LOD)
}

// scoreSegregation converts the record's family data into a segregation
// score. ok is false when no families are supplied at all.
func scoreSegregation(rec *domain.EvidenceRecord) (stats.SegregationResult, bool) {
	if len(rec.Family.Families) == 0 {
		return stats.SegregationResult{}, false
	}
	observations := make([]stats.FamilyObservation, len(rec.Family.Families))
	for i, f := range rec.Family.Families {
		observations[i] = stats.FamilyObservation{
			AffectedCarriers:   f.AffectedCarriers,
			AffectedTotal:      f.AffectedTotal,
			UnaffectedCarriers: f.UnaffectedCarriers,
			UnaffectedTotal:    f.UnaffectedTotal,
		}
	}
	return stats.SegregationLOD(observations), true
}
