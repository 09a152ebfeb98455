package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/infrastructure/stats"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that PS4Evaluator implements Evaluator.
var _ ports.Evaluator = (*PS4Evaluator)(nil)

// ps4Bar is the evidentiary bar for case-control enrichment under one
// guideline revision.
type ps4Bar struct {
	minOddsRatio float64
	minCases     int
	minControls  int
}

// The newer revision raises all three bars substantially.
var ps4Bars = map[domain.GuidelineMode]ps4Bar{
	domain.Guidelines2015: {minOddsRatio: 2.0, minCases: 5, minControls: 1000},
	domain.Guidelines2023: {minOddsRatio: 5.0, minCases: 10, minControls: 2000},
}

// ps4SignificanceLevel is the p-value bound required in both revisions.
const ps4SignificanceLevel = 0.05

// PS4Evaluator decides the case-control enrichment criterion by running
// a one-sided Fisher's exact test over the study counts and comparing
// the odds ratio and sample sizes against the revision's bars.
type PS4Evaluator struct{}

// NewPS4Evaluator creates the evaluator.
func NewPS4Evaluator() *PS4Evaluator { return &PS4Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PS4Evaluator) ID() domain.CriterionID { return domain.PS4 }

// Evaluate implements ports.Evaluator.
func (e *PS4Evaluator) Evaluate(rec *domain.EvidenceRecord, mode domain.GuidelineMode) domain.CriterionOutcome {
	cc := rec.Family.CaseControl
	if cc == nil {
		return domain.NotApplicable(domain.PS4, "no case-control study data available")
	}

	bar, ok := ps4Bars[mode]
	if !ok {
		bar = ps4Bars[domain.Guidelines2015]
	}

	if cc.CasesWithVariant < bar.minCases {
		return domain.NotApplicable(domain.PS4,
			fmt.Sprintf("only %d cases carry the variant; at least %d required", cc.CasesWithVariant, bar.minCases))
	}
	if cc.ControlsTotal < bar.minControls {
		return domain.NotApplicable(domain.PS4,
			fmt.Sprintf("only %d controls genotyped; at least %d required", cc.ControlsTotal, bar.minControls))
	}

	result, err := stats.FisherExact(cc.CasesWithVariant, cc.CasesTotal, cc.ControlsWithVariant, cc.ControlsTotal)
	if err != nil {
		// Malformed counts are treated as absent evidence, never as a
		// hard failure.
		return domain.NotApplicable(domain.PS4, fmt.Sprintf("case-control counts unusable: %v", err))
	}

	if result.PValue >= ps4SignificanceLevel {
		return domain.NotApplicable(domain.PS4,
			fmt.Sprintf("enrichment not significant (p=%.3g)", result.PValue)).WithScore(result.OddsRatio)
	}
	if result.OddsRatio < bar.minOddsRatio {
		return domain.NotApplicable(domain.PS4,
			fmt.Sprintf("odds ratio %.2f below the required %.1f", result.OddsRatio, bar.minOddsRatio)).WithScore(result.OddsRatio)
	}

	return domain.Applied(domain.PS4, domain.StrengthStrong,
		fmt.Sprintf("variant significantly enriched in cases (OR=%.2f, p=%.3g)",
			result.OddsRatio, result.PValue)).WithScore(result.OddsRatio)
}
