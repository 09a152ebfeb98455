package evaluators

import (
	"fmt"
	"strings"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PP5Evaluator)(nil)
	_ ports.Evaluator = (*BP6Evaluator)(nil)
)

// Reputable-source requirements: expert-panel assertions or assertions
// with at least this many review stars, no older than the maximum age.
const (
	minReviewStars  = 2
	maxAssertionAge = 5
)

// expertPanels are sources whose assertions qualify regardless of star
// count.
var expertPanels = map[string]struct{}{
	"clingen": {},
	"enigma":  {},
	"insight": {},
	"acmg":    {},
}

// reputableAssertion reports whether the record's external assertion
// meets the reputable-source requirements.
func reputableAssertion(ext domain.ExternalEvidence) (ok bool, why string) {
	if ext.AssertionAgeYears != nil && *ext.AssertionAgeYears > maxAssertionAge {
		return false, fmt.Sprintf("assertion is %d years old; older than the %d-year limit",
			*ext.AssertionAgeYears, maxAssertionAge)
	}
	if _, expert := expertPanels[strings.ToLower(ext.SourcePanel)]; expert {
		return true, fmt.Sprintf("expert panel %s assertion", ext.SourcePanel)
	}
	if int(ext.ReviewStars) >= minReviewStars {
		return true, fmt.Sprintf("assertion with %d review stars", ext.ReviewStars)
	}
	return false, fmt.Sprintf("assertion has %d review stars; at least %d required", ext.ReviewStars, minReviewStars)
}

// PP5Evaluator decides the reputable-source-pathogenic criterion: a
// qualifying external source recently asserted the variant pathogenic
// without accessible primary data.
type PP5Evaluator struct{}

// NewPP5Evaluator creates the evaluator.
func NewPP5Evaluator() *PP5Evaluator { return &PP5Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PP5Evaluator) ID() domain.CriterionID { return domain.PP5 }

// Evaluate implements ports.Evaluator.
func (e *PP5Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	sig := strings.ToLower(rec.External.ClinicalSignificance)
	if sig == "" {
		return domain.NotApplicable(domain.PP5, "no external clinical-database classification available")
	}
	if !strings.Contains(sig, "pathogenic") || strings.Contains(sig, "benign") {
		return domain.NotApplicable(domain.PP5, "external classification is not pathogenic")
	}

	ok, why := reputableAssertion(rec.External)
	if !ok {
		return domain.NotApplicable(domain.PP5, why)
	}
	return domain.Applied(domain.PP5, domain.StrengthSupporting,
		fmt.Sprintf("reputable source reports the variant pathogenic (%s)", why))
}

// BP6Evaluator decides the reputable-source-benign criterion, the benign
// counterpart.
type BP6Evaluator struct{}

// NewBP6Evaluator creates the evaluator.
func NewBP6Evaluator() *BP6Evaluator { return &BP6Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BP6Evaluator) ID() domain.CriterionID { return domain.BP6 }

// Evaluate implements ports.Evaluator.
func (e *BP6Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	sig := strings.ToLower(rec.External.ClinicalSignificance)
	if sig == "" {
		return domain.NotApplicable(domain.BP6, "no external clinical-database classification available")
	}
	if !strings.Contains(sig, "benign") || strings.Contains(sig, "pathogenic") {
		return domain.NotApplicable(domain.BP6, "external classification is not benign")
	}

	ok, why := reputableAssertion(rec.External)
	if !ok {
		return domain.NotApplicable(domain.BP6, why)
	}
	return domain.Applied(domain.BP6, domain.StrengthSupporting,
		fmt.Sprintf("reputable source reports the variant benign (%s)", why))
}
