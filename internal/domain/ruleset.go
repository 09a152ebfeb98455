package domain

import "fmt"

// pathogenicPattern is one qualifying tally combination for a pathogenic
// or likely-pathogenic call. A pattern matches when every tally meets or
// exceeds the required count.
type pathogenicPattern struct {
	VeryStrong int
	Strong     int
	Moderate   int
	Supporting int
}

func (p pathogenicPattern) matches(t PathogenicTally) bool {
	return t.VeryStrong >= p.VeryStrong &&
		t.Strong >= p.Strong &&
		t.Moderate >= p.Moderate &&
		t.Supporting >= p.Supporting
}

// pathogenicPatterns are the qualifying combinations for Pathogenic,
// per the guideline combination table. The very-strong tier participates
// through the first pattern; the 2023 revision feeds it additional
// criteria (confirmed de novo) via evaluator strength, not via extra
// patterns here.
var pathogenicPatterns = []pathogenicPattern{
	{VeryStrong: 1},
	{Strong: 2},
	{Strong: 1, Moderate: 3},
	{Strong: 1, Moderate: 2, Supporting: 2},
	{Strong: 1, Moderate: 1, Supporting: 4},
}

// likelyPathogenicPatterns are the qualifying combinations for Likely
// Pathogenic.
var likelyPathogenicPatterns = []pathogenicPattern{
	{Strong: 1, Moderate: 1},
	{Strong: 1, Supporting: 2},
	{Moderate: 3},
	{Moderate: 2, Supporting: 2},
	{Moderate: 1, Supporting: 4},
}

// Combine aggregates the full set of criterion outcomes into a final
// classification under the given guideline mode. It tallies applied
// criteria per strength tier and polarity, walks the ordered rule table
// (first match wins), detects contradictory evidence, and grades
// confidence. Combine is pure: identical inputs always produce identical
// results.
func Combine(outcomes []CriterionOutcome, mode GuidelineMode) ClassificationResult {
	result := ClassificationResult{
		Mode:     mode,
		Outcomes: outcomes,
	}

	for _, o := range outcomes {
		if o.RequiresManualReview {
			result.ManualReviewCriteria = append(result.ManualReviewCriteria, o.ID)
		}
		if !o.Applies {
			continue
		}
		result.AppliedCriteria = append(result.AppliedCriteria, o.ID)
		switch o.ID.Polarity() {
		case PolarityPathogenic:
			switch o.Strength {
			case StrengthVeryStrong:
				result.Tallies.Pathogenic.VeryStrong++
			case StrengthStrong:
				result.Tallies.Pathogenic.Strong++
			case StrengthModerate:
				result.Tallies.Pathogenic.Moderate++
			default:
				result.Tallies.Pathogenic.Supporting++
			}
		case PolarityBenign:
			switch o.Strength {
			case StrengthStandAlone:
				result.Tallies.Benign.StandAlone++
			case StrengthStrong:
				result.Tallies.Benign.Strong++
			default:
				result.Tallies.Benign.Supporting++
			}
		}
	}

	result.Conflicts = detectConflicts(outcomes, result.Tallies)
	result.Classification = applyRuleTable(result.Tallies)
	result.Confidence = gradeConfidence(result.Classification, result.Tallies)
	return result
}

// applyRuleTable walks the ordered combination table. Benign evidence is
// checked first so that stand-alone and double-strong benign evidence
// dominates any pathogenic tally; the weaker benign-leaning combinations
// are only consulted after the pathogenic patterns fail.
func applyRuleTable(t Tallies) Classification {
	switch {
	case t.Benign.StandAlone >= 1:
		return ClassBenign
	case t.Benign.Strong >= 2:
		return ClassBenign
	case t.Benign.Strong >= 1 && t.Benign.Supporting >= 1:
		return ClassLikelyBenign
	}

	for _, p := range pathogenicPatterns {
		if p.matches(t.Pathogenic) {
			return ClassPathogenic
		}
	}
	for _, p := range likelyPathogenicPatterns {
		if p.matches(t.Pathogenic) {
			return ClassLikelyPathogenic
		}
	}

	// Benign-leaning override after the pathogenic checks.
	if t.Benign.Strong >= 1 || t.Benign.Supporting >= 2 {
		return ClassLikelyBenign
	}
	return ClassUncertain
}

// detectConflicts records contradictory-evidence patterns. Conflicts do
// not block classification.
func detectConflicts(outcomes []CriterionOutcome, t Tallies) []Conflict {
	if t.Pathogenic.Total() == 0 || t.Benign.Total() == 0 {
		return nil
	}

	var pathApplied, benignApplied []CriterionID
	hasVeryStrong := false
	for _, o := range outcomes {
		if !o.Applies {
			continue
		}
		if o.ID.Polarity() == PolarityPathogenic {
			pathApplied = append(pathApplied, o.ID)
			if o.Strength == StrengthVeryStrong {
				hasVeryStrong = true
			}
		} else {
			benignApplied = append(benignApplied, o.ID)
		}
	}

	conflicts := []Conflict{{
		Kind:       ConflictMixedPolarity,
		Pathogenic: pathApplied,
		Benign:     benignApplied,
		Description: fmt.Sprintf("%d pathogenic and %d benign criteria apply simultaneously",
			len(pathApplied), len(benignApplied)),
	}}

	if t.Benign.StandAlone >= 1 {
		conflicts = append(conflicts, Conflict{
			Kind:        ConflictStandAloneOverride,
			Pathogenic:  pathApplied,
			Benign:      benignApplied,
			Description: "stand-alone benign frequency evidence coexists with pathogenic evidence",
		})
	}
	if hasVeryStrong {
		conflicts = append(conflicts, Conflict{
			Kind:        ConflictVeryStrongOpposed,
			Pathogenic:  pathApplied,
			Benign:      benignApplied,
			Description: "very-strong pathogenic evidence coexists with benign evidence",
		})
	}
	return conflicts
}

// gradeConfidence derives the confidence grade from how decisive the
// matched tallies were. Uncertain results carry no confidence grade.
func gradeConfidence(c Classification, t Tallies) Confidence {
	switch c {
	case ClassPathogenic:
		if t.Pathogenic.VeryStrong >= 1 || t.Pathogenic.Strong >= 2 {
			return ConfidenceHigh
		}
		if t.Pathogenic.Total() >= 3 {
			return ConfidenceMedium
		}
		return ConfidenceLow
	case ClassBenign:
		if t.Benign.StandAlone >= 1 || t.Benign.Strong >= 2 {
			return ConfidenceHigh
		}
		if t.Benign.Total() >= 2 {
			return ConfidenceMedium
		}
		return ConfidenceLow
	case ClassLikelyPathogenic:
		if t.Pathogenic.Total() >= 3 {
			return ConfidenceMedium
		}
		return ConfidenceLow
	case ClassLikelyBenign:
		if t.Benign.Total() >= 2 {
			return ConfidenceMedium
		}
		return ConfidenceLow
	default:
		return ConfidenceNotApplicable
	}
}
