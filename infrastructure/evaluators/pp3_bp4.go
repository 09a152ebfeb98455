package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PP3Evaluator)(nil)
	_ ports.Evaluator = (*BP4Evaluator)(nil)
)

// voteThreshold is one predictor's individual damaging cutoff for the
// majority-vote fallback. Inverted predictors vote damaging below the
// cutoff.
type voteThreshold struct {
	cutoff   float64
	inverted bool
}

// fallbackVoters are the individually-thresholded predictors consulted
// when no fused metascore is available.
var fallbackVoters = map[string]voteThreshold{
	"cadd_phred":      {cutoff: 20},
	"revel":           {cutoff: 0.5},
	"sift":            {cutoff: 0.05, inverted: true},
	"polyphen2":       {cutoff: 0.5},
	"mutation_taster": {cutoff: 0.5},
	"dann":            {cutoff: 0.5},
	"fathmm":          {cutoff: 0.5, inverted: true},
}

// voteMajority is the agreement ratio required for the fallback vote to
// trigger either computational criterion.
const voteMajority = 0.7

// countVotes tallies the fallback predictors present on the record.
func countVotes(rec *domain.EvidenceRecord) (damaging, total int) {
	for name, t := range fallbackVoters {
		raw, ok := rec.Predictors[name]
		if !ok {
			continue
		}
		total++
		if t.inverted {
			if raw < t.cutoff {
				damaging++
			}
		} else if raw > t.cutoff {
			damaging++
		}
	}
	return damaging, total
}

// PP3Evaluator decides the computational-evidence-for-pathogenic
// criterion. It asks the metascore engine for a fused recommendation;
// when no composite is available it falls back to a majority vote over
// individually-thresholded predictors. PP3 and BP4 are mutually
// exclusive outcomes of the same underlying computation.
type PP3Evaluator struct {
	metascore ports.MetascoreProvider
}

// NewPP3Evaluator creates the evaluator with its metascore dependency.
func NewPP3Evaluator(metascore ports.MetascoreProvider) (*PP3Evaluator, error) {
	if metascore == nil {
		return nil, ErrNilMetascore
	}
	return &PP3Evaluator{metascore: metascore}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PP3Evaluator) ID() domain.CriterionID { return domain.PP3 }

// Evaluate implements ports.Evaluator.
func (e *PP3Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if len(rec.Predictors) == 0 {
		return domain.NotApplicable(domain.PP3, rationaleNoPredictors)
	}

	result := e.metascore.Compute(rec)
	if result.Score != nil {
		if result.Recommended == domain.SignalPathogenic {
			return domain.Applied(domain.PP3, domain.StrengthSupporting,
				fmt.Sprintf("fused computational score %.3f meets the pathogenic threshold %.2f (%s band, %d predictors)",
					*result.Score, result.PathogenicThreshold, result.FrequencyBand, result.PredictorCount)).
				WithScore(*result.Score)
		}
		return domain.NotApplicable(domain.PP3,
			fmt.Sprintf("fused computational score %.3f below the pathogenic threshold %.2f",
				*result.Score, result.PathogenicThreshold)).WithScore(*result.Score)
	}

	damaging, total := countVotes(rec)
	if total == 0 {
		return domain.NotApplicable(domain.PP3, rationaleNoPredictors)
	}
	ratio := float64(damaging) / float64(total)
	if ratio >= voteMajority {
		return domain.Applied(domain.PP3, domain.StrengthSupporting,
			fmt.Sprintf("%d of %d individual predictors call the variant damaging", damaging, total)).
			WithScore(ratio)
	}
	return domain.NotApplicable(domain.PP3,
		fmt.Sprintf("only %d of %d individual predictors call the variant damaging", damaging, total))
}

// BP4Evaluator decides the computational-evidence-for-benign criterion,
// the benign-side counterpart of the fused-score computation.
type BP4Evaluator struct {
	metascore ports.MetascoreProvider
}

// NewBP4Evaluator creates the evaluator with its metascore dependency.
func NewBP4Evaluator(metascore ports.MetascoreProvider) (*BP4Evaluator, error) {
	if metascore == nil {
		return nil, ErrNilMetascore
	}
	return &BP4Evaluator{metascore: metascore}, nil
}

// ID returns the criterion this evaluator decides.
func (e *BP4Evaluator) ID() domain.CriterionID { return domain.BP4 }

// Evaluate implements ports.Evaluator.
func (e *BP4Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if len(rec.Predictors) == 0 {
		return domain.NotApplicable(domain.BP4, rationaleNoPredictors)
	}

	result := e.metascore.Compute(rec)
	if result.Score != nil {
		if result.Recommended == domain.SignalBenign {
			return domain.Applied(domain.BP4, domain.StrengthSupporting,
				fmt.Sprintf("fused computational score %.3f meets the benign threshold %.2f (%s band, %d predictors)",
					*result.Score, result.BenignThreshold, result.FrequencyBand, result.PredictorCount)).
				WithScore(*result.Score)
		}
		return domain.NotApplicable(domain.BP4,
			fmt.Sprintf("fused computational score %.3f above the benign threshold %.2f",
				*result.Score, result.BenignThreshold)).WithScore(*result.Score)
	}

	damaging, total := countVotes(rec)
	if total == 0 {
		return domain.NotApplicable(domain.BP4, rationaleNoPredictors)
	}
	benignRatio := float64(total-damaging) / float64(total)
	if benignRatio >= voteMajority {
		return domain.Applied(domain.BP4, domain.StrengthSupporting,
			fmt.Sprintf("%d of %d individual predictors call the variant benign", total-damaging, total)).
			WithScore(benignRatio)
	}
	return domain.NotApplicable(domain.BP4,
		fmt.Sprintf("only %d of %d individual predictors call the variant benign", total-damaging, total))
}
