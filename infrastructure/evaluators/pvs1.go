package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that PVS1Evaluator implements Evaluator.
var _ ports.Evaluator = (*PVS1Evaluator)(nil)

// PVS1Config tunes the splice-impact secondary path for intronic
// variants.
type PVS1Config struct {
	// SpliceStrongThreshold is the splice-impact delta score above which
	// an intronic variant in an intolerant gene reaches strong evidence.
	SpliceStrongThreshold float64 `yaml:"splice_strong_threshold" validate:"gt=0,lt=1"`
	// SpliceConsiderThreshold is the delta score above which splice
	// impact is worth noting without reaching evidence strength.
	SpliceConsiderThreshold float64 `yaml:"splice_consider_threshold" validate:"gte=0,ltfield=SpliceStrongThreshold"`
}

// DefaultPVS1Config returns the standard splice thresholds.
func DefaultPVS1Config() PVS1Config {
	return PVS1Config{
		SpliceStrongThreshold:   0.5,
		SpliceConsiderThreshold: 0.2,
	}
}

// PVS1Evaluator decides the null-variant-in-intolerant-gene criterion.
// It applies at very-strong only when the consequence class is a
// recognized loss-of-function type and the gene is curated as
// loss-of-function intolerant; curated dosage-sensitivity evidence
// modulates the strength downward. Genes curated as tolerant produce an
// explicit non-applying outcome; uncurated genes defer to manual review.
type PVS1Evaluator struct {
	genes ports.GeneKnowledge
	cfg   PVS1Config
}

// NewPVS1Evaluator creates the evaluator with its gene knowledge
// dependency.
func NewPVS1Evaluator(genes ports.GeneKnowledge, cfg PVS1Config) (*PVS1Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid PVS1 config: %w", err)
	}
	return &PVS1Evaluator{genes: genes, cfg: cfg}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PVS1Evaluator) ID() domain.CriterionID { return domain.PVS1 }

// Evaluate implements ports.Evaluator.
func (e *PVS1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	tolerance := e.genes.ToleranceClass(rec.Variant.Gene)

	if rec.Variant.Consequence == domain.ConsequenceIntronic {
		return e.evaluateIntronic(rec, tolerance)
	}

	if !rec.Variant.Consequence.IsLossOfFunction() {
		return domain.NotApplicable(domain.PVS1,
			fmt.Sprintf("consequence %q is not a recognized loss-of-function type", rec.Variant.Consequence))
	}

	switch tolerance {
	case domain.ToleranceTolerant:
		return domain.NotApplicable(domain.PVS1,
			fmt.Sprintf("gene %s tolerates loss of function; null variants are not presumed damaging", rec.Variant.Gene))
	case domain.ToleranceUnknown:
		out := domain.NotApplicable(domain.PVS1,
			fmt.Sprintf("loss-of-function tolerance of gene %s is not curated; expert review required", rec.Variant.Gene))
		out.RequiresManualReview = true
		return out
	}

	strength := domain.StrengthVeryStrong
	rationale := fmt.Sprintf("null variant (%s) in loss-of-function intolerant gene %s",
		rec.Variant.Consequence, rec.Variant.Gene)

	// Curated dosage-sensitivity evidence modulates strength.
	if ds := rec.External.DosageScore; ds != nil {
		switch *ds {
		case 3:
			// Sufficient haploinsufficiency evidence keeps full strength.
		case 2:
			strength = domain.StrengthStrong
			rationale += "; emerging haploinsufficiency evidence limits strength to strong"
		case 1:
			strength = domain.StrengthModerate
			rationale += "; little haploinsufficiency evidence limits strength to moderate"
		default:
			return domain.NotApplicable(domain.PVS1,
				fmt.Sprintf("dosage-sensitivity score %d indicates haploinsufficiency is not an established mechanism in %s",
					*ds, rec.Variant.Gene))
		}
	}

	return domain.Applied(domain.PVS1, strength, rationale)
}

// evaluateIntronic handles the splice-impact secondary path: deep
// intronic variants can reach strong evidence when splice predictors
// indicate disruption and the gene is loss-of-function intolerant.
func (e *PVS1Evaluator) evaluateIntronic(rec *domain.EvidenceRecord, tolerance domain.ToleranceClass) domain.CriterionOutcome {
	splice, ok := rec.MaxSpliceScore()
	if !ok {
		return domain.NotApplicable(domain.PVS1, "intronic variant without splice-impact predictions")
	}

	switch {
	case splice > e.cfg.SpliceStrongThreshold && tolerance == domain.ToleranceIntolerant:
		return domain.Applied(domain.PVS1, domain.StrengthStrong,
			fmt.Sprintf("predicted splice disruption (delta %.2f) in loss-of-function intolerant gene %s",
				splice, rec.Variant.Gene)).WithScore(splice)
	case splice > e.cfg.SpliceConsiderThreshold:
		return domain.NotApplicable(domain.PVS1,
			fmt.Sprintf("moderate splice-impact prediction (delta %.2f); consider targeted RNA studies", splice))
	default:
		return domain.NotApplicable(domain.PVS1,
			fmt.Sprintf("splice-impact prediction (delta %.2f) below evidence threshold", splice))
	}
}
