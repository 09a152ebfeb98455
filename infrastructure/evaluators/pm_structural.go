package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PM1Evaluator)(nil)
	_ ports.Evaluator = (*PM4Evaluator)(nil)
	_ ports.Evaluator = (*BP3Evaluator)(nil)
)

// PM1Evaluator decides the mutational-hotspot criterion: the variant
// falls inside a curated hotspot or well-established functional domain
// of the gene.
type PM1Evaluator struct {
	genes ports.GeneKnowledge
}

// NewPM1Evaluator creates the evaluator.
func NewPM1Evaluator(genes ports.GeneKnowledge) (*PM1Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &PM1Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PM1Evaluator) ID() domain.CriterionID { return domain.PM1 }

// Evaluate implements ports.Evaluator.
func (e *PM1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceMissense &&
		rec.Variant.Consequence != domain.ConsequenceInframeIndel {
		return domain.NotApplicable(domain.PM1, "criterion applies to protein-altering variants only")
	}
	if rec.Variant.ProteinNotation == "" {
		return domain.NotApplicable(domain.PM1, "no protein notation available to locate the residue")
	}

	if e.genes.InCriticalDomain(rec.Variant.Gene, rec.Variant.ProteinNotation) {
		return domain.Applied(domain.PM1, domain.StrengthModerate,
			fmt.Sprintf("variant %s falls inside a curated functional domain of %s",
				rec.Variant.ProteinNotation, rec.Variant.Gene))
	}
	return domain.NotApplicable(domain.PM1,
		"variant lies outside curated hotspots and functional domains")
}

// PM4Evaluator decides the protein-length-change criterion: inframe
// indels outside repetitive regions and stop-loss variants alter protein
// length in a non-repeat context.
type PM4Evaluator struct{}

// NewPM4Evaluator creates the evaluator.
func NewPM4Evaluator() *PM4Evaluator { return &PM4Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *PM4Evaluator) ID() domain.CriterionID { return domain.PM4 }

// Evaluate implements ports.Evaluator.
func (e *PM4Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	switch rec.Variant.Consequence {
	case domain.ConsequenceStopLost:
		return domain.Applied(domain.PM4, domain.StrengthModerate,
			"stop-loss variant extends the protein")
	case domain.ConsequenceInframeIndel:
		if rec.External.InRepeatRegion {
			return domain.NotApplicable(domain.PM4,
				"inframe change lies in a repetitive region; covered by the repeat-region benign criterion")
		}
		return domain.Applied(domain.PM4, domain.StrengthModerate,
			"inframe insertion/deletion in a non-repeat region changes protein length")
	default:
		return domain.NotApplicable(domain.PM4, "consequence does not change protein length in frame")
	}
}

// BP3Evaluator decides the inframe-indel-in-repeat criterion: inframe
// changes inside repetitive regions without known function.
type BP3Evaluator struct{}

// NewBP3Evaluator creates the evaluator.
func NewBP3Evaluator() *BP3Evaluator { return &BP3Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BP3Evaluator) ID() domain.CriterionID { return domain.BP3 }

// Evaluate implements ports.Evaluator.
func (e *BP3Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceInframeIndel {
		return domain.NotApplicable(domain.BP3, "criterion applies to inframe insertions/deletions only")
	}
	if !rec.External.InRepeatRegion {
		return domain.NotApplicable(domain.BP3, "variant does not lie in a known repetitive region")
	}
	return domain.Applied(domain.BP3, domain.StrengthSupporting,
		"inframe change in a repetitive region without known function")
}
