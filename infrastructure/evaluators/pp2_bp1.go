package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PP2Evaluator)(nil)
	_ ports.Evaluator = (*BP1Evaluator)(nil)
)

// PP2Evaluator decides the missense-in-constrained-gene criterion:
// missense variants in genes with low benign missense variation where
// missense is a common disease mechanism.
type PP2Evaluator struct {
	genes ports.GeneKnowledge
}

// NewPP2Evaluator creates the evaluator.
func NewPP2Evaluator(genes ports.GeneKnowledge) (*PP2Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &PP2Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PP2Evaluator) ID() domain.CriterionID { return domain.PP2 }

// Evaluate implements ports.Evaluator.
func (e *PP2Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceMissense {
		return domain.NotApplicable(domain.PP2, "criterion applies to missense variants only")
	}
	if !e.genes.MissenseConstrained(rec.Variant.Gene) {
		return domain.NotApplicable(domain.PP2,
			fmt.Sprintf("missense variation is not a curated disease mechanism in %s", rec.Variant.Gene))
	}
	return domain.Applied(domain.PP2, domain.StrengthSupporting,
		fmt.Sprintf("missense variant in %s, where missense is a common mechanism and benign missense is rare",
			rec.Variant.Gene))
}

// BP1Evaluator decides the missense-in-truncating-gene criterion:
// missense variants in genes where only truncating variants are known to
// cause disease.
type BP1Evaluator struct {
	genes ports.GeneKnowledge
}

// NewBP1Evaluator creates the evaluator.
func NewBP1Evaluator(genes ports.GeneKnowledge) (*BP1Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &BP1Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *BP1Evaluator) ID() domain.CriterionID { return domain.BP1 }

// Evaluate implements ports.Evaluator.
func (e *BP1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if rec.Variant.Consequence != domain.ConsequenceMissense {
		return domain.NotApplicable(domain.BP1, "criterion applies to missense variants only")
	}
	if !e.genes.TruncatingOnly(rec.Variant.Gene) {
		return domain.NotApplicable(domain.BP1,
			fmt.Sprintf("disease mechanism in %s is not limited to truncating variants", rec.Variant.Gene))
	}
	return domain.Applied(domain.BP1, domain.StrengthSupporting,
		fmt.Sprintf("missense variant in %s, where only truncating variants cause disease", rec.Variant.Gene))
}
