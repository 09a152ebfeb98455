package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PP4Evaluator)(nil)
	_ ports.Evaluator = (*BP5Evaluator)(nil)
)

// Phenotype similarity thresholds. The band between the benign and
// supporting cutoffs yields neither criterion.
const (
	phenotypeStrongMatch     = 0.8
	phenotypeSupportingMatch = 0.5
	phenotypeMismatch        = 0.2
	// MinPhenotypeTerms is the minimum combined term count before either
	// phenotype criterion may apply, guarding against spurious
	// conclusions from sparse data.
	MinPhenotypeTerms = 3
)

// phenotypeSimilarity resolves the similarity between the patient's
// terms and the gene's curated terms, preferring a precomputed score
// when the record carries one. ok is false when no similarity can be
// established at all.
func phenotypeSimilarity(rec *domain.EvidenceRecord, genes ports.GeneKnowledge, matcher ports.PhenotypeMatcher) (score float64, unionSize int, ok bool) {
	patientTerms := append([]string{}, rec.Phenotype.HPOTerms...)
	patientTerms = append(patientTerms, rec.Phenotype.Descriptions...)
	geneTerms := genes.PhenotypeTerms(rec.Variant.Gene)

	if rec.Phenotype.SimilarityScore != nil {
		// A precomputed score still honors the sparse-data floor.
		union := len(patientTerms) + len(geneTerms)
		return *rec.Phenotype.SimilarityScore, union, true
	}

	if len(patientTerms) == 0 || len(geneTerms) == 0 {
		return 0, 0, false
	}
	score, unionSize = matcher.Similarity(patientTerms, geneTerms)
	return score, unionSize, true
}

// PP4Evaluator decides the phenotype-specificity criterion: the
// patient's phenotype is highly specific for the gene's disorder.
// Similarity at or above the strong-match cutoff applies at moderate
// strength; the supporting cutoff applies at supporting strength.
type PP4Evaluator struct {
	genes   ports.GeneKnowledge
	matcher ports.PhenotypeMatcher
}

// NewPP4Evaluator creates the evaluator with its dependencies.
func NewPP4Evaluator(genes ports.GeneKnowledge, matcher ports.PhenotypeMatcher) (*PP4Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	if matcher == nil {
		return nil, ErrNilPhenotypeMatcher
	}
	return &PP4Evaluator{genes: genes, matcher: matcher}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PP4Evaluator) ID() domain.CriterionID { return domain.PP4 }

// Evaluate implements ports.Evaluator.
func (e *PP4Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	score, unionSize, ok := phenotypeSimilarity(rec, e.genes, e.matcher)
	if !ok {
		return domain.NotApplicable(domain.PP4, rationaleNoPhenotype)
	}
	if unionSize < MinPhenotypeTerms {
		return domain.NotApplicable(domain.PP4,
			fmt.Sprintf("only %d distinct phenotype terms; at least %d required for phenotype evidence",
				unionSize, MinPhenotypeTerms))
	}

	switch {
	case score >= phenotypeStrongMatch:
		return domain.Applied(domain.PP4, domain.StrengthModerate,
			fmt.Sprintf("patient phenotype highly specific for the %s disorder (similarity %.2f)",
				rec.Variant.Gene, score)).WithScore(score)
	case score >= phenotypeSupportingMatch:
		return domain.Applied(domain.PP4, domain.StrengthSupporting,
			fmt.Sprintf("patient phenotype consistent with the %s disorder (similarity %.2f)",
				rec.Variant.Gene, score)).WithScore(score)
	default:
		return domain.NotApplicable(domain.PP4,
			fmt.Sprintf("phenotype similarity %.2f below the supporting cutoff %.1f",
				score, phenotypeSupportingMatch)).WithScore(score)
	}
}

// BP5Evaluator decides the phenotype-inconsistency criterion: the
// patient's phenotype is clearly inconsistent with the gene's disorder.
type BP5Evaluator struct {
	genes   ports.GeneKnowledge
	matcher ports.PhenotypeMatcher
}

// NewBP5Evaluator creates the evaluator with its dependencies.
func NewBP5Evaluator(genes ports.GeneKnowledge, matcher ports.PhenotypeMatcher) (*BP5Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	if matcher == nil {
		return nil, ErrNilPhenotypeMatcher
	}
	return &BP5Evaluator{genes: genes, matcher: matcher}, nil
}

// ID returns the criterion this evaluator decides.
func (e *BP5Evaluator) ID() domain.CriterionID { return domain.BP5 }

// Evaluate implements ports.Evaluator.
func (e *BP5Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	score, unionSize, ok := phenotypeSimilarity(rec, e.genes, e.matcher)
	if !ok {
		return domain.NotApplicable(domain.BP5, rationaleNoPhenotype)
	}
	if unionSize < MinPhenotypeTerms {
		return domain.NotApplicable(domain.BP5,
			fmt.Sprintf("only %d distinct phenotype terms; at least %d required for phenotype evidence",
				unionSize, MinPhenotypeTerms))
	}

	if score <= phenotypeMismatch {
		return domain.Applied(domain.BP5, domain.StrengthSupporting,
			fmt.Sprintf("patient phenotype inconsistent with the %s disorder (similarity %.2f)",
				rec.Variant.Gene, score)).WithScore(score)
	}
	return domain.NotApplicable(domain.BP5,
		fmt.Sprintf("phenotype similarity %.2f above the inconsistency cutoff %.1f",
			score, phenotypeMismatch)).WithScore(score)
}
