package evaluators

import (
	"fmt"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Evaluator = (*PM2Evaluator)(nil)
	_ ports.Evaluator = (*BA1Evaluator)(nil)
	_ ports.Evaluator = (*BS1Evaluator)(nil)
	_ ports.Evaluator = (*BS2Evaluator)(nil)
)

// PM2Evaluator decides the absent-or-rare-in-population criterion using
// the gene's rarity threshold. Absence from a well-covered reference
// population is the strongest form of this evidence; frequencies at or
// above the gene's strong-benign threshold categorically exclude it.
type PM2Evaluator struct {
	genes ports.GeneKnowledge
}

// NewPM2Evaluator creates the evaluator.
func NewPM2Evaluator(genes ports.GeneKnowledge) (*PM2Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &PM2Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *PM2Evaluator) ID() domain.CriterionID { return domain.PM2 }

// Evaluate implements ports.Evaluator.
func (e *PM2Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	thresholds := e.genes.FrequencyThresholds(rec.Variant.Gene)

	maxAF, found := rec.Population.MaxFrequency()
	if !found {
		if rec.Population.WellCovered {
			return domain.Applied(domain.PM2, domain.StrengthModerate,
				"variant absent from well-covered reference populations")
		}
		return domain.NotApplicable(domain.PM2, rationaleNoFrequency)
	}

	switch {
	case maxAF >= thresholds.Strong:
		return domain.NotApplicable(domain.PM2,
			fmt.Sprintf("allele frequency %.3g exceeds the gene's benign frequency threshold", maxAF))
	case maxAF == 0:
		return domain.Applied(domain.PM2, domain.StrengthModerate,
			"variant absent from reference populations").WithScore(maxAF)
	case maxAF < thresholds.Rarity:
		return domain.Applied(domain.PM2, domain.StrengthModerate,
			fmt.Sprintf("allele frequency %.3g below the gene's rarity threshold %.3g",
				maxAF, thresholds.Rarity)).WithScore(maxAF)
	default:
		return domain.NotApplicable(domain.PM2,
			fmt.Sprintf("allele frequency %.3g not below the rarity threshold %.3g", maxAF, thresholds.Rarity))
	}
}

// BA1Evaluator decides the stand-alone high-frequency benign criterion
// against the gene's stand-alone threshold.
type BA1Evaluator struct {
	genes ports.GeneKnowledge
}

// NewBA1Evaluator creates the evaluator.
func NewBA1Evaluator(genes ports.GeneKnowledge) (*BA1Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &BA1Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *BA1Evaluator) ID() domain.CriterionID { return domain.BA1 }

// Evaluate implements ports.Evaluator.
func (e *BA1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	maxAF, found := rec.Population.MaxFrequency()
	if !found {
		return domain.NotApplicable(domain.BA1, rationaleNoFrequency)
	}

	threshold := e.genes.FrequencyThresholds(rec.Variant.Gene).StandAlone
	if maxAF >= threshold {
		return domain.Applied(domain.BA1, domain.StrengthStandAlone,
			fmt.Sprintf("allele frequency %.3g at or above the stand-alone threshold %.3g",
				maxAF, threshold)).WithScore(maxAF)
	}
	return domain.NotApplicable(domain.BA1,
		fmt.Sprintf("allele frequency %.3g below the stand-alone threshold %.3g", maxAF, threshold))
}

// BS1Evaluator decides the too-frequent-for-disorder strong benign
// criterion. It applies between the gene's strong and stand-alone
// thresholds; frequencies above the stand-alone threshold are covered by
// that criterion instead. When a disease prevalence is supplied, an
// expected maximum credible frequency derived from it can lower the
// effective threshold.
type BS1Evaluator struct {
	genes ports.GeneKnowledge
}

// NewBS1Evaluator creates the evaluator.
func NewBS1Evaluator(genes ports.GeneKnowledge) (*BS1Evaluator, error) {
	if genes == nil {
		return nil, ErrNilGeneKnowledge
	}
	return &BS1Evaluator{genes: genes}, nil
}

// ID returns the criterion this evaluator decides.
func (e *BS1Evaluator) ID() domain.CriterionID { return domain.BS1 }

// Evaluate implements ports.Evaluator.
func (e *BS1Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	maxAF, found := rec.Population.MaxFrequency()
	if !found {
		return domain.NotApplicable(domain.BS1, rationaleNoFrequency)
	}

	thresholds := e.genes.FrequencyThresholds(rec.Variant.Gene)
	threshold := thresholds.Strong

	// A supplied disease prevalence bounds the expected maximum credible
	// frequency for a fully penetrant pathogenic allele.
	if prev := rec.External.DiseasePrevalence; prev != nil && *prev > 0 {
		if expected := *prev * 0.5; expected < threshold {
			threshold = expected
		}
	}

	switch {
	case maxAF >= thresholds.StandAlone:
		return domain.NotApplicable(domain.BS1,
			"frequency reaches the stand-alone benign threshold; covered by that criterion")
	case maxAF >= threshold:
		return domain.Applied(domain.BS1, domain.StrengthStrong,
			fmt.Sprintf("allele frequency %.3g exceeds the expected frequency %.3g for the disorder",
				maxAF, threshold)).WithScore(maxAF)
	default:
		return domain.NotApplicable(domain.BS1,
			fmt.Sprintf("allele frequency %.3g below the expected-frequency threshold %.3g", maxAF, threshold))
	}
}

// BS2Evaluator decides the observed-in-healthy criterion: the variant is
// seen in healthy adults in a zygosity state expected to manifest the
// disorder, or reference populations report homozygous carriers for a
// recessive condition.
type BS2Evaluator struct{}

// NewBS2Evaluator creates the evaluator.
func NewBS2Evaluator() *BS2Evaluator { return &BS2Evaluator{} }

// ID returns the criterion this evaluator decides.
func (e *BS2Evaluator) ID() domain.CriterionID { return domain.BS2 }

// Evaluate implements ports.Evaluator.
func (e *BS2Evaluator) Evaluate(rec *domain.EvidenceRecord, _ domain.GuidelineMode) domain.CriterionOutcome {
	if hom := rec.Population.HomozygoteCount; hom != nil && *hom > 0 &&
		rec.Family.Inheritance == domain.InheritanceRecessive {
		return domain.Applied(domain.BS2, domain.StrengthStrong,
			fmt.Sprintf("%d homozygous carrier(s) in reference populations for a recessive disorder", *hom))
	}

	if rec.Functional.ObservedInHealthy {
		switch rec.Family.Inheritance {
		case domain.InheritanceDominant:
			return domain.Applied(domain.BS2, domain.StrengthStrong,
				"variant observed in a healthy adult for a dominant disorder")
		case domain.InheritanceRecessive:
			if rec.Family.Zygosity == domain.ZygosityHomozygous {
				return domain.Applied(domain.BS2, domain.StrengthStrong,
					"homozygous observation in a healthy adult for a recessive disorder")
			}
			return domain.NotApplicable(domain.BS2,
				"heterozygous observation in a healthy adult is expected for a recessive disorder")
		case domain.InheritanceXLinkedRecessive:
			if rec.Family.Zygosity == domain.ZygosityHemizygous {
				return domain.Applied(domain.BS2, domain.StrengthStrong,
					"hemizygous observation in a healthy adult for an X-linked disorder")
			}
			return domain.NotApplicable(domain.BS2,
				"carrier observation is expected for an X-linked recessive disorder")
		default:
			return domain.NotApplicable(domain.BS2,
				"inheritance mode unknown; healthy-adult observation cannot be weighed")
		}
	}

	return domain.NotApplicable(domain.BS2, "no qualifying healthy-adult observations")
}
