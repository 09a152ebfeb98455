// Package domain contains the core types and pure logic for variant
// pathogenicity classification: the evidence data model, criterion
// outcomes, and the combination rule set.
package domain

// ConsequenceClass identifies the predicted molecular consequence of a
// variant. It drives which evaluators are applicable and which predictor
// weight profile the metascore engine selects.
type ConsequenceClass string

// Recognized consequence classes.
const (
	ConsequenceMissense       ConsequenceClass = "missense"
	ConsequenceNonsense       ConsequenceClass = "nonsense"
	ConsequenceFrameshift     ConsequenceClass = "frameshift"
	ConsequenceSpliceDonor    ConsequenceClass = "splice_donor"
	ConsequenceSpliceAcceptor ConsequenceClass = "splice_acceptor"
	ConsequenceStartLost      ConsequenceClass = "start_lost"
	ConsequenceStopLost       ConsequenceClass = "stop_lost"
	ConsequenceSynonymous     ConsequenceClass = "synonymous"
	ConsequenceIntronic       ConsequenceClass = "intronic"
	ConsequenceInframeIndel   ConsequenceClass = "inframe_indel"
	ConsequenceOther          ConsequenceClass = "other"
)

// IsLossOfFunction reports whether the consequence class is a recognized
// null-variant type for loss-of-function criteria.
func (c ConsequenceClass) IsLossOfFunction() bool {
	switch c {
	case ConsequenceNonsense, ConsequenceFrameshift, ConsequenceSpliceDonor,
		ConsequenceSpliceAcceptor, ConsequenceStartLost, ConsequenceStopLost:
		return true
	}
	return false
}

// InheritanceMode describes the expected inheritance pattern of the
// gene-disease association under evaluation.
type InheritanceMode string

// Supported inheritance modes.
const (
	InheritanceUnknown          InheritanceMode = ""
	InheritanceDominant         InheritanceMode = "autosomal_dominant"
	InheritanceRecessive        InheritanceMode = "autosomal_recessive"
	InheritanceXLinkedDominant  InheritanceMode = "x_linked_dominant"
	InheritanceXLinkedRecessive InheritanceMode = "x_linked_recessive"
	InheritanceMitochondrial    InheritanceMode = "mitochondrial"
)

// Zygosity describes the observed allele state in the proband.
type Zygosity string

// Supported zygosity states.
const (
	ZygosityUnknown      Zygosity = ""
	ZygosityHeterozygous Zygosity = "heterozygous"
	ZygosityHomozygous   Zygosity = "homozygous"
	ZygosityHemizygous   Zygosity = "hemizygous"
	ZygosityCompoundHet  Zygosity = "compound_heterozygous"
)

// DeNovoStatus captures whether the variant arose de novo in the proband.
type DeNovoStatus string

// De novo status values. Confirmed means parental testing was performed;
// whether both parental origins were verified is tracked separately on
// FamilyEvidence because it changes which criterion applies.
const (
	DeNovoUnknown   DeNovoStatus = ""
	DeNovoConfirmed DeNovoStatus = "confirmed"
	DeNovoAssumed   DeNovoStatus = "assumed"
	DeNovoNo        DeNovoStatus = "no"
)

// FunctionalOutcome is the result category of a functional study.
type FunctionalOutcome string

// Functional study outcomes.
const (
	FunctionalNotPerformed FunctionalOutcome = ""
	FunctionalDamaging     FunctionalOutcome = "damaging"
	FunctionalBenign       FunctionalOutcome = "benign"
	FunctionalInconclusive FunctionalOutcome = "inconclusive"
)

// VariantIdentity holds the identifying facts of the variant under
// evaluation.
type VariantIdentity struct {
	// Gene is the HGNC gene symbol, upper-case.
	Gene string `json:"gene" yaml:"gene"`
	// Chromosome is the chromosome name without the "chr" prefix.
	Chromosome string `json:"chromosome,omitempty" yaml:"chromosome,omitempty"`
	// Position is the 1-based genomic coordinate.
	Position int64 `json:"position,omitempty" yaml:"position,omitempty"`
	// Ref and Alt are the reference and alternate alleles.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
	// Consequence is the predicted molecular consequence class.
	Consequence ConsequenceClass `json:"consequence" yaml:"consequence"`
	// CDNANotation and ProteinNotation are display strings (e.g. "c.68_69del",
	// "p.Glu23fs"). They are never parsed by the engine.
	CDNANotation    string `json:"cdna_notation,omitempty" yaml:"cdna_notation,omitempty"`
	ProteinNotation string `json:"protein_notation,omitempty" yaml:"protein_notation,omitempty"`
}

// PopulationEvidence holds population-frequency facts. All numeric fields
// are pointers so that absence is distinguishable from an observed zero:
// a variant genuinely absent from a well-covered reference population is
// strong rarity evidence, while a variant with no frequency data is not.
type PopulationEvidence struct {
	// AlleleFrequency is the highest credible population allele frequency
	// (popmax) when available.
	AlleleFrequency *float64 `json:"allele_frequency,omitempty" yaml:"allele_frequency,omitempty"`
	// SourceFrequencies maps population source names (e.g. "gnomad_nfe")
	// to allele frequencies.
	SourceFrequencies map[string]float64 `json:"source_frequencies,omitempty" yaml:"source_frequencies,omitempty"`
	// HomozygoteCount is the number of homozygous carriers observed.
	HomozygoteCount *int `json:"homozygote_count,omitempty" yaml:"homozygote_count,omitempty"`
	// HemizygoteCount is the number of hemizygous carriers observed.
	HemizygoteCount *int `json:"hemizygote_count,omitempty" yaml:"hemizygote_count,omitempty"`
	// AlleleCount and AlleleNumber back the frequency when provided.
	AlleleCount  *int `json:"allele_count,omitempty" yaml:"allele_count,omitempty"`
	AlleleNumber *int `json:"allele_number,omitempty" yaml:"allele_number,omitempty"`
	// WellCovered reports whether the position had adequate sequencing
	// coverage in the reference population, making absence meaningful.
	WellCovered bool `json:"well_covered,omitempty" yaml:"well_covered,omitempty"`
}

// MaxFrequency returns the largest known allele frequency across popmax
// and all per-source frequencies, and whether any frequency was present.
func (p PopulationEvidence) MaxFrequency() (float64, bool) {
	var max float64
	found := false
	if p.AlleleFrequency != nil {
		max = *p.AlleleFrequency
		found = true
	}
	for _, af := range p.SourceFrequencies {
		if !found || af > max {
			max = af
			found = true
		}
	}
	return max, found
}

// SegregationFamily records the carrier status observed in one family
// used for segregation analysis.
type SegregationFamily struct {
	// AffectedCarriers is the number of affected members carrying the variant.
	AffectedCarriers int `json:"affected_carriers" yaml:"affected_carriers"`
	// AffectedTotal is the number of affected members genotyped.
	AffectedTotal int `json:"affected_total" yaml:"affected_total"`
	// UnaffectedCarriers is the number of unaffected members carrying the variant.
	UnaffectedCarriers int `json:"unaffected_carriers" yaml:"unaffected_carriers"`
	// UnaffectedTotal is the number of unaffected members genotyped.
	UnaffectedTotal int `json:"unaffected_total" yaml:"unaffected_total"`
}

// CaseControlCounts holds case-control association data for statistical
// enrichment testing.
type CaseControlCounts struct {
	CasesWithVariant    int `json:"cases_with_variant" yaml:"cases_with_variant"`
	CasesTotal          int `json:"cases_total" yaml:"cases_total"`
	ControlsWithVariant int `json:"controls_with_variant" yaml:"controls_with_variant"`
	ControlsTotal       int `json:"controls_total" yaml:"controls_total"`
}

// FamilyEvidence groups inheritance and family-study facts.
type FamilyEvidence struct {
	Inheritance InheritanceMode `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
	Zygosity    Zygosity        `json:"zygosity,omitempty" yaml:"zygosity,omitempty"`
	// DeNovo describes the de novo status of the variant in the proband.
	DeNovo DeNovoStatus `json:"de_novo,omitempty" yaml:"de_novo,omitempty"`
	// MaternityConfirmed and PaternityConfirmed report whether the
	// respective parental origin was verified by genetic testing. Both
	// must be true for a confirmed de novo event to reach full strength.
	MaternityConfirmed bool `json:"maternity_confirmed,omitempty" yaml:"maternity_confirmed,omitempty"`
	PaternityConfirmed bool `json:"paternity_confirmed,omitempty" yaml:"paternity_confirmed,omitempty"`
	// Consanguinity reports known parental consanguinity.
	Consanguinity bool `json:"consanguinity,omitempty" yaml:"consanguinity,omitempty"`
	// Families holds per-family segregation observations.
	Families []SegregationFamily `json:"families,omitempty" yaml:"families,omitempty"`
	// CaseControl holds enrichment counts when a case-control study exists.
	CaseControl *CaseControlCounts `json:"case_control,omitempty" yaml:"case_control,omitempty"`
}

// FunctionalEvidence groups functional-study facts.
type FunctionalEvidence struct {
	// Outcome is the overall result of functional studies for this variant.
	Outcome FunctionalOutcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	// AssayValidated reports whether the assay is well-established for
	// the gene-disease mechanism. Unvalidated damaging results carry
	// reduced weight.
	AssayValidated bool `json:"assay_validated,omitempty" yaml:"assay_validated,omitempty"`
	// ObservedInHealthy reports observation of the variant in a healthy
	// adult with full penetrance expected at that age.
	ObservedInHealthy bool `json:"observed_in_healthy,omitempty" yaml:"observed_in_healthy,omitempty"`
}

// PhenotypeEvidence groups patient phenotype facts.
type PhenotypeEvidence struct {
	// HPOTerms is the set of standardized phenotype identifiers reported
	// for the patient (e.g. "HP:0003002").
	HPOTerms []string `json:"hpo_terms,omitempty" yaml:"hpo_terms,omitempty"`
	// Descriptions holds free-text phenotype descriptions that could not
	// be mapped to identifiers upstream.
	Descriptions []string `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	// SimilarityScore is an optional precomputed phenotype similarity in
	// [0,1] supplied by an upstream matcher.
	SimilarityScore *float64 `json:"similarity_score,omitempty" yaml:"similarity_score,omitempty"`
}

// ReviewConfidence is the review-status confidence of an external
// clinical-database classification, expressed as star count.
type ReviewConfidence int

// ExternalEvidence groups already-resolved external-database facts.
type ExternalEvidence struct {
	// SameAminoAcidPathogenic counts known pathogenic variants producing
	// the identical amino-acid change.
	SameAminoAcidPathogenic int `json:"same_aa_pathogenic,omitempty" yaml:"same_aa_pathogenic,omitempty"`
	// SameResiduePathogenic counts known pathogenic missense variants at
	// the same residue with a different amino-acid change.
	SameResiduePathogenic int `json:"same_residue_pathogenic,omitempty" yaml:"same_residue_pathogenic,omitempty"`
	// ClinicalSignificance is the external clinical-database classification
	// string (e.g. "pathogenic", "benign"), lower-case, empty when absent.
	ClinicalSignificance string `json:"clinical_significance,omitempty" yaml:"clinical_significance,omitempty"`
	// ReviewStars is the review confidence of ClinicalSignificance.
	ReviewStars ReviewConfidence `json:"review_stars,omitempty" yaml:"review_stars,omitempty"`
	// SourcePanel names the asserting panel when the assertion comes from
	// an expert panel (e.g. "ClinGen").
	SourcePanel string `json:"source_panel,omitempty" yaml:"source_panel,omitempty"`
	// AssertionAgeYears is the age of the newest supporting assertion.
	AssertionAgeYears *int `json:"assertion_age_years,omitempty" yaml:"assertion_age_years,omitempty"`
	// InTransPathogenic reports a known pathogenic variant observed in
	// trans with this variant.
	InTransPathogenic bool `json:"in_trans_pathogenic,omitempty" yaml:"in_trans_pathogenic,omitempty"`
	// InCisPathogenic reports a known pathogenic variant observed in cis.
	InCisPathogenic bool `json:"in_cis_pathogenic,omitempty" yaml:"in_cis_pathogenic,omitempty"`
	// DosageScore is the curated haploinsufficiency dosage-sensitivity
	// score for the gene (3 sufficient evidence, 2 emerging, 1 little,
	// 0 none, 40 dosage-insensitive). Nil when not curated.
	DosageScore *int `json:"dosage_score,omitempty" yaml:"dosage_score,omitempty"`
	// InRepeatRegion reports that the variant lies in a repetitive region
	// without known function.
	InRepeatRegion bool `json:"in_repeat_region,omitempty" yaml:"in_repeat_region,omitempty"`
	// DiseasePrevalence is the population prevalence of the associated
	// disorder, used for frequency-threshold adjustment.
	DiseasePrevalence *float64 `json:"disease_prevalence,omitempty" yaml:"disease_prevalence,omitempty"`
}

// EvidenceRecord is the complete structured input describing one variant's
// population, computational, genetic, and functional evidence. It is
// constructed once per classification request by the collaborator layer
// and treated as read-only by every evaluator. All optional numeric fields
// use pointers so absence is distinguishable from zero.
type EvidenceRecord struct {
	Variant VariantIdentity `json:"variant" yaml:"variant"`
	// Predictors maps computational predictor names to raw scores. Valid
	// ranges and polarities are registered with the metascore engine, not
	// carried on the record.
	Predictors map[string]float64 `json:"predictors,omitempty" yaml:"predictors,omitempty"`
	Population PopulationEvidence `json:"population,omitempty" yaml:"population,omitempty"`
	Family     FamilyEvidence     `json:"family,omitempty" yaml:"family,omitempty"`
	Functional FunctionalEvidence `json:"functional,omitempty" yaml:"functional,omitempty"`
	Phenotype  PhenotypeEvidence  `json:"phenotype,omitempty" yaml:"phenotype,omitempty"`
	External   ExternalEvidence   `json:"external,omitempty" yaml:"external,omitempty"`
}

// Predictor returns the raw score for a named predictor and whether it
// was present on the record.
func (r *EvidenceRecord) Predictor(name string) (float64, bool) {
	v, ok := r.Predictors[name]
	return v, ok
}

// MaxSpliceScore returns the maximum splice-impact delta score across all
// SpliceAI channels present on the record, and whether any were present.
func (r *EvidenceRecord) MaxSpliceScore() (float64, bool) {
	var max float64
	found := false
	for _, name := range []string{"spliceai_ag", "spliceai_al", "spliceai_dg", "spliceai_dl", "spliceai_max"} {
		if v, ok := r.Predictors[name]; ok {
			if !found || v > max {
				max = v
				found = true
			}
		}
	}
	return max, found
}
