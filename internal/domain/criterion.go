package domain

// CriterionID names one of the 28 ACMG/AMP evidence criteria.
type CriterionID string

// Pathogenic criteria, strongest first.
const (
	PVS1 CriterionID = "PVS1"
	PS1  CriterionID = "PS1"
	PS2  CriterionID = "PS2"
	PS3  CriterionID = "PS3"
	PS4  CriterionID = "PS4"
	PM1  CriterionID = "PM1"
	PM2  CriterionID = "PM2"
	PM3  CriterionID = "PM3"
	PM4  CriterionID = "PM4"
	PM5  CriterionID = "PM5"
	PM6  CriterionID = "PM6"
	PP1  CriterionID = "PP1"
	PP2  CriterionID = "PP2"
	PP3  CriterionID = "PP3"
	PP4  CriterionID = "PP4"
	PP5  CriterionID = "PP5"
)

// Benign criteria, strongest first.
const (
	BA1 CriterionID = "BA1"
	BS1 CriterionID = "BS1"
	BS2 CriterionID = "BS2"
	BS3 CriterionID = "BS3"
	BS4 CriterionID = "BS4"
	BP1 CriterionID = "BP1"
	BP2 CriterionID = "BP2"
	BP3 CriterionID = "BP3"
	BP4 CriterionID = "BP4"
	BP5 CriterionID = "BP5"
	BP6 CriterionID = "BP6"
	BP7 CriterionID = "BP7"
)

// AllCriteria lists every criterion in canonical evaluation order. The
// order fixes result ordering for deterministic output; evaluators have
// no execution-order dependency on each other.
var AllCriteria = []CriterionID{
	PVS1, PS1, PS2, PS3, PS4,
	PM1, PM2, PM3, PM4, PM5, PM6,
	PP1, PP2, PP3, PP4, PP5,
	BA1, BS1, BS2, BS3, BS4,
	BP1, BP2, BP3, BP4, BP5, BP6, BP7,
}

// Polarity is the evidence direction of a criterion.
type Polarity string

// Evidence polarities.
const (
	PolarityPathogenic Polarity = "pathogenic"
	PolarityBenign     Polarity = "benign"
)

// Polarity returns the evidence direction of the criterion. Criterion IDs
// follow the guideline naming scheme, so the first letter is decisive.
func (c CriterionID) Polarity() Polarity {
	if len(c) > 0 && c[0] == 'B' {
		return PolarityBenign
	}
	return PolarityPathogenic
}

// Strength is the weight class of an applying criterion.
type Strength string

// Strength tiers. StandAlone exists only on the benign side; VeryStrong
// is reachable on the pathogenic side only.
const (
	StrengthStandAlone Strength = "stand_alone"
	StrengthVeryStrong Strength = "very_strong"
	StrengthStrong     Strength = "strong"
	StrengthModerate   Strength = "moderate"
	StrengthSupporting Strength = "supporting"
)

// GuidelineMode selects between the two supported guideline revisions.
// The newer revision changes a small number of evaluator thresholds and
// adds a very-strong de novo tier to the combination table.
type GuidelineMode string

// Supported guideline modes.
const (
	Guidelines2015 GuidelineMode = "2015"
	Guidelines2023 GuidelineMode = "2023"
)

// Valid reports whether the mode is one of the supported revisions.
func (m GuidelineMode) Valid() bool {
	return m == Guidelines2015 || m == Guidelines2023
}

// CriterionOutcome is the result of evaluating one criterion against one
// EvidenceRecord. Outcomes are produced fresh per evaluation and never
// cached across records.
type CriterionOutcome struct {
	// ID names the evaluated criterion.
	ID CriterionID `json:"id"`
	// Applies reports whether the criterion is met. Missing input data
	// always yields false with an explanatory rationale, never an error.
	Applies bool `json:"applies"`
	// Strength is the tier at which the criterion applies. Meaningful
	// only when Applies is true; evaluators may apply a criterion at a
	// strength other than its default (e.g. a downgraded PVS1).
	Strength Strength `json:"strength,omitempty"`
	// Rationale is a short human-readable explanation of the decision.
	Rationale string `json:"rationale"`
	// Score carries optional numeric evidence backing the decision, such
	// as a fused metascore or a phenotype similarity value.
	Score *float64 `json:"score,omitempty"`
	// RequiresManualReview flags outcomes where the automated decision
	// defers to expert review (e.g. unknown gene tolerance). The
	// criterion still does not apply; the flag is surfaced so a caller
	// can collect the missing judgment through its own channel.
	RequiresManualReview bool `json:"requires_manual_review,omitempty"`
}

// NotApplicable builds a non-applying outcome with the given rationale.
func NotApplicable(id CriterionID, rationale string) CriterionOutcome {
	return CriterionOutcome{ID: id, Applies: false, Rationale: rationale}
}

// Applied builds an applying outcome at the given strength.
func Applied(id CriterionID, strength Strength, rationale string) CriterionOutcome {
	return CriterionOutcome{ID: id, Applies: true, Strength: strength, Rationale: rationale}
}

// WithScore attaches numeric evidence to the outcome.
func (o CriterionOutcome) WithScore(score float64) CriterionOutcome {
	o.Score = &score
	return o
}
