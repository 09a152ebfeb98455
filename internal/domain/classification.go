package domain

// Classification is one of the five standardized pathogenicity categories.
type Classification string

// The five possible classifications.
const (
	ClassPathogenic       Classification = "Pathogenic"
	ClassLikelyPathogenic Classification = "Likely Pathogenic"
	ClassUncertain        Classification = "Uncertain Significance"
	ClassLikelyBenign     Classification = "Likely Benign"
	ClassBenign           Classification = "Benign"
)

// Confidence is the ordered confidence grade attached to a classification.
type Confidence string

// Confidence grades, strongest first. ConfidenceNotApplicable is used for
// Uncertain Significance, where confidence has no meaning.
const (
	ConfidenceHigh          Confidence = "high"
	ConfidenceMedium        Confidence = "medium"
	ConfidenceLow           Confidence = "low"
	ConfidenceVeryLow       Confidence = "very_low"
	ConfidenceNotApplicable Confidence = "not_applicable"
)

// PathogenicTally counts applied pathogenic criteria per strength tier.
type PathogenicTally struct {
	VeryStrong int `json:"very_strong"`
	Strong     int `json:"strong"`
	Moderate   int `json:"moderate"`
	Supporting int `json:"supporting"`
}

// Total returns the number of applied pathogenic criteria.
func (t PathogenicTally) Total() int {
	return t.VeryStrong + t.Strong + t.Moderate + t.Supporting
}

// BenignTally counts applied benign criteria per strength tier.
type BenignTally struct {
	StandAlone int `json:"stand_alone"`
	Strong     int `json:"strong"`
	Supporting int `json:"supporting"`
}

// Total returns the number of applied benign criteria.
func (t BenignTally) Total() int {
	return t.StandAlone + t.Strong + t.Supporting
}

// Tallies groups the per-polarity strength-tier counts that drive the
// combination rule table.
type Tallies struct {
	Pathogenic PathogenicTally `json:"pathogenic"`
	Benign     BenignTally     `json:"benign"`
}

// ConflictKind names a recognized contradictory-evidence pattern.
type ConflictKind string

// Recognized conflict kinds.
const (
	// ConflictMixedPolarity is raised whenever criteria of both
	// polarities apply simultaneously.
	ConflictMixedPolarity ConflictKind = "mixed_polarity"
	// ConflictStandAloneOverride is raised when stand-alone benign
	// evidence coexists with any pathogenic evidence.
	ConflictStandAloneOverride ConflictKind = "stand_alone_override"
	// ConflictVeryStrongOpposed is raised when very-strong pathogenic
	// evidence coexists with any benign evidence.
	ConflictVeryStrongOpposed ConflictKind = "very_strong_opposed"
)

// Conflict records one detected contradictory-evidence pattern. Conflicts
// never block classification; they are surfaced for the caller to flag.
type Conflict struct {
	Kind ConflictKind `json:"kind"`
	// Pathogenic and Benign list the criterion IDs on each side of the
	// contradiction.
	Pathogenic []CriterionID `json:"pathogenic"`
	Benign     []CriterionID `json:"benign"`
	// Description is a short human-readable summary.
	Description string `json:"description"`
}

// ClassificationResult is the complete output of one classification pass.
type ClassificationResult struct {
	// Classification is the final pathogenicity category.
	Classification Classification `json:"classification"`
	// Confidence grades how well-supported the classification is.
	Confidence Confidence `json:"confidence"`
	// Mode is the guideline revision the result was computed under.
	Mode GuidelineMode `json:"guideline_mode"`
	// Tallies are the strength-tier counts the rule table matched against.
	Tallies Tallies `json:"tallies"`
	// AppliedCriteria lists the IDs of all applying criteria in canonical
	// order.
	AppliedCriteria []CriterionID `json:"applied_criteria"`
	// Conflicts lists detected contradictory-evidence patterns.
	Conflicts []Conflict `json:"conflicts,omitempty"`
	// Metascore is the fused computational score when one was computed.
	Metascore *float64 `json:"metascore,omitempty"`
	// Outcomes holds every criterion outcome, applying or not, in
	// canonical order.
	Outcomes []CriterionOutcome `json:"outcomes"`
	// ManualReviewCriteria lists criteria that deferred to expert review.
	ManualReviewCriteria []CriterionID `json:"manual_review_criteria,omitempty"`
}
