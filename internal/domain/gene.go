package domain

// ToleranceClass is the curated loss-of-function tolerance of a gene.
type ToleranceClass string

// Tolerance classes. Unknown genes defer null-variant criteria to manual
// review rather than guessing.
const (
	ToleranceUnknown    ToleranceClass = "unknown"
	ToleranceIntolerant ToleranceClass = "intolerant"
	ToleranceTolerant   ToleranceClass = "tolerant"
)

// FrequencyThresholds are the gene-specific allele-frequency cutoffs used
// by the population criteria. StandAlone is always greater than or equal
// to Strong; Rarity bounds the absent-or-rare criterion.
type FrequencyThresholds struct {
	// StandAlone is the frequency at or above which the stand-alone
	// benign criterion applies.
	StandAlone float64 `json:"stand_alone" yaml:"stand_alone" validate:"gt=0,lte=1"`
	// Strong is the frequency at or above which the too-frequent strong
	// benign criterion applies.
	Strong float64 `json:"strong" yaml:"strong" validate:"gt=0,lte=1"`
	// Rarity is the frequency below which the absent-or-rare moderate
	// pathogenic criterion applies.
	Rarity float64 `json:"rarity" yaml:"rarity" validate:"gt=0,lt=1"`
}
