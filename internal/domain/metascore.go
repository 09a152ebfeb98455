package domain

// MetascoreSignal is the criterion recommendation emitted by the fused
// computational score.
type MetascoreSignal string

// Metascore recommendations.
const (
	SignalPathogenic MetascoreSignal = "pathogenic_signal"
	SignalBenign     MetascoreSignal = "benign_signal"
	SignalNone       MetascoreSignal = "none"
)

// PredictorContribution records how one predictor entered the fused
// score, for transparency in reports and tests.
type PredictorContribution struct {
	// Raw is the score as supplied on the EvidenceRecord.
	Raw float64 `json:"raw"`
	// Normalized is the score mapped to [0,1] in damaging orientation.
	Normalized float64 `json:"normalized"`
	// Weight is the profile weight the predictor carried.
	Weight float64 `json:"weight"`
}

// MetascoreResult is the outcome of fusing the available computational
// predictor scores for one record.
type MetascoreResult struct {
	// Score is the fused 0-1 pathogenicity signal. Nil when no registered
	// predictor contributed; the engine never fabricates a score.
	Score *float64 `json:"score,omitempty"`
	// Recommended names the criterion the score supports, if any.
	Recommended MetascoreSignal `json:"recommended"`
	// PathogenicThreshold and BenignThreshold are the dynamic decision
	// thresholds the score was compared against.
	PathogenicThreshold float64 `json:"pathogenic_threshold"`
	BenignThreshold     float64 `json:"benign_threshold"`
	// FrequencyBand names the allele-frequency band that selected the
	// thresholds.
	FrequencyBand string `json:"frequency_band"`
	// Contributions maps predictor names to their normalized weighted
	// contributions.
	Contributions map[string]PredictorContribution `json:"contributions,omitempty"`
	// PredictorCount is the number of predictors that contributed.
	PredictorCount int `json:"predictor_count"`
}
