// Package metascore fuses heterogeneous computational predictor scores
// into a single normalized 0-1 pathogenicity signal. Every registered
// predictor has a valid range and polarity; scores are normalized to
// damaging orientation, weighted by a consequence-class profile with
// optional gene-specific boosts, and compared against decision thresholds
// that shift with the variant's population allele frequency.
package metascore

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that Engine satisfies the port.
var _ ports.MetascoreProvider = (*Engine)(nil)

var validate = validator.New()

// MinPredictorsForComposite is the minimum number of contributing
// predictors required before a fused score is emitted at all. Below this
// floor the engine reports no score and the computational criteria fall
// back to majority voting.
const MinPredictorsForComposite = 3

// PredictorSpec registers one predictor's valid numeric range and
// polarity. Inverted predictors report lower values as more damaging.
type PredictorSpec struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max" validate:"gtefield=Min"`
	Inverted bool    `yaml:"inverted,omitempty"`
}

// Normalize maps a raw score to [0,1] in damaging orientation. A spec
// whose bounds coincide has no discriminative power and normalizes to
// 0.5. Raw values outside the registered range report ok=false and are
// treated as absent by the engine.
func (s PredictorSpec) Normalize(raw float64) (float64, bool) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}
	if raw < s.Min || raw > s.Max {
		return 0, false
	}
	if s.Min == s.Max {
		return 0.5, true
	}
	n := (raw - s.Min) / (s.Max - s.Min)
	if s.Inverted {
		n = 1 - n
	}
	return n, true
}

// GeneProfile boosts the weights of a gene's preferred predictors.
type GeneProfile struct {
	PreferredPredictors []string `yaml:"preferred_predictors" validate:"min=1"`
	WeightBoost         float64  `yaml:"weight_boost" validate:"gt=0"`
}

// thresholdPair is one frequency band's pathogenic/benign decision pair.
// The pathogenic floor must not sit below the benign ceiling; scores
// between the two bounds recommend neither signal.
type thresholdPair struct {
	Pathogenic float64 `yaml:"pathogenic" validate:"gt=0,lt=1,gtefield=Benign"`
	Benign     float64 `yaml:"benign" validate:"gt=0,lt=1"`
}

// Frequency bands. Band selection uses the record's maximum known allele
// frequency; records with no frequency data are treated as ultra-rare.
const (
	bandUltraRare    = "ultra_rare"
	bandVeryRare     = "very_rare"
	bandModerateRare = "moderate_rare"
	bandCommon       = "common"
)

// Config holds the data-driven tables of the engine. The zero value is
// unusable; start from DefaultConfig and overlay overrides.
type Config struct {
	// Predictors registers valid ranges and polarities.
	Predictors map[string]PredictorSpec `yaml:"predictors" validate:"min=1"`
	// ClassWeights maps consequence classes to predictor weight tables.
	ClassWeights map[domain.ConsequenceClass]map[string]float64 `yaml:"class_weights" validate:"min=1"`
	// GeneProfiles maps gene symbols to weight-boost profiles.
	GeneProfiles map[string]GeneProfile `yaml:"gene_profiles,omitempty"`
	// Thresholds maps consequence classes to per-band decision pairs.
	Thresholds map[domain.ConsequenceClass]map[string]thresholdPair `yaml:"thresholds" validate:"min=1"`
	// MinPredictors maps consequence classes to the predictor count
	// needed for a high-confidence composite.
	MinPredictors map[domain.ConsequenceClass]int `yaml:"min_predictors,omitempty"`
}

// Engine computes fused metascores. It is immutable after construction
// and safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an Engine after validating the configuration tables.
func New(cfg Config) (*Engine, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid metascore config: %w", err)
	}
	for name, spec := range cfg.Predictors {
		if err := validate.Struct(spec); err != nil {
			return nil, fmt.Errorf("invalid predictor spec %q: %w", name, err)
		}
	}
	for gene, profile := range cfg.GeneProfiles {
		if err := validate.Struct(profile); err != nil {
			return nil, fmt.Errorf("invalid gene profile %q: %w", gene, err)
		}
	}
	for class, bands := range cfg.Thresholds {
		for band, pair := range bands {
			if err := validate.Struct(pair); err != nil {
				return nil, fmt.Errorf("invalid threshold pair %s/%s: %w", class, band, err)
			}
		}
	}
	return &Engine{cfg: cfg}, nil
}

// NewDefault creates an Engine with the built-in tables.
func NewDefault() *Engine {
	e, err := New(DefaultConfig())
	if err != nil {
		// The built-in tables are validated by tests; a failure here is
		// a programming error.
		panic(err)
	}
	return e
}

// NewFromOverlay creates an Engine from the default tables merged with
// an overlay YAML file. Overlay entries replace defaults per key.
func NewFromOverlay(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metascore overlay %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse metascore overlay %s: %w", path, err)
	}

	cfg := DefaultConfig()
	for name, spec := range overlay.Predictors {
		cfg.Predictors[name] = spec
	}
	for class, weights := range overlay.ClassWeights {
		cfg.ClassWeights[class] = weights
	}
	for gene, profile := range overlay.GeneProfiles {
		if cfg.GeneProfiles == nil {
			cfg.GeneProfiles = make(map[string]GeneProfile)
		}
		cfg.GeneProfiles[strings.ToUpper(gene)] = profile
	}
	for class, bands := range overlay.Thresholds {
		cfg.Thresholds[class] = bands
	}
	for class, n := range overlay.MinPredictors {
		cfg.MinPredictors[class] = n
	}
	return New(cfg)
}

// frequencyBand classifies an allele frequency into one of the four
// rarity bands. Absent frequency counts as ultra-rare: a variant never
// observed in reference populations needs less computational support.
func frequencyBand(af *float64) string {
	switch {
	case af == nil || *af == 0:
		return bandUltraRare
	case *af <= 1e-5:
		return bandUltraRare
	case *af <= 1e-4:
		return bandVeryRare
	case *af <= 1e-3:
		return bandModerateRare
	default:
		return bandCommon
	}
}

// frequencyAdjustment nudges the fused score by band: already-rare
// variants get a small benefit of suspicion, common variants need a
// stronger computational signal.
func frequencyAdjustment(band string) float64 {
	switch band {
	case bandUltraRare:
		return -0.05
	case bandVeryRare:
		return -0.02
	case bandCommon:
		return 0.05
	default:
		return 0
	}
}

// Compute fuses the predictor scores on the record. It never errors:
// records with fewer than MinPredictorsForComposite usable scores yield
// a result with a nil score and no recommendation.
func (e *Engine) Compute(rec *domain.EvidenceRecord) domain.MetascoreResult {
	class := rec.Variant.Consequence
	weights, ok := e.cfg.ClassWeights[class]
	if !ok {
		weights = e.cfg.ClassWeights[domain.ConsequenceMissense]
	}

	var boost GeneProfile
	hasBoost := false
	if rec.Variant.Gene != "" {
		boost, hasBoost = e.cfg.GeneProfiles[strings.ToUpper(rec.Variant.Gene)]
	}

	contributions := make(map[string]domain.PredictorContribution)
	var weightedSum, totalWeight float64
	for name, raw := range rec.Predictors {
		weight, inProfile := weights[name]
		if !inProfile {
			continue
		}
		spec, registered := e.cfg.Predictors[name]
		if !registered {
			continue
		}
		normalized, usable := spec.Normalize(raw)
		if !usable {
			continue
		}
		if hasBoost && slices.Contains(boost.PreferredPredictors, name) {
			weight *= boost.WeightBoost
		}
		weightedSum += normalized * weight
		totalWeight += weight
		contributions[name] = domain.PredictorContribution{
			Raw:        raw,
			Normalized: normalized,
			Weight:     weight,
		}
	}

	band := frequencyBand(rec.Population.AlleleFrequency)
	pair := e.thresholds(class, band)

	result := domain.MetascoreResult{
		Recommended:         domain.SignalNone,
		PathogenicThreshold: pair.Pathogenic,
		BenignThreshold:     pair.Benign,
		FrequencyBand:       band,
		Contributions:       contributions,
		PredictorCount:      len(contributions),
	}

	if len(contributions) < MinPredictorsForComposite || totalWeight == 0 {
		return result
	}

	score := weightedSum / totalWeight
	score += frequencyAdjustment(band)
	score = clamp01(score)
	result.Score = &score

	switch {
	case score >= pair.Pathogenic:
		result.Recommended = domain.SignalPathogenic
	case score <= pair.Benign:
		result.Recommended = domain.SignalBenign
	}
	return result
}

// thresholds resolves the decision pair for a class and band, falling
// back to the missense table and then to a conservative default.
func (e *Engine) thresholds(class domain.ConsequenceClass, band string) thresholdPair {
	bands, ok := e.cfg.Thresholds[class]
	if !ok {
		bands, ok = e.cfg.Thresholds[domain.ConsequenceMissense]
		if !ok {
			return thresholdPair{Pathogenic: 0.6, Benign: 0.4}
		}
	}
	pair, ok := bands[band]
	if !ok {
		return thresholdPair{Pathogenic: 0.6, Benign: 0.4}
	}
	return pair
}

// MinPredictorsFor returns the per-class predictor floor for a
// high-confidence composite.
func (e *Engine) MinPredictorsFor(class domain.ConsequenceClass) int {
	if n, ok := e.cfg.MinPredictors[class]; ok {
		return n
	}
	return 5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
