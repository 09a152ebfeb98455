package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/infrastructure/evaluators"
	"github.com/variomics/varclass/infrastructure/genekb"
	"github.com/variomics/varclass/infrastructure/metascore"
	"github.com/variomics/varclass/infrastructure/phenotype"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

func floatPtr(v float64) *float64 { return &v }

// newTestEngine builds an engine over the standard evaluator set.
func newTestEngine(t *testing.T, cfg EngineConfig) *Engine {
	t.Helper()
	scores := metascore.NewDefault()
	set, err := evaluators.NewDefaultSet(genekb.New(), scores, phenotype.New(phenotype.DefaultConfig()))
	require.NoError(t, err)
	engine, err := NewEngine(cfg, set, scores)
	require.NoError(t, err)
	return engine
}

// truncatingRecord is a canonical pathogenic case: a rare frameshift in
// a loss-of-function intolerant gene.
func truncatingRecord() *domain.EvidenceRecord {
	return &domain.EvidenceRecord{
		Variant: domain.VariantIdentity{
			Gene:         "BRCA1",
			Consequence:  domain.ConsequenceFrameshift,
			CDNANotation: "c.68_69del",
		},
		Population: domain.PopulationEvidence{WellCovered: true},
		Predictors: map[string]float64{
			"cadd_phred": 33,
			"revel":      0.92,
			"gerp_pp":    5.5,
		},
	}
}

func TestNewEngine(t *testing.T) {
	scores := metascore.NewDefault()
	set, err := evaluators.NewDefaultSet(genekb.New(), scores, phenotype.New(phenotype.DefaultConfig()))
	require.NoError(t, err)

	t.Run("rejects unknown guideline mode", func(t *testing.T) {
		_, err := NewEngine(EngineConfig{GuidelineMode: "2010"}, set, scores)
		assert.ErrorIs(t, err, domain.ErrUnknownGuidelineMode)
	})

	t.Run("rejects empty evaluator set", func(t *testing.T) {
		_, err := NewEngine(EngineConfig{GuidelineMode: "2015"}, nil, scores)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate evaluator registrations", func(t *testing.T) {
		dup := append(append([]ports.Evaluator{}, set...), set[0])
		_, err := NewEngine(EngineConfig{GuidelineMode: "2015"}, dup, scores)
		assert.ErrorIs(t, err, domain.ErrDuplicateEvaluator)
	})

	t.Run("reports its mode", func(t *testing.T) {
		engine, err := NewEngine(EngineConfig{GuidelineMode: "2023"}, set, scores)
		require.NoError(t, err)
		assert.Equal(t, domain.Guidelines2023, engine.Mode())
	})
}

func TestClassifyTruncatingVariant(t *testing.T) {
	engine := newTestEngine(t, EngineConfig{GuidelineMode: "2015"})

	result, err := engine.Classify(context.Background(), truncatingRecord())
	require.NoError(t, err)

	assert.Equal(t, domain.ClassPathogenic, result.Classification)
	assert.Contains(t, result.AppliedCriteria, domain.PVS1)
	assert.Contains(t, result.AppliedCriteria, domain.PM2)
	assert.Len(t, result.Outcomes, len(domain.AllCriteria))
	assert.Empty(t, result.Conflicts)
}

func TestClassifySplitPredictorsStaysUncertain(t *testing.T) {
	engine := newTestEngine(t, EngineConfig{GuidelineMode: "2015"})

	// An evenly split computational consensus carries no evidence in
	// either direction: neither PP3 nor BP4 may fire, and with nothing
	// else on the record the variant stays of uncertain significance.
	rec := &domain.EvidenceRecord{
		Variant: domain.VariantIdentity{Gene: "GENE1", Consequence: domain.ConsequenceMissense},
		Predictors: map[string]float64{
			"metasvm":   1.0,
			"metalr":    0.0,
			"vest4":     1.0,
			"clinpred":  0.0,
			"esm1b":     1.0,
			"primateai": 0.0,
		},
	}

	result, err := engine.Classify(context.Background(), rec)
	require.NoError(t, err)

	assert.Equal(t, domain.ClassUncertain, result.Classification)
	assert.NotContains(t, result.AppliedCriteria, domain.PP3)
	assert.NotContains(t, result.AppliedCriteria, domain.BP4)
}

func TestClassifyParallelMatchesSequential(t *testing.T) {
	records := []*domain.EvidenceRecord{
		truncatingRecord(),
		{
			Variant:    domain.VariantIdentity{Gene: "TTN", Consequence: domain.ConsequenceMissense},
			Population: domain.PopulationEvidence{AlleleFrequency: floatPtr(0.02)},
		},
		{
			Variant: domain.VariantIdentity{Gene: "KCNQ1", Consequence: domain.ConsequenceSynonymous},
		},
	}

	sequential := newTestEngine(t, EngineConfig{GuidelineMode: "2023"})
	parallel := newTestEngine(t, EngineConfig{GuidelineMode: "2023", Parallel: true, MaxConcurrency: 4})

	for _, rec := range records {
		want, err := sequential.Classify(context.Background(), rec)
		require.NoError(t, err)
		got, err := parallel.Classify(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestClassifyValidatesRecord(t *testing.T) {
	engine := newTestEngine(t, EngineConfig{GuidelineMode: "2015"})

	rec := truncatingRecord()
	rec.Variant.Gene = ""
	_, err := engine.Classify(context.Background(), rec)
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestClassifyHonorsContext(t *testing.T) {
	engine := newTestEngine(t, EngineConfig{GuidelineMode: "2015"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine.Classify(ctx, truncatingRecord())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifySurfacesMetascore(t *testing.T) {
	engine := newTestEngine(t, EngineConfig{GuidelineMode: "2015"})

	result, err := engine.Classify(context.Background(), truncatingRecord())
	require.NoError(t, err)
	require.NotNil(t, result.Metascore)
	assert.GreaterOrEqual(t, *result.Metascore, 0.0)
	assert.LessOrEqual(t, *result.Metascore, 1.0)
}
