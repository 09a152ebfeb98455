package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/infrastructure/genekb"
	"github.com/variomics/varclass/infrastructure/phenotype"
	"github.com/variomics/varclass/internal/domain"
)

func phenotypeRecord(gene string, terms ...string) *domain.EvidenceRecord {
	rec := missenseRecord(gene)
	rec.Phenotype.HPOTerms = terms
	return rec
}

func TestPP4Evaluator(t *testing.T) {
	kb := genekb.New()
	matcher := phenotype.New(phenotype.DefaultConfig())

	_, err := NewPP4Evaluator(nil, matcher)
	assert.ErrorIs(t, err, ErrNilGeneKnowledge)
	_, err = NewPP4Evaluator(kb, nil)
	assert.ErrorIs(t, err, ErrNilPhenotypeMatcher)

	ev, err := NewPP4Evaluator(kb, matcher)
	require.NoError(t, err)

	t.Run("exact phenotype match applies at moderate", func(t *testing.T) {
		rec := phenotypeRecord("BRCA1", "HP:0003002", "HP:0100615", "HP:0002664")
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthModerate, out.Strength)
		require.NotNil(t, out.Score)
		assert.InDelta(t, 1.0, *out.Score, 1e-9)
	})

	t.Run("precomputed similarity selects the supporting tier", func(t *testing.T) {
		rec := phenotypeRecord("BRCA1", "HP:0003002", "HP:0001250")
		rec.Phenotype.SimilarityScore = floatPtr(0.6)
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("unrelated phenotype does not apply", func(t *testing.T) {
		rec := phenotypeRecord("BRCA1", "HP:0001250", "HP:0002069")
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no patient phenotype yields nothing", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("BRCA1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("uncurated gene yields nothing", func(t *testing.T) {
		rec := phenotypeRecord("GENE_NOBODY_CURATED", "HP:0003002", "HP:0100615", "HP:0002664")
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("sparse term sets are guarded even with a precomputed score", func(t *testing.T) {
		rec := phenotypeRecord("GENE_NOBODY_CURATED", "HP:0003002")
		rec.Phenotype.SimilarityScore = floatPtr(0.95)
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
		assert.Contains(t, out.Rationale, "phenotype terms")
	})
}

func TestBP5Evaluator(t *testing.T) {
	kb := genekb.New()
	matcher := phenotype.New(phenotype.DefaultConfig())

	_, err := NewBP5Evaluator(nil, matcher)
	assert.ErrorIs(t, err, ErrNilGeneKnowledge)
	_, err = NewBP5Evaluator(kb, nil)
	assert.ErrorIs(t, err, ErrNilPhenotypeMatcher)

	ev, err := NewBP5Evaluator(kb, matcher)
	require.NoError(t, err)

	t.Run("inconsistent phenotype applies at supporting", func(t *testing.T) {
		rec := phenotypeRecord("BRCA1", "HP:0001250", "HP:0002069")
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("matching phenotype does not apply", func(t *testing.T) {
		rec := phenotypeRecord("BRCA1", "HP:0003002", "HP:0100615", "HP:0002664")
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no patient phenotype yields nothing", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("BRCA1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}
