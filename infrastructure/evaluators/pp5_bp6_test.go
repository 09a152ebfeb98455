package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variomics/varclass/internal/domain"
)

func assertionRecord(significance string, stars domain.ReviewConfidence, panel string) *domain.EvidenceRecord {
	rec := missenseRecord("BRCA1")
	rec.External.ClinicalSignificance = significance
	rec.External.ReviewStars = stars
	rec.External.SourcePanel = panel
	return rec
}

func TestPP5Evaluator(t *testing.T) {
	ev := NewPP5Evaluator()

	t.Run("multi-star pathogenic assertion applies", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("pathogenic", 3, ""), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("likely pathogenic also qualifies", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("likely_pathogenic", 2, ""), domain.Guidelines2015)
		assert.True(t, out.Applies)
	})

	t.Run("expert panel assertion qualifies regardless of stars", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("pathogenic", 0, "ClinGen"), domain.Guidelines2015)
		assert.True(t, out.Applies)
	})

	t.Run("single-star assertion is not reputable", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("pathogenic", 1, ""), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("stale assertion is rejected", func(t *testing.T) {
		rec := assertionRecord("pathogenic", 3, "ClinGen")
		rec.External.AssertionAgeYears = intPtr(7)
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("benign classification does not apply", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("benign", 3, ""), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("conflicting classification does not apply", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("conflicting: pathogenic and benign", 3, ""), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no external classification", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("BRCA1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}

func TestBP6Evaluator(t *testing.T) {
	ev := NewBP6Evaluator()

	t.Run("multi-star benign assertion applies", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("benign", 2, ""), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("expert panel benign assertion qualifies", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("likely_benign", 0, "ENIGMA"), domain.Guidelines2015)
		assert.True(t, out.Applies)
	})

	t.Run("pathogenic classification does not apply", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("pathogenic", 3, ""), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("single-star assertion is not reputable", func(t *testing.T) {
		out := ev.Evaluate(assertionRecord("benign", 1, ""), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no external classification", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("BRCA1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}
