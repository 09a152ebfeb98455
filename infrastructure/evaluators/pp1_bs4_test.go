package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/internal/domain"
)

// familyRecord repeats the same segregation observation across n
// families.
func familyRecord(n int, obs domain.SegregationFamily) *domain.EvidenceRecord {
	rec := missenseRecord("MYH7")
	rec.Family.Families = make([]domain.SegregationFamily, n)
	for i := range rec.Family.Families {
		rec.Family.Families[i] = obs
	}
	return rec
}

func TestPP1Evaluator(t *testing.T) {
	ev := NewPP1Evaluator()

	t.Run("no family data yields nothing", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("MYH7"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("too few informative families yields nothing", func(t *testing.T) {
		rec := familyRecord(2, domain.SegregationFamily{AffectedCarriers: 4, AffectedTotal: 4})
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("strong co-segregation under 2015 grades moderate under 2023", func(t *testing.T) {
		// 4 perfectly co-segregating families, 3 carriers each: LOD 3.6.
		rec := familyRecord(4, domain.SegregationFamily{AffectedCarriers: 3, AffectedTotal: 3})

		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthStrong, out.Strength)
		require.NotNil(t, out.Score)
		assert.InDelta(t, 3.6, *out.Score, 1e-9)

		out = ev.Evaluate(rec, domain.Guidelines2023)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthModerate, out.Strength)
	})

	t.Run("modest co-segregation grades supporting", func(t *testing.T) {
		// 3 families, 2 carriers each: LOD 1.8.
		rec := familyRecord(3, domain.SegregationFamily{AffectedCarriers: 2, AffectedTotal: 2})
		for _, mode := range []domain.GuidelineMode{domain.Guidelines2015, domain.Guidelines2023} {
			out := ev.Evaluate(rec, mode)
			assert.True(t, out.Applies, "mode %s", mode)
			assert.Equal(t, domain.StrengthSupporting, out.Strength)
		}
	})

	t.Run("inconclusive segregation carries the score without applying", func(t *testing.T) {
		// 3 families, 1 carrier each: LOD 0.9.
		rec := familyRecord(3, domain.SegregationFamily{AffectedCarriers: 1, AffectedTotal: 2})
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
		require.NotNil(t, out.Score)
		assert.InDelta(t, 0.9, *out.Score, 1e-9)
	})
}

func TestBS4Evaluator(t *testing.T) {
	ev := NewBS4Evaluator()

	t.Run("no family data yields nothing", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("MYH7"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("clear non-segregation applies under both revisions", func(t *testing.T) {
		// 3 families with 3 unaffected carriers each: LOD -2.7.
		rec := familyRecord(3, domain.SegregationFamily{
			AffectedTotal: 2, UnaffectedCarriers: 3, UnaffectedTotal: 3,
		})
		for _, mode := range []domain.GuidelineMode{domain.Guidelines2015, domain.Guidelines2023} {
			out := ev.Evaluate(rec, mode)
			assert.True(t, out.Applies, "mode %s", mode)
			assert.Equal(t, domain.StrengthStrong, out.Strength)
		}
	})

	t.Run("2023 revision demands stronger non-segregation", func(t *testing.T) {
		// 3 families with 2 unaffected carriers each: LOD -1.8.
		rec := familyRecord(3, domain.SegregationFamily{
			AffectedTotal: 2, UnaffectedCarriers: 2, UnaffectedTotal: 2,
		})

		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.True(t, out.Applies)

		out = ev.Evaluate(rec, domain.Guidelines2023)
		assert.False(t, out.Applies)
	})

	t.Run("positive segregation is not benign evidence", func(t *testing.T) {
		rec := familyRecord(3, domain.SegregationFamily{AffectedCarriers: 3, AffectedTotal: 3})
		out := ev.Evaluate(rec, domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}
