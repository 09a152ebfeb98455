package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFisherExact(t *testing.T) {
	t.Run("strong enrichment yields small p-value", func(t *testing.T) {
		// 15 of 50 cases carry the variant, 2 of 1000 controls.
		result, err := FisherExact(15, 50, 2, 1000)
		require.NoError(t, err)

		assert.Less(t, result.PValue, 1e-6)
		assert.Greater(t, result.OddsRatio, 100.0)
		assert.Equal(t, 50, result.CasesTotal)
		assert.Equal(t, 1000, result.ControlsTotal)
	})

	t.Run("no enrichment yields large p-value", func(t *testing.T) {
		result, err := FisherExact(1, 100, 10, 1000)
		require.NoError(t, err)
		assert.Greater(t, result.PValue, 0.05)
	})

	t.Run("balanced table has odds ratio near one", func(t *testing.T) {
		result, err := FisherExact(10, 100, 100, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, result.OddsRatio, 0.01)
		assert.Greater(t, result.PValue, 0.4)
	})

	t.Run("known 2x2 table", func(t *testing.T) {
		// Classic tea-tasting table: a=3 b=1 c=1 d=3, one-sided p = 0.2429.
		result, err := FisherExact(3, 4, 1, 4)
		require.NoError(t, err)
		assert.InDelta(t, 0.2429, result.PValue, 0.001)
		assert.InDelta(t, 9.0, result.OddsRatio, 1e-9)
	})

	t.Run("empty control cell gives infinite odds ratio", func(t *testing.T) {
		result, err := FisherExact(5, 50, 0, 1000)
		require.NoError(t, err)
		assert.True(t, math.IsInf(result.OddsRatio, 1))
	})

	t.Run("empty case cell gives zero odds ratio", func(t *testing.T) {
		result, err := FisherExact(0, 50, 0, 1000)
		require.NoError(t, err)
		assert.Zero(t, result.OddsRatio)
		assert.InDelta(t, 1.0, result.PValue, 1e-9)
	})

	t.Run("p-value never exceeds one", func(t *testing.T) {
		result, err := FisherExact(0, 10, 5, 10)
		require.NoError(t, err)
		assert.LessOrEqual(t, result.PValue, 1.0)
	})

	t.Run("invalid sample sizes rejected", func(t *testing.T) {
		_, err := FisherExact(0, 0, 1, 10)
		assert.ErrorIs(t, err, ErrInvalidSampleSize)

		_, err = FisherExact(1, 10, 0, 0)
		assert.ErrorIs(t, err, ErrInvalidSampleSize)
	})

	t.Run("carriers exceeding totals rejected", func(t *testing.T) {
		_, err := FisherExact(11, 10, 1, 100)
		assert.ErrorIs(t, err, ErrInvalidCounts)

		_, err = FisherExact(-1, 10, 1, 100)
		assert.ErrorIs(t, err, ErrInvalidCounts)
	})
}

func TestAdequateSampleSize(t *testing.T) {
	tests := []struct {
		name     string
		cases    int
		controls int
		want     bool
	}{
		{"meets all minimums", 20, 100, true},
		{"too few cases", 19, 100, false},
		{"too few controls", 50, 49, false},
		{"ratio below threshold", 20, 200, false},
		{"large balanced study", 500, 2000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdequateSampleSize(tt.cases, tt.controls))
		})
	}
}

func TestSegregationLODScoring(t *testing.T) {
	t.Run("perfect co-segregation accumulates positive score", func(t *testing.T) {
		families := []FamilyObservation{
			{AffectedCarriers: 4, AffectedTotal: 4},
			{AffectedCarriers: 3, AffectedTotal: 3},
			{AffectedCarriers: 5, AffectedTotal: 5},
		}

		result := SegregationLOD(families)
		assert.InDelta(t, 3.6, result.LOD, 1e-9)
		assert.Equal(t, 3, result.InformativeFamilies)
		assert.True(t, result.Informative())
	})

	t.Run("non-segregation accumulates negative score", func(t *testing.T) {
		families := []FamilyObservation{
			{AffectedCarriers: 0, AffectedTotal: 2, UnaffectedCarriers: 3, UnaffectedTotal: 4},
			{AffectedCarriers: 0, AffectedTotal: 3, UnaffectedCarriers: 4, UnaffectedTotal: 5},
			{AffectedCarriers: 0, AffectedTotal: 1, UnaffectedCarriers: 2, UnaffectedTotal: 3},
		}

		result := SegregationLOD(families)
		assert.InDelta(t, -2.7, result.LOD, 1e-9)
		assert.True(t, result.Informative())
	})

	t.Run("mixed pattern scores net carriers at reduced weight", func(t *testing.T) {
		families := []FamilyObservation{
			{AffectedCarriers: 3, AffectedTotal: 4, UnaffectedCarriers: 1, UnaffectedTotal: 3},
		}

		result := SegregationLOD(families)
		require.Len(t, result.FamilyScores, 1)
		assert.InDelta(t, 0.3, result.FamilyScores[0], 1e-9)
	})

	t.Run("families without genotyped affected members are skipped", func(t *testing.T) {
		families := []FamilyObservation{
			{AffectedCarriers: 0, AffectedTotal: 0, UnaffectedCarriers: 2, UnaffectedTotal: 2},
			{AffectedCarriers: 2, AffectedTotal: 2},
		}

		result := SegregationLOD(families)
		assert.Equal(t, 1, result.InformativeFamilies)
		assert.False(t, result.Informative())
		assert.InDelta(t, 0.6, result.LOD, 1e-9)
	})

	t.Run("empty input is uninformative", func(t *testing.T) {
		result := SegregationLOD(nil)
		assert.Zero(t, result.LOD)
		assert.False(t, result.Informative())
	})
}
