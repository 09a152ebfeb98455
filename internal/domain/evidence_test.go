package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestConsequenceClassIsLossOfFunction(t *testing.T) {
	lof := []ConsequenceClass{
		ConsequenceNonsense, ConsequenceFrameshift, ConsequenceSpliceDonor,
		ConsequenceSpliceAcceptor, ConsequenceStartLost, ConsequenceStopLost,
	}
	for _, c := range lof {
		assert.True(t, c.IsLossOfFunction(), "expected %s to be loss of function", c)
	}

	nonLOF := []ConsequenceClass{
		ConsequenceMissense, ConsequenceSynonymous, ConsequenceIntronic,
		ConsequenceInframeIndel, ConsequenceOther,
	}
	for _, c := range nonLOF {
		assert.False(t, c.IsLossOfFunction(), "expected %s not to be loss of function", c)
	}
}

func TestPopulationEvidenceMaxFrequency(t *testing.T) {
	tests := []struct {
		name      string
		pop       PopulationEvidence
		want      float64
		wantFound bool
	}{
		{
			name:      "no data",
			pop:       PopulationEvidence{},
			wantFound: false,
		},
		{
			name:      "popmax only",
			pop:       PopulationEvidence{AlleleFrequency: floatPtr(0.001)},
			want:      0.001,
			wantFound: true,
		},
		{
			name: "source frequency exceeds popmax",
			pop: PopulationEvidence{
				AlleleFrequency:   floatPtr(0.001),
				SourceFrequencies: map[string]float64{"gnomad_eas": 0.02},
			},
			want:      0.02,
			wantFound: true,
		},
		{
			name: "observed zero is still found",
			pop: PopulationEvidence{
				AlleleFrequency: floatPtr(0),
				WellCovered:     true,
			},
			want:      0,
			wantFound: true,
		},
		{
			name: "sources only",
			pop: PopulationEvidence{
				SourceFrequencies: map[string]float64{"gnomad_nfe": 0.0004, "gnomad_afr": 0.0001},
			},
			want:      0.0004,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tt.pop.MaxFrequency()
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestEvidenceRecordMaxSpliceScore(t *testing.T) {
	rec := &EvidenceRecord{
		Predictors: map[string]float64{
			"spliceai_ag": 0.1,
			"spliceai_dl": 0.7,
			"cadd_phred":  25,
		},
	}

	score, found := rec.MaxSpliceScore()
	require.True(t, found)
	assert.InDelta(t, 0.7, score, 1e-12)

	empty := &EvidenceRecord{Predictors: map[string]float64{"revel": 0.9}}
	_, found = empty.MaxSpliceScore()
	assert.False(t, found)
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		rec := &EvidenceRecord{
			Variant:    VariantIdentity{Gene: "BRCA1", Consequence: ConsequenceMissense},
			Population: PopulationEvidence{AlleleFrequency: floatPtr(0.0001)},
		}
		assert.NoError(t, ValidateRecord(rec))
	})

	t.Run("nil record fails without panicking", func(t *testing.T) {
		err := ValidateRecord(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNilRecord)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("missing gene fails", func(t *testing.T) {
		rec := &EvidenceRecord{}
		err := ValidateRecord(rec)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyGene)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Errors, 1)
	})

	t.Run("frequency above one fails", func(t *testing.T) {
		rec := &EvidenceRecord{
			Variant:    VariantIdentity{Gene: "TP53"},
			Population: PopulationEvidence{AlleleFrequency: floatPtr(1.5)},
		}
		assert.ErrorIs(t, ValidateRecord(rec), ErrFrequencyOutOfRange)
	})

	t.Run("negative source frequency fails", func(t *testing.T) {
		rec := &EvidenceRecord{
			Variant: VariantIdentity{Gene: "TP53"},
			Population: PopulationEvidence{
				SourceFrequencies: map[string]float64{"gnomad_nfe": -0.1},
			},
		}
		assert.ErrorIs(t, ValidateRecord(rec), ErrFrequencyOutOfRange)
	})

	t.Run("multiple failures are collected", func(t *testing.T) {
		rec := &EvidenceRecord{
			Population: PopulationEvidence{AlleleFrequency: floatPtr(2)},
		}
		err := ValidateRecord(rec)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Errors, 2)
	})
}

func TestCriterionPolarity(t *testing.T) {
	assert.Equal(t, PolarityPathogenic, PVS1.Polarity())
	assert.Equal(t, PolarityPathogenic, PP5.Polarity())
	assert.Equal(t, PolarityBenign, BA1.Polarity())
	assert.Equal(t, PolarityBenign, BP7.Polarity())
}

func TestAllCriteriaComplete(t *testing.T) {
	require.Len(t, AllCriteria, 28)

	seen := make(map[CriterionID]struct{}, len(AllCriteria))
	pathogenic, benign := 0, 0
	for _, id := range AllCriteria {
		_, dup := seen[id]
		require.False(t, dup, "duplicate criterion %s", id)
		seen[id] = struct{}{}
		if id.Polarity() == PolarityPathogenic {
			pathogenic++
		} else {
			benign++
		}
	}
	assert.Equal(t, 16, pathogenic)
	assert.Equal(t, 12, benign)
}

func TestErrorUnwrapping(t *testing.T) {
	inner := ErrEmptyGene
	recErr := NewRecordError("variant.gene", inner)
	assert.ErrorIs(t, recErr, ErrEmptyGene)
	assert.Contains(t, recErr.Error(), "variant.gene")
}
