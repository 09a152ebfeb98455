package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/infrastructure/genekb"
	"github.com/variomics/varclass/internal/domain"
)

func TestPP2Evaluator(t *testing.T) {
	_, err := NewPP2Evaluator(nil)
	assert.ErrorIs(t, err, ErrNilGeneKnowledge)

	ev, err := NewPP2Evaluator(genekb.New())
	require.NoError(t, err)

	t.Run("missense in a constrained gene applies", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("TP53"), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("missense in an unconstrained gene does not apply", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("BRCA1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("non-missense variants are out of scope", func(t *testing.T) {
		out := ev.Evaluate(lofRecord("TP53"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}

func TestBP1Evaluator(t *testing.T) {
	_, err := NewBP1Evaluator(nil)
	assert.ErrorIs(t, err, ErrNilGeneKnowledge)

	ev, err := NewBP1Evaluator(genekb.New())
	require.NoError(t, err)

	t.Run("missense in a truncating-only gene applies", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("RB1"), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("missense where missense causes disease does not apply", func(t *testing.T) {
		out := ev.Evaluate(missenseRecord("TP53"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("non-missense variants are out of scope", func(t *testing.T) {
		out := ev.Evaluate(lofRecord("RB1"), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}
