package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variomics/varclass/infrastructure/genekb"
	"github.com/variomics/varclass/infrastructure/metascore"
	"github.com/variomics/varclass/infrastructure/phenotype"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

func newTestRegistry(t *testing.T) *EvaluatorRegistry {
	t.Helper()
	registry, err := NewEvaluatorRegistry(
		genekb.New(),
		metascore.NewDefault(),
		phenotype.New(phenotype.DefaultConfig()),
	)
	require.NoError(t, err)
	return registry
}

// fixedEvaluator stands in for a panel-specific evaluator variant.
type fixedEvaluator struct {
	id domain.CriterionID
}

func (f fixedEvaluator) ID() domain.CriterionID { return f.id }

func (f fixedEvaluator) Evaluate(*domain.EvidenceRecord, domain.GuidelineMode) domain.CriterionOutcome {
	return domain.Applied(f.id, domain.StrengthSupporting, "fixed")
}

func TestEvaluatorRegistry(t *testing.T) {
	t.Run("pre-registers every criterion", func(t *testing.T) {
		registry := newTestRegistry(t)
		assert.Equal(t, domain.AllCriteria, registry.SupportedCriteria())
	})

	t.Run("requires its collaborators", func(t *testing.T) {
		_, err := NewEvaluatorRegistry(nil, metascore.NewDefault(), phenotype.New(phenotype.DefaultConfig()))
		assert.Error(t, err)
	})

	t.Run("creates evaluators by criterion", func(t *testing.T) {
		registry := newTestRegistry(t)
		ev, err := registry.Create(domain.PVS1, nil)
		require.NoError(t, err)
		assert.Equal(t, domain.PVS1, ev.ID())
	})

	t.Run("rejects unknown criteria", func(t *testing.T) {
		registry := newTestRegistry(t)
		_, err := registry.Create("PX9", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownCriterion)
	})

	t.Run("create-all yields the canonical set", func(t *testing.T) {
		registry := newTestRegistry(t)
		set, err := registry.CreateAll()
		require.NoError(t, err)
		require.Len(t, set, len(domain.AllCriteria))
		for i, ev := range set {
			assert.Equal(t, domain.AllCriteria[i], ev.ID())
		}
	})

	t.Run("register overrides one factory", func(t *testing.T) {
		registry := newTestRegistry(t)
		err := registry.Register(domain.PP4, func(map[string]any) (ports.Evaluator, error) {
			return fixedEvaluator{id: domain.PP4}, nil
		})
		require.NoError(t, err)

		ev, err := registry.Create(domain.PP4, nil)
		require.NoError(t, err)
		out := ev.Evaluate(&domain.EvidenceRecord{}, domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, "fixed", out.Rationale)
	})

	t.Run("register rejects nil factories", func(t *testing.T) {
		registry := newTestRegistry(t)
		assert.Error(t, registry.Register(domain.PP4, nil))
	})

	t.Run("register rejects unknown criteria", func(t *testing.T) {
		registry := newTestRegistry(t)
		err := registry.Register("PX9", func(map[string]any) (ports.Evaluator, error) {
			return fixedEvaluator{id: "PX9"}, nil
		})
		assert.ErrorIs(t, err, domain.ErrUnknownCriterion)
	})
}
