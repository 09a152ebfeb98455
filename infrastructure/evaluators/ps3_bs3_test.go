package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variomics/varclass/internal/domain"
)

func functionalRecord(outcome domain.FunctionalOutcome, validated bool) *domain.EvidenceRecord {
	rec := missenseRecord("BRCA1")
	rec.Functional.Outcome = outcome
	rec.Functional.AssayValidated = validated
	return rec
}

func TestPS3Evaluator(t *testing.T) {
	ev := NewPS3Evaluator()

	tests := []struct {
		name      string
		outcome   domain.FunctionalOutcome
		validated bool
		applies   bool
		strength  domain.Strength
	}{
		{name: "validated damaging study is strong", outcome: domain.FunctionalDamaging, validated: true, applies: true, strength: domain.StrengthStrong},
		{name: "unvalidated damaging study is downgraded to supporting", outcome: domain.FunctionalDamaging, applies: true, strength: domain.StrengthSupporting},
		{name: "benign result does not apply", outcome: domain.FunctionalBenign, validated: true},
		{name: "inconclusive studies do not apply", outcome: domain.FunctionalInconclusive, validated: true},
		{name: "no studies performed", outcome: domain.FunctionalNotPerformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ev.Evaluate(functionalRecord(tt.outcome, tt.validated), domain.Guidelines2015)
			assert.Equal(t, tt.applies, out.Applies)
			if tt.applies {
				assert.Equal(t, tt.strength, out.Strength)
			}
		})
	}
}

func TestBS3Evaluator(t *testing.T) {
	ev := NewBS3Evaluator()

	tests := []struct {
		name      string
		outcome   domain.FunctionalOutcome
		validated bool
		applies   bool
		strength  domain.Strength
	}{
		{name: "validated benign study is strong", outcome: domain.FunctionalBenign, validated: true, applies: true, strength: domain.StrengthStrong},
		{name: "unvalidated benign study is downgraded to supporting", outcome: domain.FunctionalBenign, applies: true, strength: domain.StrengthSupporting},
		{name: "damaging result does not apply", outcome: domain.FunctionalDamaging, validated: true},
		{name: "inconclusive studies do not apply", outcome: domain.FunctionalInconclusive, validated: true},
		{name: "no studies performed", outcome: domain.FunctionalNotPerformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ev.Evaluate(functionalRecord(tt.outcome, tt.validated), domain.Guidelines2015)
			assert.Equal(t, tt.applies, out.Applies)
			if tt.applies {
				assert.Equal(t, tt.strength, out.Strength)
			}
		})
	}
}
