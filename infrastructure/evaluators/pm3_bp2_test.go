package evaluators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/variomics/varclass/internal/domain"
)

func phaseRecord(inheritance domain.InheritanceMode, inTrans, inCis bool) *domain.EvidenceRecord {
	rec := missenseRecord("CFTR")
	rec.Family.Inheritance = inheritance
	rec.External.InTransPathogenic = inTrans
	rec.External.InCisPathogenic = inCis
	return rec
}

func TestPM3Evaluator(t *testing.T) {
	ev := NewPM3Evaluator()

	t.Run("in trans with pathogenic in recessive disorder applies", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceRecessive, true, false), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthModerate, out.Strength)
	})

	t.Run("x-linked recessive also qualifies", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceXLinkedRecessive, true, false), domain.Guidelines2015)
		assert.True(t, out.Applies)
	})

	t.Run("in trans in a dominant disorder is not pathogenic evidence", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceDominant, true, false), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("unknown inheritance cannot be weighed", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceUnknown, true, false), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no phase observation", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceRecessive, false, false), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}

func TestBP2Evaluator(t *testing.T) {
	ev := NewBP2Evaluator()

	t.Run("in cis with pathogenic applies in any context", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceUnknown, false, true), domain.Guidelines2015)
		assert.True(t, out.Applies)
		assert.Equal(t, domain.StrengthSupporting, out.Strength)
	})

	t.Run("in trans with pathogenic in dominant disorder applies", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceDominant, true, false), domain.Guidelines2015)
		assert.True(t, out.Applies)
	})

	t.Run("in trans in a recessive disorder is not benign evidence", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceRecessive, true, false), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})

	t.Run("no phase observation", func(t *testing.T) {
		out := ev.Evaluate(phaseRecord(domain.InheritanceDominant, false, false), domain.Guidelines2015)
		assert.False(t, out.Applies)
	})
}
