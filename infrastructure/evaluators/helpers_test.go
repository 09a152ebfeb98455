package evaluators

import (
	"github.com/variomics/varclass/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// stubMetascore returns a fixed result, letting the computational
// criterion tests pin down both the composite and the fallback paths
// without depending on the real fusion engine.
type stubMetascore struct {
	result domain.MetascoreResult
}

func (s stubMetascore) Compute(*domain.EvidenceRecord) domain.MetascoreResult {
	return s.result
}

// missenseRecord builds a minimal missense record in the given gene.
func missenseRecord(gene string) *domain.EvidenceRecord {
	return &domain.EvidenceRecord{
		Variant: domain.VariantIdentity{
			Gene:        gene,
			Consequence: domain.ConsequenceMissense,
		},
	}
}

// lofRecord builds a minimal nonsense record in the given gene.
func lofRecord(gene string) *domain.EvidenceRecord {
	return &domain.EvidenceRecord{
		Variant: domain.VariantIdentity{
			Gene:        gene,
			Consequence: domain.ConsequenceNonsense,
		},
	}
}
