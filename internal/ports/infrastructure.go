package ports

import (
	"context"
	"time"

	"github.com/variomics/varclass/internal/domain"
)

// GeneKnowledge exposes the curated per-gene facts the evaluators need:
// loss-of-function tolerance, frequency thresholds, domain rules, and
// associated phenotype terms. Implementations are expected to be fully
// resolved at startup; lookups must be synchronous and deterministic.
type GeneKnowledge interface {
	// ToleranceClass reports the curated loss-of-function tolerance of a
	// gene: intolerant, tolerant, or unknown.
	ToleranceClass(gene string) domain.ToleranceClass

	// FrequencyThresholds returns the stand-alone, strong, and rarity
	// allele-frequency thresholds for a gene, falling back to defaults
	// for genes without a profile.
	FrequencyThresholds(gene string) domain.FrequencyThresholds

	// InCriticalDomain reports whether a protein position falls inside a
	// curated mutational hotspot or well-established functional domain.
	InCriticalDomain(gene string, notation string) bool

	// MissenseConstrained reports whether missense variation is a common
	// mechanism of disease in the gene.
	MissenseConstrained(gene string) bool

	// TruncatingOnly reports whether only truncating variants are known
	// to cause disease in the gene.
	TruncatingOnly(gene string) bool

	// PhenotypeTerms returns the curated phenotype identifier set
	// associated with the gene. Empty when the gene is not curated.
	PhenotypeTerms(gene string) []string
}

// PhenotypeMatcher computes the weighted similarity between a patient's
// phenotype terms and a gene's curated associated terms.
type PhenotypeMatcher interface {
	// Similarity returns the weighted similarity in [0,1] and the number
	// of distinct terms in the union of both sets.
	Similarity(patientTerms, geneTerms []string) (score float64, unionSize int)
}

// NarrativeClient generates human-readable evidence narratives for
// reports. It sits strictly outside the classification path: narrative
// generation never influences criterion outcomes.
type NarrativeClient interface {
	// Summarize produces a narrative for the given prompt.
	Summarize(ctx context.Context, prompt string, options map[string]any) (string, error)

	// Model returns the model identifier used by this client.
	Model() string
}

// MetricsCollector records operational metrics for classification runs.
// Implementations integrate with Prometheus or compatible systems.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)
}
