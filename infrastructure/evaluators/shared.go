// Package evaluators implements the 28 ACMG/AMP criterion evaluators.
// Every evaluator is a pure adapter over the domain model: it reads only
// the EvidenceRecord fields relevant to its criterion, never mutates the
// record, and reports non-applicability with a rationale when inputs are
// missing. Evaluators with external knowledge needs (gene curation,
// phenotype similarity, fused metascores) receive those collaborators at
// construction and use them synchronously.
package evaluators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance for evaluator configurations.
var validate = validator.New()

// Sentinel errors for evaluator construction. Evaluation itself never
// returns errors; missing data is a non-applying outcome.
var (
	// ErrNilGeneKnowledge indicates a missing gene knowledge dependency.
	ErrNilGeneKnowledge = errors.New("gene knowledge base must not be nil")
	// ErrNilMetascore indicates a missing metascore provider dependency.
	ErrNilMetascore = errors.New("metascore provider must not be nil")
	// ErrNilPhenotypeMatcher indicates a missing phenotype matcher.
	ErrNilPhenotypeMatcher = errors.New("phenotype matcher must not be nil")
)

// Rationales shared by evaluators when required inputs are absent.
const (
	rationaleNoFrequency  = "no population frequency data available"
	rationaleNoPredictors = "no usable computational predictor scores"
	rationaleNoFamily     = "no family or inheritance data available"
	rationaleNoPhenotype  = "no phenotype data available"
)
