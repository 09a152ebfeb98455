package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain-level validation failures. These occur only
// at the boundary where an EvidenceRecord or configuration is built;
// evaluators themselves never return errors for missing data.
var (
	// ErrNilRecord indicates a nil EvidenceRecord was passed for
	// validation or classification.
	ErrNilRecord = errors.New("evidence record must not be nil")

	// ErrEmptyGene indicates an EvidenceRecord without a gene symbol.
	ErrEmptyGene = errors.New("evidence record must specify a gene symbol")

	// ErrUnknownGuidelineMode indicates a guideline mode outside the
	// supported revisions.
	ErrUnknownGuidelineMode = errors.New("unsupported guideline mode")

	// ErrUnknownCriterion indicates a criterion ID outside the fixed set.
	ErrUnknownCriterion = errors.New("unknown criterion id")

	// ErrDuplicateEvaluator indicates two evaluators registered for the
	// same criterion.
	ErrDuplicateEvaluator = errors.New("duplicate evaluator registration")

	// ErrFrequencyOutOfRange indicates an allele frequency outside [0,1].
	ErrFrequencyOutOfRange = errors.New("allele frequency must be within [0,1]")
)

// RecordError provides context about an invalid EvidenceRecord field,
// wrapping the underlying cause for errors.Is/As inspection.
type RecordError struct {
	// Field identifies the offending record field.
	Field string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("evidence record field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *RecordError) Unwrap() error { return e.Err }

// NewRecordError creates a RecordError for the given field.
func NewRecordError(field string, err error) *RecordError {
	return &RecordError{Field: field, Err: err}
}

// ValidationError collects multiple field-level validation failures so a
// caller sees every problem with a record or configuration at once.
type ValidationError struct {
	// Entity names what was being validated.
	Entity string
	// Errors holds the individual failures.
	Errors []error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("validation failed for %s", e.Entity)
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Entity, strings.Join(msgs, "; "))
}

// AddError appends a field-level failure.
func (e *ValidationError) AddError(err error) {
	e.Errors = append(e.Errors, err)
}

// Unwrap exposes the collected failures for errors.Is/As inspection.
func (e *ValidationError) Unwrap() []error { return e.Errors }

// HasErrors reports whether any failures were collected.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates an empty ValidationError for the entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity}
}

// ValidateRecord performs the boundary checks on an EvidenceRecord that
// the engine relies on. Malformed records are the caller's responsibility;
// this is the only hard failure mode of the core.
func ValidateRecord(rec *EvidenceRecord) error {
	verr := NewValidationError("evidence record")

	if rec == nil {
		verr.AddError(ErrNilRecord)
		return verr
	}
	if rec.Variant.Gene == "" {
		verr.AddError(NewRecordError("variant.gene", ErrEmptyGene))
	}
	if rec.Population.AlleleFrequency != nil {
		if af := *rec.Population.AlleleFrequency; af < 0 || af > 1 {
			verr.AddError(NewRecordError("population.allele_frequency", ErrFrequencyOutOfRange))
		}
	}
	for source, af := range rec.Population.SourceFrequencies {
		if af < 0 || af > 1 {
			verr.AddError(NewRecordError("population.source_frequencies."+source, ErrFrequencyOutOfRange))
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
