package literature

import (
	"context"
	"fmt"
	"strings"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

const narrativeSystemPrompt = "You are a clinical genetics assistant. " +
	"Summarize the applied evidence criteria for a variant assessment in " +
	"plain prose suitable for a clinical report. Do not speculate beyond " +
	"the evidence provided and do not alter the stated classification."

// Summarizer turns a finished classification into a short prose
// narrative for the report. It is advisory only: a narrative failure
// never fails the assessment.
type Summarizer struct {
	client ports.NarrativeClient
}

// NewSummarizer creates a Summarizer backed by the given client.
func NewSummarizer(client ports.NarrativeClient) *Summarizer {
	return &Summarizer{client: client}
}

// Narrative generates a prose summary of the classification result.
func (s *Summarizer) Narrative(
	ctx context.Context,
	rec *domain.EvidenceRecord,
	result domain.ClassificationResult,
) (string, error) {
	prompt := BuildPrompt(rec, result)
	return s.client.Summarize(ctx, prompt, map[string]any{
		"system":      narrativeSystemPrompt,
		"temperature": 0.2,
	})
}

// BuildPrompt renders the evidence summary prompt sent to the narrative
// provider. The prompt contains only facts already present in the
// classification result.
func BuildPrompt(rec *domain.EvidenceRecord, result domain.ClassificationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Variant: %s %s (%s)\n",
		rec.Variant.Gene, rec.Variant.CDNANotation, rec.Variant.Consequence)
	if rec.Variant.ProteinNotation != "" {
		fmt.Fprintf(&b, "Protein change: %s\n", rec.Variant.ProteinNotation)
	}
	fmt.Fprintf(&b, "Classification: %s (confidence: %s, guidelines: %s)\n",
		result.Classification, result.Confidence, result.Mode)

	if len(result.AppliedCriteria) > 0 {
		b.WriteString("\nApplied criteria:\n")
		for _, outcome := range result.Outcomes {
			if !outcome.Applies {
				continue
			}
			fmt.Fprintf(&b, "- %s (%s): %s\n", outcome.ID, outcome.Strength, outcome.Rationale)
		}
	} else {
		b.WriteString("\nNo criteria applied.\n")
	}

	if len(result.Conflicts) > 0 {
		b.WriteString("\nEvidence conflicts:\n")
		for _, conflict := range result.Conflicts {
			fmt.Fprintf(&b, "- %s: %s\n", conflict.Kind, conflict.Description)
		}
	}

	b.WriteString("\nWrite a single-paragraph narrative summarizing this assessment.")
	return b.String()
}
