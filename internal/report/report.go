// Package report renders classification results as plain-text clinical
// assessment reports.
package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/variomics/varclass/internal/domain"
)

const divider = "----------------------------------------------------------------------"

// Renderer formats classification results for human review. Numbers are
// formatted through a locale-aware printer so large population counts
// stay readable.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer creates a Renderer for the given locale tag. The zero
// tag renders with English formatting.
func NewRenderer(tag language.Tag) *Renderer {
	if tag == (language.Tag{}) {
		tag = language.English
	}
	return &Renderer{printer: message.NewPrinter(tag)}
}

// Render produces the full plain-text report for one assessment. The
// narrative argument is optional prose from the literature summarizer;
// empty means the section is omitted.
func (r *Renderer) Render(
	rec *domain.EvidenceRecord,
	result domain.ClassificationResult,
	narrative string,
) string {
	var b strings.Builder
	p := r.printer

	b.WriteString("VARIANT ASSESSMENT REPORT\n")
	b.WriteString(divider + "\n")
	p.Fprintf(&b, "Gene:            %s\n", rec.Variant.Gene)
	if rec.Variant.CDNANotation != "" {
		p.Fprintf(&b, "cDNA change:     %s\n", rec.Variant.CDNANotation)
	}
	if rec.Variant.ProteinNotation != "" {
		p.Fprintf(&b, "Protein change:  %s\n", rec.Variant.ProteinNotation)
	}
	p.Fprintf(&b, "Consequence:     %s\n", rec.Variant.Consequence)
	if rec.Variant.Chromosome != "" && rec.Variant.Position > 0 {
		p.Fprintf(&b, "Locus:           chr%s:%d %s>%s\n",
			rec.Variant.Chromosome, rec.Variant.Position, rec.Variant.Ref, rec.Variant.Alt)
	}

	b.WriteString(divider + "\n")
	p.Fprintf(&b, "Classification:  %s\n", result.Classification)
	p.Fprintf(&b, "Confidence:      %s\n", result.Confidence)
	p.Fprintf(&b, "Guidelines:      %s\n", result.Mode)
	if result.Metascore != nil {
		p.Fprintf(&b, "Metascore:       %.3f\n", *result.Metascore)
	}

	r.renderPopulation(&b, rec)
	r.renderCriteria(&b, result)
	r.renderConflicts(&b, result)

	if len(result.ManualReviewCriteria) > 0 {
		b.WriteString(divider + "\n")
		b.WriteString("MANUAL REVIEW REQUIRED\n")
		for _, id := range result.ManualReviewCriteria {
			p.Fprintf(&b, "  %s deferred to expert review\n", id)
		}
	}

	if narrative != "" {
		b.WriteString(divider + "\n")
		b.WriteString("NARRATIVE SUMMARY\n")
		b.WriteString(wrapText(narrative, 70) + "\n")
	}

	b.WriteString(divider + "\n")
	return b.String()
}

func (r *Renderer) renderPopulation(b *strings.Builder, rec *domain.EvidenceRecord) {
	p := r.printer
	if rec.Population.AlleleFrequency == nil && rec.Population.AlleleCount == nil {
		return
	}

	b.WriteString(divider + "\n")
	b.WriteString("POPULATION DATA\n")
	if rec.Population.AlleleFrequency != nil {
		p.Fprintf(b, "  Allele frequency:  %.6g\n", *rec.Population.AlleleFrequency)
	}
	if rec.Population.AlleleCount != nil && rec.Population.AlleleNumber != nil {
		p.Fprintf(b, "  Allele count:      %d / %d\n",
			*rec.Population.AlleleCount, *rec.Population.AlleleNumber)
	}
	if rec.Population.HomozygoteCount != nil {
		p.Fprintf(b, "  Homozygotes:       %d\n", *rec.Population.HomozygoteCount)
	}
}

func (r *Renderer) renderCriteria(b *strings.Builder, result domain.ClassificationResult) {
	p := r.printer

	b.WriteString(divider + "\n")
	p.Fprintf(b, "APPLIED CRITERIA (%d)\n", len(result.AppliedCriteria))
	if len(result.AppliedCriteria) == 0 {
		b.WriteString("  none\n")
		return
	}

	for _, outcome := range result.Outcomes {
		if !outcome.Applies {
			continue
		}
		p.Fprintf(b, "  %-5s %-12s %s\n", outcome.ID, outcome.Strength, outcome.Rationale)
	}

	t := result.Tallies
	p.Fprintf(b, "  Pathogenic tally: very_strong=%d strong=%d moderate=%d supporting=%d\n",
		t.Pathogenic.VeryStrong, t.Pathogenic.Strong, t.Pathogenic.Moderate, t.Pathogenic.Supporting)
	p.Fprintf(b, "  Benign tally:     stand_alone=%d strong=%d supporting=%d\n",
		t.Benign.StandAlone, t.Benign.Strong, t.Benign.Supporting)
}

func (r *Renderer) renderConflicts(b *strings.Builder, result domain.ClassificationResult) {
	if len(result.Conflicts) == 0 {
		return
	}

	b.WriteString(divider + "\n")
	b.WriteString("EVIDENCE CONFLICTS\n")
	for _, conflict := range result.Conflicts {
		r.printer.Fprintf(b, "  [%s] %s\n", conflict.Kind, conflict.Description)
	}
}

// wrapText folds prose onto lines no longer than width runes, breaking
// at spaces only.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
