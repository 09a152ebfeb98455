// Package genekb provides the curated per-gene knowledge consumed by the
// criterion evaluators: loss-of-function tolerance, gene-specific
// frequency thresholds, mutational-hotspot domain rules, missense
// constraint classes, and gene-phenotype associations. All lookups are
// resolved from in-memory tables built once at construction; the package
// performs no I/O after startup.
package genekb

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that KnowledgeBase satisfies the port.
var _ ports.GeneKnowledge = (*KnowledgeBase)(nil)

var validate = validator.New()

// DefaultThresholds are the allele-frequency cutoffs applied to genes
// without a curated profile.
var DefaultThresholds = domain.FrequencyThresholds{
	StandAlone: 0.05,
	Strong:     0.01,
	Rarity:     0.0001,
}

// domainRule describes one curated functional domain or mutational
// hotspot as a residue interval.
type domainRule struct {
	Name  string `yaml:"name" validate:"required"`
	Start int    `yaml:"start" validate:"gt=0"`
	End   int    `yaml:"end" validate:"gtfield=Start"`
}

// GeneProfile is the curated knowledge for a single gene. Zero-valued
// fields fall back to defaults at lookup time.
type GeneProfile struct {
	// Tolerance is the loss-of-function tolerance class.
	Tolerance domain.ToleranceClass `yaml:"tolerance,omitempty"`
	// Thresholds overrides the default frequency thresholds.
	Thresholds *domain.FrequencyThresholds `yaml:"thresholds,omitempty"`
	// Domains lists curated hotspot/functional-domain intervals.
	Domains []domainRule `yaml:"domains,omitempty"`
	// MissenseConstrained marks genes where missense is a common disease
	// mechanism and benign missense variation is rare.
	MissenseConstrained bool `yaml:"missense_constrained,omitempty"`
	// TruncatingOnly marks genes where only truncating variants are
	// known to cause disease.
	TruncatingOnly bool `yaml:"truncating_only,omitempty"`
	// Phenotypes lists the curated associated phenotype identifiers.
	Phenotypes []string `yaml:"phenotypes,omitempty"`
}

// KnowledgeBase holds the merged curated gene tables.
type KnowledgeBase struct {
	profiles map[string]GeneProfile
}

// residuePattern extracts the residue number from a protein notation
// such as "p.Arg1699Trp" or "p.R1699W".
var residuePattern = regexp.MustCompile(`p\.\(?[A-Za-z*]{1,3}(\d+)`)

// builtinProfiles seed the knowledge base with the curated genes the
// engine ships with. External overlays extend or override these.
func builtinProfiles() map[string]GeneProfile {
	brcaThresholds := &domain.FrequencyThresholds{StandAlone: 0.05, Strong: 0.01, Rarity: 0.0001}
	titinThresholds := &domain.FrequencyThresholds{StandAlone: 0.10, Strong: 0.05, Rarity: 0.001}

	return map[string]GeneProfile{
		"BRCA1": {
			Tolerance:  domain.ToleranceIntolerant,
			Thresholds: brcaThresholds,
			Domains: []domainRule{
				{Name: "RING", Start: 1, End: 109},
				{Name: "BRCT", Start: 1650, End: 1863},
			},
			Phenotypes: []string{"HP:0003002", "HP:0100615", "HP:0002664"},
		},
		"BRCA2": {
			Tolerance:  domain.ToleranceIntolerant,
			Thresholds: brcaThresholds,
			Domains: []domainRule{
				{Name: "DNA-binding", Start: 2481, End: 3186},
			},
			Phenotypes: []string{"HP:0003002", "HP:0100615", "HP:0002664"},
		},
		"TP53": {
			Tolerance: domain.ToleranceIntolerant,
			Domains: []domainRule{
				{Name: "DNA-binding", Start: 94, End: 312},
			},
			MissenseConstrained: true,
			Phenotypes:          []string{"HP:0002664", "HP:0100526", "HP:0012126"},
		},
		"MLH1": {
			Tolerance:  domain.ToleranceIntolerant,
			Phenotypes: []string{"HP:0003003", "HP:0002664"},
		},
		"MSH2": {
			Tolerance:  domain.ToleranceIntolerant,
			Phenotypes: []string{"HP:0003003", "HP:0002664"},
		},
		"PTEN": {
			Tolerance:           domain.ToleranceIntolerant,
			MissenseConstrained: true,
			Phenotypes:          []string{"HP:0002664", "HP:0000256", "HP:0001250"},
		},
		"RB1":   {Tolerance: domain.ToleranceIntolerant, TruncatingOnly: true},
		"VHL":   {Tolerance: domain.ToleranceIntolerant},
		"NF1":   {Tolerance: domain.ToleranceIntolerant},
		"APC":   {Tolerance: domain.ToleranceIntolerant, TruncatingOnly: true},
		"RUNX1": {Tolerance: domain.ToleranceIntolerant, MissenseConstrained: true},
		"KCNQ1": {MissenseConstrained: true},
		"SCN1A": {MissenseConstrained: true, Phenotypes: []string{"HP:0001250", "HP:0002069"}},
		"FBN1":  {MissenseConstrained: true},
		"TTN": {
			Tolerance:  domain.ToleranceTolerant,
			Thresholds: titinThresholds,
		},
		"MUC16": {
			Tolerance:  domain.ToleranceTolerant,
			Thresholds: titinThresholds,
		},
		"OBSCN": {
			Tolerance:  domain.ToleranceTolerant,
			Thresholds: titinThresholds,
		},
	}
}

// New builds a knowledge base from the built-in curated tables.
func New() *KnowledgeBase {
	return &KnowledgeBase{profiles: builtinProfiles()}
}

// NewFromOverlay builds a knowledge base from the built-in tables merged
// with an overlay YAML file mapping gene symbols to profiles. Overlay
// entries replace built-in entries wholesale.
func NewFromOverlay(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gene overlay %s: %w", path, err)
	}

	overlay := make(map[string]GeneProfile)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse gene overlay %s: %w", path, err)
	}

	kb := New()
	for gene, profile := range overlay {
		for _, d := range profile.Domains {
			if err := validate.Struct(d); err != nil {
				return nil, fmt.Errorf("invalid domain rule for gene %s: %w", gene, err)
			}
		}
		if profile.Thresholds != nil {
			if err := validate.Struct(profile.Thresholds); err != nil {
				return nil, fmt.Errorf("invalid thresholds for gene %s: %w", gene, err)
			}
			if profile.Thresholds.StandAlone < profile.Thresholds.Strong {
				return nil, fmt.Errorf("gene %s: stand-alone threshold must be >= strong threshold", gene)
			}
		}
		kb.profiles[strings.ToUpper(gene)] = profile
	}
	return kb, nil
}

// ToleranceClass reports the curated loss-of-function tolerance of the
// gene, or unknown for uncurated genes.
func (kb *KnowledgeBase) ToleranceClass(gene string) domain.ToleranceClass {
	profile, ok := kb.profiles[strings.ToUpper(gene)]
	if !ok || profile.Tolerance == "" {
		return domain.ToleranceUnknown
	}
	return profile.Tolerance
}

// FrequencyThresholds returns the gene's frequency thresholds, falling
// back to the defaults for uncurated genes.
func (kb *KnowledgeBase) FrequencyThresholds(gene string) domain.FrequencyThresholds {
	profile, ok := kb.profiles[strings.ToUpper(gene)]
	if !ok || profile.Thresholds == nil {
		return DefaultThresholds
	}
	return *profile.Thresholds
}

// InCriticalDomain reports whether the protein notation places the
// variant inside a curated hotspot or well-established functional domain
// of the gene. Unparseable notations report false.
func (kb *KnowledgeBase) InCriticalDomain(gene string, notation string) bool {
	profile, ok := kb.profiles[strings.ToUpper(gene)]
	if !ok || len(profile.Domains) == 0 {
		return false
	}

	m := residuePattern.FindStringSubmatch(notation)
	if m == nil {
		return false
	}
	residue, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}

	for _, d := range profile.Domains {
		if residue >= d.Start && residue <= d.End {
			return true
		}
	}
	return false
}

// MissenseConstrained reports whether missense variation is a common
// disease mechanism in the gene.
func (kb *KnowledgeBase) MissenseConstrained(gene string) bool {
	return kb.profiles[strings.ToUpper(gene)].MissenseConstrained
}

// TruncatingOnly reports whether only truncating variants are known to
// cause disease in the gene.
func (kb *KnowledgeBase) TruncatingOnly(gene string) bool {
	return kb.profiles[strings.ToUpper(gene)].TruncatingOnly
}

// PhenotypeTerms returns the curated phenotype identifiers for the gene.
func (kb *KnowledgeBase) PhenotypeTerms(gene string) []string {
	return kb.profiles[strings.ToUpper(gene)].Phenotypes
}

// Genes returns all curated gene symbols, for introspection and tests.
func (kb *KnowledgeBase) Genes() []string {
	genes := make([]string, 0, len(kb.profiles))
	for g := range kb.profiles {
		genes = append(genes, g)
	}
	return genes
}
