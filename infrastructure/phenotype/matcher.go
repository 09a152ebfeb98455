// Package phenotype computes the weighted similarity between a patient's
// reported phenotype terms and a gene's curated associated terms. It is
// a fully offline matcher: free-text descriptions are normalized to
// standard identifiers through a local synonym table with fuzzy
// fallback, then compared by weighted Jaccard similarity in which
// low-information terms are down-weighted so that a single generic term
// cannot alone drive a phenotype-match criterion.
package phenotype

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that Matcher satisfies the port.
var _ ports.PhenotypeMatcher = (*Matcher)(nil)

// LowInformationWeight is the weight carried by generic, low-information
// phenotype terms in the similarity computation.
const LowInformationWeight = 0.3

// fuzzyThreshold is the minimum normalized similarity for a free-text
// description to match a synonym entry.
const fuzzyThreshold = 0.85

// hpoPattern matches standardized phenotype identifiers.
var hpoPattern = regexp.MustCompile(`^HP:\d{7}$`)

// lowInformationTerms are identifiers too generic to discriminate
// between gene-disease associations on their own.
var lowInformationTerms = map[string]struct{}{
	"HP:0002664": {}, // Neoplasm
	"HP:0000118": {}, // Phenotypic abnormality
	"HP:0000001": {}, // All
	"HP:0012823": {}, // Clinical modifier
}

// defaultSynonyms maps lower-case free-text phenotype descriptions to
// standardized identifiers. The table is intentionally small; callers
// can extend it at construction.
var defaultSynonyms = map[string]string{
	"breast cancer":           "HP:0003002",
	"breast carcinoma":        "HP:0003002",
	"ovarian cancer":          "HP:0100615",
	"ovarian neoplasm":        "HP:0100615",
	"colorectal cancer":       "HP:0003003",
	"colon cancer":            "HP:0003003",
	"seizure":                 "HP:0001250",
	"seizures":                "HP:0001250",
	"epilepsy":                "HP:0001250",
	"intellectual disability": "HP:0001249",
	"developmental delay":     "HP:0001263",
	"macrocephaly":            "HP:0000256",
	"cancer":                  "HP:0002664",
	"tumor":                   "HP:0002664",
	"cardiomyopathy":          "HP:0001638",
	"hearing loss":            "HP:0000365",
	"sarcoma":                 "HP:0100242",
	"prostate cancer":         "HP:0012125",
}

// Config controls matcher behavior.
type Config struct {
	// LowInfoWeight is the weight assigned to low-information terms.
	LowInfoWeight float64 `yaml:"low_info_weight" validate:"gte=0,lte=1"`
	// ExtraSynonyms extends the free-text synonym table.
	ExtraSynonyms map[string]string `yaml:"extra_synonyms,omitempty"`
}

// DefaultConfig returns the standard matcher configuration.
func DefaultConfig() Config {
	return Config{LowInfoWeight: LowInformationWeight}
}

// Matcher normalizes phenotype terms and scores weighted set similarity.
type Matcher struct {
	lowInfoWeight float64
	synonyms      map[string]string
}

// New creates a Matcher with the given configuration.
func New(cfg Config) *Matcher {
	synonyms := make(map[string]string, len(defaultSynonyms)+len(cfg.ExtraSynonyms))
	for k, v := range defaultSynonyms {
		synonyms[k] = v
	}
	for k, v := range cfg.ExtraSynonyms {
		synonyms[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &Matcher{lowInfoWeight: cfg.LowInfoWeight, synonyms: synonyms}
}

// Normalize maps a term to a standardized identifier. Identifiers pass
// through unchanged; free text is looked up in the synonym table, first
// exactly, then by closest fuzzy match above the similarity floor.
// Unmappable text is returned with a "TEXT:" prefix so it still
// participates in similarity at reduced weight.
func (m *Matcher) Normalize(term string) string {
	trimmed := strings.TrimSpace(term)
	if hpoPattern.MatchString(trimmed) {
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	if id, ok := m.synonyms[lower]; ok {
		return id
	}

	// Fuzzy fallback over the synonym keys. Terms are short, so a linear
	// scan is fine.
	bestID := ""
	bestScore := 0.0
	for key, id := range m.synonyms {
		score := similarity(lower, key)
		if score > bestScore {
			bestScore = score
			bestID = id
		}
	}
	if bestScore >= fuzzyThreshold {
		return bestID
	}
	return "TEXT:" + lower
}

// NormalizeAll maps a mixed list of identifiers and free text to a
// deduplicated set of normalized terms.
func (m *Matcher) NormalizeAll(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) == "" {
			continue
		}
		n := m.Normalize(t)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Similarity returns the weighted Jaccard similarity between the two
// term sets and the size of their union. Low-information identifiers and
// unmapped text terms carry reduced weight in both numerator and
// denominator.
func (m *Matcher) Similarity(patientTerms, geneTerms []string) (float64, int) {
	a := toSet(m.NormalizeAll(patientTerms))
	b := toSet(m.NormalizeAll(geneTerms))

	union := make(map[string]struct{}, len(a)+len(b))
	for t := range a {
		union[t] = struct{}{}
	}
	for t := range b {
		union[t] = struct{}{}
	}
	if len(union) == 0 {
		return 0, 0
	}

	var interWeight, unionWeight float64
	for t := range union {
		w := m.termWeight(t)
		unionWeight += w
		if _, inA := a[t]; inA {
			if _, inB := b[t]; inB {
				interWeight += w
			}
		}
	}
	if unionWeight == 0 {
		return 0, len(union)
	}

	sim := interWeight / unionWeight
	if sim > 1 {
		sim = 1
	}
	return sim, len(union)
}

func (m *Matcher) termWeight(term string) float64 {
	if strings.HasPrefix(term, "TEXT:") {
		return m.lowInfoWeight
	}
	if _, generic := lowInformationTerms[term]; generic {
		return m.lowInfoWeight
	}
	return 1.0
}

func toSet(terms []string) map[string]struct{} {
	s := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

// similarity converts Levenshtein distance to a normalized similarity in
// [0,1]. The distance operates on runes, so rune count bounds it.
func similarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(s1, s2)
	maxLen := utf8.RuneCountInString(s1)
	if n := utf8.RuneCountInString(s2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
