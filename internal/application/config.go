// Package application orchestrates classification runs: it assembles
// the evaluator set, fans evaluations out, and combines outcomes into a
// final classification. Configuration is declarative YAML validated with
// struct tags.
package application

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// EngineConfig controls one classification engine instance.
type EngineConfig struct {
	// GuidelineMode selects the combination-rule revision.
	GuidelineMode string `yaml:"guideline_mode" validate:"required,oneof=2015 2023"`

	// Parallel runs the evaluators concurrently. Results are ordered
	// canonically either way, so the output is identical.
	Parallel bool `yaml:"parallel"`

	// MaxConcurrency bounds the evaluator goroutines when Parallel is
	// set. Zero means one goroutine per evaluator.
	MaxConcurrency int `yaml:"max_concurrency" validate:"gte=0,lte=64"`

	// GeneOverlayPath optionally points to a YAML overlay extending the
	// built-in gene knowledge base.
	GeneOverlayPath string `yaml:"gene_overlay_path,omitempty"`

	// MetascoreOverlayPath optionally points to a YAML overlay extending
	// the built-in metascore tables.
	MetascoreOverlayPath string `yaml:"metascore_overlay_path,omitempty"`
}

// DefaultEngineConfig returns the standard configuration: the newer
// guideline revision with parallel evaluation.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		GuidelineMode: "2023",
		Parallel:      true,
	}
}

// LoadEngineConfig reads and validates an engine configuration from a
// YAML file. Unknown fields are rejected to catch typos early.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read engine config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse engine config %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid engine config %s: %w", path, err)
	}
	return cfg, nil
}
