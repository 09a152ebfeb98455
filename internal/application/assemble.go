package application

import (
	"fmt"

	"github.com/variomics/varclass/infrastructure/genekb"
	"github.com/variomics/varclass/infrastructure/metascore"
	"github.com/variomics/varclass/infrastructure/phenotype"
)

// BuildEngine assembles a ready-to-use engine from configuration: the
// gene knowledge base, metascore engine, and phenotype matcher are
// constructed (with overlays when configured) and wired into the full
// evaluator set.
func BuildEngine(cfg EngineConfig) (*Engine, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	genes := genekb.New()
	if cfg.GeneOverlayPath != "" {
		kb, err := genekb.NewFromOverlay(cfg.GeneOverlayPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load gene overlay: %w", err)
		}
		genes = kb
	}

	scores := metascore.NewDefault()
	if cfg.MetascoreOverlayPath != "" {
		engine, err := metascore.NewFromOverlay(cfg.MetascoreOverlayPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load metascore overlay: %w", err)
		}
		scores = engine
	}

	matcher := phenotype.New(phenotype.DefaultConfig())

	registry, err := NewEvaluatorRegistry(genes, scores, matcher)
	if err != nil {
		return nil, err
	}
	evaluators, err := registry.CreateAll()
	if err != nil {
		return nil, err
	}

	return NewEngine(cfg, evaluators, scores)
}
