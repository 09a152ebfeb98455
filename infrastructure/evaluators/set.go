package evaluators

import (
	"github.com/variomics/varclass/internal/ports"
)

// NewDefaultSet assembles the full evaluator set for all 28 criteria in
// canonical order, wiring in the shared collaborators. The returned
// slice is the complete input expected by the classification engine.
func NewDefaultSet(
	genes ports.GeneKnowledge,
	metascore ports.MetascoreProvider,
	matcher ports.PhenotypeMatcher,
) ([]ports.Evaluator, error) {
	pvs1, err := NewPVS1Evaluator(genes, DefaultPVS1Config())
	if err != nil {
		return nil, err
	}
	pm1, err := NewPM1Evaluator(genes)
	if err != nil {
		return nil, err
	}
	pm2, err := NewPM2Evaluator(genes)
	if err != nil {
		return nil, err
	}
	pp2, err := NewPP2Evaluator(genes)
	if err != nil {
		return nil, err
	}
	pp3, err := NewPP3Evaluator(metascore)
	if err != nil {
		return nil, err
	}
	pp4, err := NewPP4Evaluator(genes, matcher)
	if err != nil {
		return nil, err
	}
	ba1, err := NewBA1Evaluator(genes)
	if err != nil {
		return nil, err
	}
	bs1, err := NewBS1Evaluator(genes)
	if err != nil {
		return nil, err
	}
	bp1, err := NewBP1Evaluator(genes)
	if err != nil {
		return nil, err
	}
	bp4, err := NewBP4Evaluator(metascore)
	if err != nil {
		return nil, err
	}
	bp5, err := NewBP5Evaluator(genes, matcher)
	if err != nil {
		return nil, err
	}

	return []ports.Evaluator{
		pvs1,
		NewPS1Evaluator(),
		NewPS2Evaluator(),
		NewPS3Evaluator(),
		NewPS4Evaluator(),
		pm1,
		pm2,
		NewPM3Evaluator(),
		NewPM4Evaluator(),
		NewPM5Evaluator(),
		NewPM6Evaluator(),
		NewPP1Evaluator(),
		pp2,
		pp3,
		pp4,
		NewPP5Evaluator(),
		ba1,
		bs1,
		NewBS2Evaluator(),
		NewBS3Evaluator(),
		NewBS4Evaluator(),
		bp1,
		NewBP2Evaluator(),
		NewBP3Evaluator(),
		bp4,
		bp5,
		NewBP6Evaluator(),
		NewBP7Evaluator(),
	}, nil
}
