package application

import (
	"fmt"
	"sync"

	"github.com/variomics/varclass/infrastructure/evaluators"
	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// EvaluatorRegistry is a factory for criterion evaluators. The standard
// 28 criteria are pre-registered; callers may override individual
// factories to swap in gene-panel-specific evaluator variants without
// rebuilding the rest of the set.
type EvaluatorRegistry struct {
	mu        sync.RWMutex
	factories map[domain.CriterionID]ports.EvaluatorFactory
}

// NewEvaluatorRegistry creates a registry with the standard evaluators
// pre-registered against the given collaborators.
func NewEvaluatorRegistry(
	genes ports.GeneKnowledge,
	metascore ports.MetascoreProvider,
	matcher ports.PhenotypeMatcher,
) (*EvaluatorRegistry, error) {
	set, err := evaluators.NewDefaultSet(genes, metascore, matcher)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble standard evaluator set: %w", err)
	}

	r := &EvaluatorRegistry{
		factories: make(map[domain.CriterionID]ports.EvaluatorFactory, len(set)),
	}
	for _, ev := range set {
		r.factories[ev.ID()] = func(map[string]any) (ports.Evaluator, error) {
			return ev, nil
		}
	}
	return r, nil
}

// Register replaces the factory for one criterion. This is the
// extension point for disease- or panel-specific evaluator variants.
func (r *EvaluatorRegistry) Register(id domain.CriterionID, factory ports.EvaluatorFactory) error {
	if factory == nil {
		return fmt.Errorf("factory for %s must not be nil", id)
	}
	if !knownCriterion(id) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCriterion, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
	return nil
}

// Create builds the evaluator for one criterion.
func (r *EvaluatorRegistry) Create(id domain.CriterionID, config map[string]any) (ports.Evaluator, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCriterion, id)
	}
	if config == nil {
		config = make(map[string]any)
	}

	ev, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator %s: %w", id, err)
	}
	return ev, nil
}

// CreateAll builds the full evaluator set in canonical criterion order.
func (r *EvaluatorRegistry) CreateAll() ([]ports.Evaluator, error) {
	set := make([]ports.Evaluator, 0, len(domain.AllCriteria))
	for _, id := range domain.AllCriteria {
		ev, err := r.Create(id, nil)
		if err != nil {
			return nil, err
		}
		set = append(set, ev)
	}
	return set, nil
}

// SupportedCriteria returns the registered criterion IDs in canonical
// order.
func (r *EvaluatorRegistry) SupportedCriteria() []domain.CriterionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]domain.CriterionID, 0, len(r.factories))
	for _, id := range domain.AllCriteria {
		if _, ok := r.factories[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func knownCriterion(id domain.CriterionID) bool {
	for _, known := range domain.AllCriteria {
		if known == id {
			return true
		}
	}
	return false
}
