package application

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/variomics/varclass/internal/domain"
	"github.com/variomics/varclass/internal/ports"
)

// Compile-time verification that Engine implements Classifier.
var _ ports.Classifier = (*Engine)(nil)

// Engine runs one EvidenceRecord through the full evaluator set and
// combines the outcomes under the configured guideline mode. The engine
// is immutable after construction and safe for concurrent use; a single
// classification pass is pure, so parallel and sequential execution
// produce identical results.
type Engine struct {
	evaluators []ports.Evaluator
	metascore  ports.MetascoreProvider
	mode       domain.GuidelineMode
	parallel   bool
	maxConc    int
}

// NewEngine creates an Engine over the given evaluator set. The
// evaluator slice order fixes the canonical outcome order; duplicate
// criterion registrations are rejected.
func NewEngine(
	cfg EngineConfig,
	evaluators []ports.Evaluator,
	metascore ports.MetascoreProvider,
) (*Engine, error) {
	mode := domain.GuidelineMode(cfg.GuidelineMode)
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGuidelineMode, cfg.GuidelineMode)
	}
	if len(evaluators) == 0 {
		return nil, fmt.Errorf("engine requires at least one evaluator")
	}

	seen := make(map[domain.CriterionID]struct{}, len(evaluators))
	for _, ev := range evaluators {
		if _, dup := seen[ev.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateEvaluator, ev.ID())
		}
		seen[ev.ID()] = struct{}{}
	}

	return &Engine{
		evaluators: evaluators,
		metascore:  metascore,
		mode:       mode,
		parallel:   cfg.Parallel,
		maxConc:    cfg.MaxConcurrency,
	}, nil
}

// Mode returns the guideline revision the engine classifies under.
func (e *Engine) Mode() domain.GuidelineMode { return e.mode }

// Classify implements ports.Classifier. It validates the record, runs
// every evaluator, and combines the outcomes. The context is honored
// between evaluator batches; the evaluators themselves are pure and
// have no suspension points.
func (e *Engine) Classify(ctx context.Context, rec *domain.EvidenceRecord) (domain.ClassificationResult, error) {
	if err := domain.ValidateRecord(rec); err != nil {
		return domain.ClassificationResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.ClassificationResult{}, err
	}

	outcomes := make([]domain.CriterionOutcome, len(e.evaluators))
	if e.parallel {
		g, _ := errgroup.WithContext(ctx)
		if e.maxConc > 0 {
			g.SetLimit(e.maxConc)
		}
		for i, ev := range e.evaluators {
			g.Go(func() error {
				outcomes[i] = ev.Evaluate(rec, e.mode)
				return nil
			})
		}
		// Evaluators never fail; the group exists for bounded fan-out.
		if err := g.Wait(); err != nil {
			return domain.ClassificationResult{}, err
		}
	} else {
		for i, ev := range e.evaluators {
			outcomes[i] = ev.Evaluate(rec, e.mode)
		}
	}

	result := domain.Combine(outcomes, e.mode)

	// Surface the fused score on the result for reporting, whether or
	// not either computational criterion fired.
	if e.metascore != nil {
		if ms := e.metascore.Compute(rec); ms.Score != nil {
			result.Metascore = ms.Score
		}
	}
	return result, nil
}
