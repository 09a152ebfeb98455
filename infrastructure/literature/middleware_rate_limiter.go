package literature

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// rateLimitedModel enforces a token bucket rate limit on narrative
// requests so batch report generation stays inside provider quotas.
type rateLimitedModel struct {
	next    CoreModel
	limiter *rate.Limiter
}

// RateLimitMiddleware creates middleware that enforces rate limiting
// using a token bucket. The limit parameter sets requests per second;
// burst allows temporary spikes above the sustained rate.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next CoreModel) CoreModel {
		return &rateLimitedModel{
			next:    next,
			limiter: limiter,
		}
	}
}

// Generate waits for rate limit permission before forwarding the request.
func (r *rateLimitedModel) Generate(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return r.next.Generate(ctx, prompt, opts)
}

// ModelName returns the model name from the wrapped implementation.
func (r *rateLimitedModel) ModelName() string { return r.next.ModelName() }
