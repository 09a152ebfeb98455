// Package literature generates human-readable evidence narratives for
// classification reports by delegating to a hosted language model.
//
// The package abstracts multiple providers (OpenAI, Anthropic, Google)
// behind a common interface and composes cross-cutting concerns such as
// rate limiting and retries through a middleware chain. Narrative
// generation is strictly advisory: it runs after classification and can
// never influence a criterion outcome or the final verdict.
//
// Basic usage:
//
//	client, err := literature.NewClient("anthropic", literature.ClientConfig{
//	    APIKey: os.Getenv("ANTHROPIC_API_KEY"),
//	})
//	narrative, err := client.Summarize(ctx, prompt, nil)
package literature

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/variomics/varclass/internal/ports"
)

// Sentinel errors shared across providers.
var (
	// ErrEmptyAPIKey indicates a provider was configured without credentials.
	ErrEmptyAPIKey = errors.New("API key must not be empty")
	// ErrEmptyResponse indicates the provider returned no usable text.
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrUnknownProvider indicates the requested provider is not registered.
	ErrUnknownProvider = errors.New("unknown narrative provider")
)

// CoreModel defines the minimal interface a narrative provider must
// implement. The middleware chain wraps any conforming implementation.
type CoreModel interface {
	// Generate sends a prompt to the provider and returns the response
	// text. The opts parameter carries provider-specific settings such
	// as temperature or max tokens.
	Generate(ctx context.Context, prompt string, opts map[string]any) (string, error)

	// ModelName returns the configured model identifier.
	ModelName() string
}

// Middleware wraps a CoreModel to add cross-cutting functionality such
// as rate limiting or retries without modifying provider logic.
type Middleware func(CoreModel) CoreModel

// ClientConfig holds configuration for creating a narrative client.
type ClientConfig struct {
	// APIKey authenticates requests to the provider.
	APIKey string

	// Model selects the provider model. Empty uses the provider default.
	Model string

	// BaseURL overrides the default API endpoint. Empty uses the
	// provider default.
	BaseURL string

	// Timeout bounds individual requests. Zero means no timeout.
	Timeout time.Duration

	// Middleware is applied in order, first entry outermost.
	Middleware []Middleware
}

// Client implements the ports.NarrativeClient interface by wrapping a
// provider-specific CoreModel with the configured middleware chain.
type Client struct {
	core CoreModel
}

// Compile-time verification that Client implements NarrativeClient.
var _ ports.NarrativeClient = (*Client)(nil)

// NewClient creates a narrative client for the named provider.
func NewClient(providerType string, config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	factory, ok := providerFactories[providerType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerType)
	}

	core, err := factory(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider %s: %w", providerType, err)
	}

	// Apply middleware in reverse order so the first entry is outermost.
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}

	return &Client{core: core}, nil
}

// Summarize sends a prompt to the provider and returns the narrative text.
func (c *Client) Summarize(ctx context.Context, prompt string, options map[string]any) (string, error) {
	return c.core.Generate(ctx, prompt, options)
}

// Model returns the model identifier of the underlying provider.
func (c *Client) Model() string { return c.core.ModelName() }

// ProviderFactory creates a CoreModel implementation from configuration.
type ProviderFactory func(ClientConfig) (CoreModel, error)

// Provider factory registry. Providers register themselves at init time;
// custom providers may be registered at runtime.
var providerFactories = map[string]ProviderFactory{}

// RegisterProviderFactory registers a narrative provider factory under
// the given name, replacing any existing registration.
func RegisterProviderFactory(providerType string, factory ProviderFactory) {
	providerFactories[providerType] = factory
}
