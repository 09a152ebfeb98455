package literature

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicDefaultModel is the default Anthropic model.
const AnthropicDefaultModel = "claude-3-5-sonnet-20241022"

const defaultMaxTokens = 1024

func init() {
	RegisterProviderFactory("anthropic", newAnthropicProvider)
}

// anthropicProvider implements the CoreModel interface for Anthropic's
// Claude API.
type anthropicProvider struct {
	client anthropic.Client
	model  string
}

func newAnthropicProvider(config ClientConfig) (CoreModel, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = AnthropicDefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &anthropicProvider{
		client: anthropic.NewClient(opts...),
		model:  model,
	}, nil
}

// Generate sends a request to Anthropic's Claude API and returns the
// response text.
func (p *anthropicProvider) Generate(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(intOption(opts, "max_tokens", defaultMaxTokens)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	if temp, ok := floatOption(opts, "temperature"); ok {
		params.Temperature = anthropic.Float(temp)
	}
	if system := stringOption(opts, "system"); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", p.wrapError(err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		switch content := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(content.Text)
		}
	}

	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

func (p *anthropicProvider) wrapError(err error) error {
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		switch anthropicErr.StatusCode {
		case 401:
			return fmt.Errorf("anthropic authentication failed: check API key: %w", err)
		case 429:
			return fmt.Errorf("anthropic rate limit exceeded: %w", err)
		case 500, 502, 503, 504:
			return fmt.Errorf("anthropic server error (%d): %w", anthropicErr.StatusCode, err)
		default:
			return fmt.Errorf("anthropic API error (%d): %w", anthropicErr.StatusCode, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("anthropic request timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("anthropic request canceled: %w", err)
	}
	return fmt.Errorf("anthropic request failed: %w", err)
}

// ModelName returns the configured Anthropic model name.
func (p *anthropicProvider) ModelName() string { return p.model }
