package literature

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIDefaultModel is the default OpenAI model.
const OpenAIDefaultModel = "gpt-4o-mini"

func init() {
	RegisterProviderFactory("openai", newOpenAIProvider)
}

// openAIProvider implements the CoreModel interface for OpenAI's chat
// completion API.
type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(config ClientConfig) (CoreModel, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = OpenAIDefaultModel
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Generate sends a chat completion request to the OpenAI API and
// returns the response text.
func (p *openAIProvider) Generate(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system := stringOption(opts, "system"); system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  messages,
		MaxTokens: intOption(opts, "max_tokens", defaultMaxTokens),
	}
	if temp, ok := floatOption(opts, "temperature"); ok {
		// OpenAI supports a temperature range of 0.0 to 2.0.
		req.Temperature = float32(clampFloat64(temp, 0.0, 2.0))
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", p.wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func (p *openAIProvider) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("openai request timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("openai request canceled: %w", err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai API error (%d): %w", apiErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("openai request failed: %w", err)
}

// ModelName returns the configured OpenAI model name.
func (p *openAIProvider) ModelName() string { return p.model }
