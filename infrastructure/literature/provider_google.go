package literature

import (
	"context"
	"errors"
	"fmt"
	"math"

	"google.golang.org/genai"
)

// GoogleDefaultModel is the default model for the Google provider.
const GoogleDefaultModel = "gemini-2.0-flash-exp"

func init() {
	RegisterProviderFactory("google", newGoogleProvider)
}

// googleProvider implements the CoreModel interface for Google's Gemini
// API using API-key authentication.
type googleProvider struct {
	client *genai.Client
	model  string
}

func newGoogleProvider(config ClientConfig) (CoreModel, error) {
	if config.APIKey == "" {
		return nil, ErrEmptyAPIKey
	}

	model := config.Model
	if model == "" {
		model = GoogleDefaultModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google client: %w", err)
	}

	return &googleProvider{
		client: client,
		model:  model,
	}, nil
}

// Generate sends a request to the Gemini API and returns the response
// text.
func (p *googleProvider) Generate(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	finalPrompt := prompt
	if system := stringOption(opts, "system"); system != "" {
		// Gemini has no separate system role; prepend in a structured format.
		finalPrompt = fmt.Sprintf("System: %s\n\nUser: %s", system, prompt)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(finalPrompt, genai.RoleUser),
	}

	genConfig := &genai.GenerateContentConfig{}
	if temp, ok := floatOption(opts, "temperature"); ok {
		genConfig.Temperature = genai.Ptr(float32(clampFloat64(temp, 0.0, 2.0)))
	}
	if maxTokens := intOption(opts, "max_tokens", defaultMaxTokens); maxTokens > 0 {
		if maxTokens > math.MaxInt32 {
			maxTokens = math.MaxInt32
		}
		genConfig.MaxOutputTokens = int32(maxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, contents, genConfig)
	if err != nil {
		return "", p.wrapError(err)
	}

	content := resp.Text()
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func (p *googleProvider) wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("google request timeout: %w", err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("google request canceled: %w", err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("google API error (%d): %w", apiErr.Code, err)
	}
	return fmt.Errorf("google request failed: %w", err)
}

// ModelName returns the configured Gemini model name.
func (p *googleProvider) ModelName() string { return p.model }
