package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lexicontext/lexicontext-api/internal/config"
	"github.com/lexicontext/lexicontext-api/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of the genai Models service used here.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Completer implements generation.Completer on the Gemini API.
type Completer struct {
	models      contentGenerator
	model       string
	temperature float32
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates a Gemini client for cfg.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (*Completer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newCompleter(client.Models, cfg.GeminiModel), nil
}

func newCompleter(models contentGenerator, model string) *Completer {
	return &Completer{
		models:      models,
		model:       model,
		temperature: 0.7,
	}
}

// NewProvider creates a generation.Provider backed by Gemini.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*generation.LLMProvider, error) {
	completer, err := NewCompleter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	return generation.NewLLMProvider(config.ProviderGemini, completer, timeout, logger)
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string, format generation.ResponseFormat) (string, error) {
	temperature := c.temperature
	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(format),
	})
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return responseText(resp)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	case resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "":
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	case len(resp.Candidates) == 0:
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func responseSchema(format generation.ResponseFormat) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(format.Fields))
	for _, field := range format.Fields {
		properties[field] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       properties,
		Required:         format.Required,
		PropertyOrdering: format.Fields,
	}
}
