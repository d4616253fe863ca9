package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lexicontext/lexicontext-api/internal/config"
	"github.com/lexicontext/lexicontext-api/internal/generation"
	goopenai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a language teacher writing flashcard content. You always answer with a single JSON object."

// Completer implements generation.Completer on the chat completions API.
type Completer struct {
	client      *goopenai.Client
	model       string
	temperature float32
}

var _ generation.Completer = (*Completer)(nil)

// NewCompleter creates an OpenAI client for cfg. OpenAIBaseURL, when set,
// points the client at a compatible endpoint.
func NewCompleter(cfg config.LLMConfig) (*Completer, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.OpenAIModel == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientCfg := goopenai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.OpenAIBaseURL, "/")
	}

	return &Completer{
		client:      goopenai.NewClientWithConfig(clientCfg),
		model:       cfg.OpenAIModel,
		temperature: 0.7,
	}, nil
}

// NewProvider creates a generation.Provider backed by the chat completions API.
func NewProvider(cfg config.LLMConfig, logger *slog.Logger) (*generation.LLMProvider, error) {
	completer, err := NewCompleter(cfg)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	return generation.NewLLMProvider(config.ProviderOpenAI, completer, timeout, logger)
}

// Complete implements generation.Completer.
func (c *Completer) Complete(ctx context.Context, prompt string, _ generation.ResponseFormat) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == goopenai.FinishReasonContentFilter {
		return "", fmt.Errorf("%w: content filtered", generation.ErrContentBlocked)
	}
	return choice.Message.Content, nil
}
