package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/redact"
)

// Completer sends a single prompt to a language model and returns its raw
// text output.
type Completer interface {
	Complete(ctx context.Context, prompt string, format ResponseFormat) (string, error)
}

// LLMProvider implements Provider by rendering prompts, sending them through
// a Completer and decoding the JSON the model returns.
type LLMProvider struct {
	name      string
	completer Completer
	prompts   *Prompts
	timeout   time.Duration
	logger    *slog.Logger
}

var _ Provider = (*LLMProvider)(nil)

// NewLLMProvider creates a provider named name (used in logs) on top of
// completer. A positive timeout bounds every model call.
func NewLLMProvider(name string, completer Completer, timeout time.Duration, log *slog.Logger) (*LLMProvider, error) {
	if completer == nil {
		return nil, fmt.Errorf("%w: completer cannot be nil", ErrInvalidConfig)
	}
	if log == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", ErrInvalidConfig)
	}

	prompts, err := LoadPrompts()
	if err != nil {
		return nil, err
	}

	return &LLMProvider{
		name:      name,
		completer: completer,
		prompts:   prompts,
		timeout:   timeout,
		logger:    log.With(slog.String("component", "generation"), slog.String("provider", name)),
	}, nil
}

// GenerateContext implements Provider.
func (p *LLMProvider) GenerateContext(ctx context.Context, req ContextRequest) (*ContextResult, error) {
	const op = "generate context"

	if strings.TrimSpace(req.Word) == "" {
		return nil, providerFailure(op, fmt.Errorf("%w: word cannot be empty", ErrInvalidInput))
	}

	prompt, err := p.prompts.Context(req)
	if err != nil {
		return nil, providerFailure(op, err)
	}

	raw, err := p.complete(ctx, op, prompt, ContextFormat)
	if err != nil {
		return nil, err
	}

	result, err := decodeContext(raw)
	if err != nil {
		return nil, p.fail(ctx, op, err)
	}
	return result, nil
}

// TranslateWord implements Provider.
func (p *LLMProvider) TranslateWord(
	ctx context.Context,
	word string,
	target, native domain.Language,
) (string, error) {
	const op = "translate word"

	if strings.TrimSpace(word) == "" {
		return "", providerFailure(op, fmt.Errorf("%w: word cannot be empty", ErrInvalidInput))
	}

	prompt, err := p.prompts.Translate(word, target, native)
	if err != nil {
		return "", providerFailure(op, err)
	}

	raw, err := p.complete(ctx, op, prompt, TranslationFormat)
	if err != nil {
		return "", err
	}

	translation, err := decodeTranslation(raw)
	if err != nil {
		return "", p.fail(ctx, op, err)
	}
	return translation, nil
}

// Simplify implements Provider.
func (p *LLMProvider) Simplify(ctx context.Context, req SimplifyRequest) (*SimplifiedContext, error) {
	const op = "simplify context"

	if strings.TrimSpace(req.OriginalContext) == "" {
		return nil, providerFailure(op, fmt.Errorf("%w: original context cannot be empty", ErrInvalidInput))
	}

	prompt, err := p.prompts.Simplify(req)
	if err != nil {
		return nil, providerFailure(op, err)
	}

	raw, err := p.complete(ctx, op, prompt, SimplifyFormat)
	if err != nil {
		return nil, err
	}

	result, err := decodeSimplified(raw)
	if err != nil {
		return nil, p.fail(ctx, op, err)
	}
	return result, nil
}

// complete makes exactly one model call, bounded by the configured timeout.
func (p *LLMProvider) complete(ctx context.Context, op, prompt string, format ResponseFormat) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	log := logger.FromContextOrDefault(ctx, p.logger)
	log.DebugContext(ctx, "calling language model",
		slog.String("operation", op),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()
	raw, err := p.completer.Complete(ctx, prompt, format)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w (%v)", ctxErr, err)
		}
		return "", p.fail(ctx, op, err)
	}

	log.DebugContext(ctx, "language model call succeeded",
		slog.String("operation", op),
		slog.Duration("duration", time.Since(start)),
		slog.Int("response_length", len(raw)))
	return raw, nil
}

// fail wraps err as a provider failure. The caller owns the error log line.
func (p *LLMProvider) fail(ctx context.Context, op string, err error) error {
	logger.FromContextOrDefault(ctx, p.logger).DebugContext(ctx, "language model call failed",
		slog.String("operation", op),
		slog.String("error", redact.Error(err)))
	return providerFailure(op, err)
}
