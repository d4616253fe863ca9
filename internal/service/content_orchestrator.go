package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/generation"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/redact"
)

// ContentEdit is the caller's content for a new or existing card. Context
// fields are only used when generation is not requested.
type ContentEdit struct {
	Front              string
	Back               string
	GeneratedContext   string
	ContextTranslation string
	ContextReading     string
}

// ContentOrchestrator decides how card content is populated and is the only
// writer of domain.CardContent. Every operation returns a fresh value; the
// input is never modified, so a failed provider call leaves nothing to undo.
//
// It makes at most one provider call per operation and never retries.
// Timeouts belong to the provider.
type ContentOrchestrator struct {
	provider generation.Provider
	logger   *slog.Logger
}

// NewContentOrchestrator creates a ContentOrchestrator.
// It returns an error if provider is nil.
func NewContentOrchestrator(provider generation.Provider, logger *slog.Logger) (*ContentOrchestrator, error) {
	if provider == nil {
		return nil, domain.NewValidationError("provider", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentOrchestrator{
		provider: provider,
		logger:   logger.With(slog.String("component", "content_orchestrator")),
	}, nil
}

// CreateCard builds the content of a new card.
//
// With generate set, the example sentence is generated and a blank back is
// filled from the word translation; any provider failure fails the whole
// operation with GenerationFailed. Without it, a blank back is translated
// and a failure yields TranslationFailed. A supplied back and no generation
// means no provider call. Hand-written context in edit is kept as sent
// unless generation replaces it.
func (o *ContentOrchestrator) CreateCard(
	ctx context.Context,
	edit ContentEdit,
	deck domain.DeckPersonalization,
	generate bool,
) (domain.CardContent, error) {
	const op = "create_card"
	log := logger.FromContextOrDefault(ctx, o.logger)

	content := domain.CardContent{
		Front:              strings.TrimSpace(edit.Front),
		Back:               strings.TrimSpace(edit.Back),
		GeneratedContext:   edit.GeneratedContext,
		ContextTranslation: edit.ContextTranslation,
		ContextReading:     edit.ContextReading,
		State:              domain.ContentStateNormal,
	}
	if content.Front == "" {
		return domain.CardContent{}, NewValidationError(op, "front required")
	}

	switch {
	case generate:
		result, err := o.provider.GenerateContext(ctx, generation.ContextRequest{Word: content.Front, Deck: deck})
		if err != nil {
			o.logProviderFailure(log, op, "generate_context", content.Front, err)
			return domain.CardContent{}, newError(KindGenerationFailed, op,
				"could not generate content, fill in the fields manually", err)
		}
		content.GeneratedContext = result.GeneratedContext
		content.ContextTranslation = result.ContextTranslation
		content.ContextReading = result.ContextReading
		if content.Back == "" {
			content.Back = strings.TrimSpace(result.WordTranslation)
		}

	case content.Back == "":
		translation, err := o.provider.TranslateWord(ctx, content.Front, deck.TargetLanguage, deck.NativeLanguage)
		if err != nil {
			o.logProviderFailure(log, op, "translate_word", content.Front, err)
			return domain.CardContent{}, newError(KindTranslationFailed, op,
				"could not translate the word, enter the translation manually", err)
		}
		content.Back = strings.TrimSpace(translation)
	}

	if content.Back == "" {
		return domain.CardContent{}, NewValidationError(op, "back required")
	}

	log.Debug("card content created",
		slog.Bool("generated", generate),
		slog.Bool("has_context", content.HasContext()))
	return content, nil
}

// UpdateCard replaces the content of an existing card. Front and back always
// come from edit. With generate set, the context is regenerated and the
// state resets to Normal; without it, the context fields of edit are taken
// verbatim and the state is kept.
func (o *ContentOrchestrator) UpdateCard(
	ctx context.Context,
	existing domain.CardContent,
	edit ContentEdit,
	deck domain.DeckPersonalization,
	generate bool,
) (domain.CardContent, error) {
	const op = "update_card"
	log := logger.FromContextOrDefault(ctx, o.logger)

	content := domain.CardContent{
		Front: strings.TrimSpace(edit.Front),
		Back:  strings.TrimSpace(edit.Back),
	}
	if content.Front == "" {
		return domain.CardContent{}, NewValidationError(op, "front required")
	}
	if content.Back == "" {
		return domain.CardContent{}, NewValidationError(op, "back required")
	}

	if generate {
		result, err := o.provider.GenerateContext(ctx, generation.ContextRequest{Word: content.Front, Deck: deck})
		if err != nil {
			o.logProviderFailure(log, op, "generate_context", content.Front, err)
			return domain.CardContent{}, newError(KindGenerationFailed, op,
				"could not generate content, fill in the fields manually", err)
		}
		content.GeneratedContext = result.GeneratedContext
		content.ContextTranslation = result.ContextTranslation
		content.ContextReading = result.ContextReading
		content.State = domain.ContentStateNormal
		return content, nil
	}

	content.GeneratedContext = edit.GeneratedContext
	content.ContextTranslation = edit.ContextTranslation
	content.ContextReading = edit.ContextReading
	content.State = existing.State
	return content, nil
}

// SimplifyCard rewrites the context of a Normal card one proficiency level
// below the deck's. A Simplified card fails with AlreadySimplified before
// the provider is consulted.
func (o *ContentOrchestrator) SimplifyCard(
	ctx context.Context,
	existing domain.CardContent,
	deck domain.DeckPersonalization,
) (domain.CardContent, error) {
	const op = "simplify_card"
	log := logger.FromContextOrDefault(ctx, o.logger)

	switch existing.State {
	case domain.ContentStateNormal:
	case domain.ContentStateSimplified:
		return domain.CardContent{}, newError(KindAlreadySimplified, op,
			"card has already been simplified, create a new card or edit it manually", nil)
	default:
		return domain.CardContent{}, NewValidationError(op, "unknown content state")
	}

	if !existing.HasContext() {
		return domain.CardContent{}, NewValidationError(op, "nothing to simplify")
	}

	level := deck.ProficiencyLevel.Simpler()
	result, err := o.provider.Simplify(ctx, generation.SimplifyRequest{
		Word:            existing.Front,
		OriginalContext: existing.GeneratedContext,
		TargetLanguage:  deck.TargetLanguage,
		NativeLanguage:  deck.NativeLanguage,
		Level:           level,
	})
	if err != nil {
		o.logProviderFailure(log, op, "simplify", existing.Front, err)
		return domain.CardContent{}, newError(KindSimplificationFailed, op,
			"could not simplify the example, try again later", err)
	}

	content := existing
	content.GeneratedContext = result.GeneratedContext
	content.ContextTranslation = result.ContextTranslation
	content.ContextReading = result.ContextReading
	content.State = domain.ContentStateSimplified

	log.Debug("card content simplified", slog.String("level", level.String()))
	return content, nil
}

func (o *ContentOrchestrator) logProviderFailure(log *slog.Logger, op, call, word string, err error) {
	log.Error("content provider call failed",
		slog.String("operation", op),
		slog.String("call", call),
		slog.String("word", word),
		slog.String("error", redact.Error(err)))
}
