package generation

import (
	"context"

	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// ContextRequest asks for an example sentence for Word, personalised by the
// owning deck.
type ContextRequest struct {
	Word string
	Deck domain.DeckPersonalization
}

// ContextResult is a generated example sentence.
type ContextResult struct {
	GeneratedContext   string `json:"generatedContext"`
	ContextTranslation string `json:"contextTranslation"`

	// ContextReading is a phonetic reading, present for languages written
	// with logograms.
	ContextReading string `json:"contextReading"`

	// WordTranslation translates the word itself into the native language.
	WordTranslation string `json:"wordTranslation"`
}

// SimplifyRequest asks for OriginalContext to be rewritten at Level.
type SimplifyRequest struct {
	Word            string
	OriginalContext string
	TargetLanguage  domain.Language
	NativeLanguage  domain.Language
	Level           domain.ProficiencyLevel
}

// SimplifiedContext is a rewritten example sentence.
type SimplifiedContext struct {
	GeneratedContext   string `json:"generatedContext"`
	ContextTranslation string `json:"contextTranslation"`
	ContextReading     string `json:"contextReading"`
}

// Provider generates card content. Implementations make a single attempt per
// call; transport errors, malformed responses and empty results all surface
// as errors wrapping ErrProviderFailed.
type Provider interface {
	// GenerateContext writes an example sentence for the word with its
	// translation, and translates the word itself.
	GenerateContext(ctx context.Context, req ContextRequest) (*ContextResult, error)

	// TranslateWord translates a single word or phrase from target to native.
	TranslateWord(ctx context.Context, word string, target, native domain.Language) (string, error)

	// Simplify rewrites an existing example sentence at a lower level.
	Simplify(ctx context.Context, req SimplifyRequest) (*SimplifiedContext, error)
}
