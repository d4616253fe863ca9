package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// CreateDeckInput holds the fields of a new deck. Zero daily limits take the
// domain defaults.
type CreateDeckInput struct {
	Title              string
	Description        string
	IsPublic           bool
	TargetLanguage     domain.Language
	NativeLanguage     domain.Language
	ProficiencyLevel   domain.ProficiencyLevel
	Tone               domain.Tone
	DailyNewCardsLimit int
	DailyReviewLimit   int
}

// UpdateDeckInput holds the editable fields of a deck. The languages of a
// deck are fixed at creation. Zero daily limits keep the current values.
type UpdateDeckInput struct {
	Title              string
	Description        string
	IsPublic           bool
	ProficiencyLevel   domain.ProficiencyLevel
	Tone               domain.Tone
	DailyNewCardsLimit int
	DailyReviewLimit   int
}

// DeckService provides deck management.
type DeckService interface {
	CreateDeck(ctx context.Context, in CreateDeckInput) (*domain.Deck, error)
	GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListDecks(ctx context.Context) ([]*domain.Deck, error)
	UpdateDeck(ctx context.Context, id uuid.UUID, in UpdateDeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, id uuid.UUID) error
}

type deckServiceImpl struct {
	decks  store.DeckStore
	logger *slog.Logger
}

// Ensure deckServiceImpl implements DeckService interface
var _ DeckService = (*deckServiceImpl)(nil)

// NewDeckService creates a new DeckService.
// It returns an error if decks is nil.
func NewDeckService(decks store.DeckStore, logger *slog.Logger) (DeckService, error) {
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		decks:  decks,
		logger: logger.With(slog.String("component", "deck_service")),
	}, nil
}

// CreateDeck implements DeckService.CreateDeck
func (s *deckServiceImpl) CreateDeck(ctx context.Context, in CreateDeckInput) (*domain.Deck, error) {
	const op = "create_deck"
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := domain.NewDeck(in.Title, in.Description, in.TargetLanguage, in.NativeLanguage)
	if err != nil {
		return nil, NewValidationError(op, err.Error())
	}
	deck.IsPublic = in.IsPublic
	deck.ProficiencyLevel = in.ProficiencyLevel
	if in.Tone != "" {
		deck.Tone = in.Tone
	}
	if in.DailyNewCardsLimit != 0 {
		deck.DailyNewCardsLimit = in.DailyNewCardsLimit
	}
	if in.DailyReviewLimit != 0 {
		deck.DailyReviewLimit = in.DailyReviewLimit
	}
	if err := deck.Validate(); err != nil {
		return nil, NewValidationError(op, err.Error())
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, storeError(op, "deck", err)
	}

	log.Info("deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("target_language", string(deck.TargetLanguage)))
	return deck, nil
}

// GetDeck implements DeckService.GetDeck
func (s *deckServiceImpl) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get_deck", "deck", err)
	}
	return deck, nil
}

// ListDecks implements DeckService.ListDecks
func (s *deckServiceImpl) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return nil, storeError("list_decks", "deck", err)
	}
	return decks, nil
}

// UpdateDeck implements DeckService.UpdateDeck
func (s *deckServiceImpl) UpdateDeck(ctx context.Context, id uuid.UUID, in UpdateDeckInput) (*domain.Deck, error) {
	const op = "update_deck"
	log := logger.FromContextOrDefault(ctx, s.logger)

	current, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(op, "deck", err)
	}

	updated := *current
	updated.Title = strings.TrimSpace(in.Title)
	updated.Description = in.Description
	updated.IsPublic = in.IsPublic
	updated.ProficiencyLevel = in.ProficiencyLevel
	if in.Tone != "" {
		updated.Tone = in.Tone
	}
	if in.DailyNewCardsLimit != 0 {
		updated.DailyNewCardsLimit = in.DailyNewCardsLimit
	}
	if in.DailyReviewLimit != 0 {
		updated.DailyReviewLimit = in.DailyReviewLimit
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := updated.Validate(); err != nil {
		return nil, NewValidationError(op, err.Error())
	}
	if err := s.decks.Update(ctx, &updated); err != nil {
		return nil, storeError(op, "deck", err)
	}

	log.Info("deck updated", slog.String("deck_id", id.String()))
	return &updated, nil
}

// DeleteDeck implements DeckService.DeleteDeck
func (s *deckServiceImpl) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.decks.Delete(ctx, id); err != nil {
		return storeError("delete_deck", "deck", err)
	}

	log.Info("deck deleted", slog.String("deck_id", id.String()))
	return nil
}

// storeError translates a store error into the service vocabulary. Not
// found and invalid entities become typed kinds; anything else is wrapped
// and left for the caller to treat as internal.
func storeError(op, entity string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NewNotFoundError(op, entity+" not found", err)
	case errors.Is(err, store.ErrInvalidEntity):
		return newError(KindValidationFailed, op, "invalid "+entity, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
