package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// CreateCardInput holds the fields of a new card. An empty Back is filled
// by the content provider. The context fields are ignored when
// GenerateContext is set.
type CreateCardInput struct {
	DeckID             uuid.UUID
	Front              string
	Back               string
	GeneratedContext   string
	ContextTranslation string
	ContextReading     string
	GenerateContext    bool
	ImageURL           string
	AdditionalMetadata string
}

// UpdateCardInput holds the replacement fields of a card.
type UpdateCardInput struct {
	Front              string
	Back               string
	GeneratedContext   string
	ContextTranslation string
	ContextReading     string
	GenerateContext    bool
	ImageURL           string
	AdditionalMetadata string
}

// CardService provides card-related operations
type CardService interface {
	// CreateCard looks up the deck, builds the content and stores the card.
	CreateCard(ctx context.Context, in CreateCardInput) (*domain.Card, error)

	// GetCard retrieves a card by its ID
	GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListCards returns the cards of a deck.
	ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// UpdateCard replaces the content of a card. The deck is only read
	// when generation is requested.
	UpdateCard(ctx context.Context, id uuid.UUID, in UpdateCardInput) (*domain.Card, error)

	// SimplifyCard rewrites the example sentence of a card at an easier level.
	SimplifyCard(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// DeleteCard removes a card with its review progress.
	DeleteCard(ctx context.Context, id uuid.UUID) error
}

// cardServiceImpl implements the CardService interface
type cardServiceImpl struct {
	db           store.TxBeginner
	cards        store.CardStore
	decks        store.DeckStore
	orchestrator *ContentOrchestrator
	logger       *slog.Logger
	now          func() time.Time
}

// Ensure cardServiceImpl implements CardService interface
var _ CardService = (*cardServiceImpl)(nil)

// NewCardService creates a new CardService
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	db store.TxBeginner,
	cards store.CardStore,
	decks store.DeckStore,
	orchestrator *ContentOrchestrator,
	logger *slog.Logger,
) (CardService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if orchestrator == nil {
		return nil, domain.NewValidationError("orchestrator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cardServiceImpl{
		db:           db,
		cards:        cards,
		decks:        decks,
		orchestrator: orchestrator,
		logger:       logger.With(slog.String("component", "card_service")),
		now:          time.Now,
	}, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(ctx context.Context, in CreateCardInput) (*domain.Card, error) {
	const op = "create_card"
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.GetByID(ctx, in.DeckID)
	if err != nil {
		return nil, storeError(op, "deck", err)
	}

	content, err := s.orchestrator.CreateCard(ctx, ContentEdit{
		Front:              in.Front,
		Back:               in.Back,
		GeneratedContext:   in.GeneratedContext,
		ContextTranslation: in.ContextTranslation,
		ContextReading:     in.ContextReading,
	}, deck.Personalization(), in.GenerateContext)
	if err != nil {
		return nil, err
	}

	card, err := domain.NewCard(deck.ID, content)
	if err != nil {
		return nil, NewValidationError(op, err.Error())
	}
	card.ImageURL = in.ImageURL
	card.AdditionalMetadata = in.AdditionalMetadata

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.cards.WithTx(tx).Create(ctx, card)
	})
	if err != nil {
		log.Error("failed to save card",
			slog.String("error", err.Error()),
			slog.String("deck_id", deck.ID.String()))
		return nil, storeError(op, "card", err)
	}

	log.Info("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deck.ID.String()),
		slog.Bool("generated", in.GenerateContext))
	return card, nil
}

// GetCard implements CardService.GetCard
func (s *cardServiceImpl) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get_card", "card", err)
	}
	return card, nil
}

// ListCards implements CardService.ListCards
func (s *cardServiceImpl) ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	const op = "list_cards"

	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, storeError(op, "deck", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, storeError(op, "card", err)
	}
	return cards, nil
}

// UpdateCard implements CardService.UpdateCard
func (s *cardServiceImpl) UpdateCard(ctx context.Context, id uuid.UUID, in UpdateCardInput) (*domain.Card, error) {
	const op = "update_card"
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(op, "card", err)
	}

	var personalization domain.DeckPersonalization
	if in.GenerateContext {
		deck, err := s.decks.GetByID(ctx, existing.DeckID)
		if err != nil {
			return nil, storeError(op, "deck", err)
		}
		personalization = deck.Personalization()
	}

	content, err := s.orchestrator.UpdateCard(ctx, existing.Content, ContentEdit{
		Front:              in.Front,
		Back:               in.Back,
		GeneratedContext:   in.GeneratedContext,
		ContextTranslation: in.ContextTranslation,
		ContextReading:     in.ContextReading,
	}, personalization, in.GenerateContext)
	if err != nil {
		return nil, err
	}

	updated := existing.WithContent(content, s.now())
	updated.ImageURL = in.ImageURL
	updated.AdditionalMetadata = in.AdditionalMetadata

	if err := s.save(ctx, op, updated); err != nil {
		return nil, err
	}

	log.Info("card updated",
		slog.String("card_id", id.String()),
		slog.Bool("generated", in.GenerateContext))
	return updated, nil
}

// SimplifyCard implements CardService.SimplifyCard
func (s *cardServiceImpl) SimplifyCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	const op = "simplify_card"
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(op, "card", err)
	}
	deck, err := s.decks.GetByID(ctx, existing.DeckID)
	if err != nil {
		return nil, storeError(op, "deck", err)
	}

	content, err := s.orchestrator.SimplifyCard(ctx, existing.Content, deck.Personalization())
	if err != nil {
		return nil, err
	}

	updated := existing.WithContent(content, s.now())
	if err := s.save(ctx, op, updated); err != nil {
		return nil, err
	}

	log.Info("card simplified", slog.String("card_id", id.String()))
	return updated, nil
}

// DeleteCard implements CardService.DeleteCard
func (s *cardServiceImpl) DeleteCard(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.cards.Delete(ctx, id); err != nil {
		return storeError("delete_card", "card", err)
	}

	log.Info("card deleted", slog.String("card_id", id.String()))
	return nil
}

// save writes an already computed card. Content is never computed inside
// the transaction.
func (s *cardServiceImpl) save(ctx context.Context, op string, card *domain.Card) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.cards.WithTx(tx).Update(ctx, card)
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to save card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return storeError(op, "card", err)
	}
	return nil
}
