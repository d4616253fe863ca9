package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// DeckStore defines the interface for deck data persistence.
type DeckStore interface {
	// Create saves a new deck. The deck is validated first.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// List returns all decks ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Deck, error)

	// Update overwrites an existing deck.
	// Returns ErrDeckNotFound if the deck does not exist.
	Update(ctx context.Context, deck *domain.Deck) error

	// Delete removes a deck together with its cards and their progress
	// (ON DELETE CASCADE).
	// Returns ErrDeckNotFound if the deck does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
