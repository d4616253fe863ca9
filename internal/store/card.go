package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
//
// Writes are last-write-wins; there is no optimistic locking.
type CardStore interface {
	// Create saves a new card. The card is validated first, so a card with
	// an empty back never reaches the database.
	// Returns ErrInvalidEntity if the deck does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// ListByDeck returns the cards of a deck ordered by creation time.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)

	// ListDue returns up to limit cards of deckID the learner has studied
	// and whose next review is at or before now, most overdue first.
	ListDue(ctx context.Context, userID, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)

	// ListNew returns up to limit cards of deckID the learner has never
	// reviewed, oldest first.
	ListNew(ctx context.Context, userID, deckID uuid.UUID, limit int) ([]*domain.Card, error)

	// Update overwrites the content, image and metadata of an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Card) error

	// Delete removes a card and, through ON DELETE CASCADE, its progress rows.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CardStore that runs its queries in tx.
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
	//       return cardStore.WithTx(tx).Update(ctx, card)
	//   })
	WithTx(tx *sql.Tx) CardStore
}
