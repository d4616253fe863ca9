package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// ProgressStore defines the interface for learner repetition progress.
type ProgressStore interface {
	// Get retrieves the progress of a learner on a card.
	// Returns ErrProgressNotFound if the learner has never reviewed the card.
	Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.UserCardProgress, error)

	// GetForUpdate is Get with a row lock. Use it inside a transaction.
	GetForUpdate(ctx context.Context, userID, cardID uuid.UUID) (*domain.UserCardProgress, error)

	// Upsert inserts or replaces a progress row. The progress is validated first.
	Upsert(ctx context.Context, progress *domain.UserCardProgress) error

	// WithTx returns a ProgressStore that runs its queries in tx.
	WithTx(tx *sql.Tx) ProgressStore
}
