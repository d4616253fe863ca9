package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the ProgressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, logger *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

const progressSelect = `
		SELECT user_id, card_id, repetitions, interval_days, ease_factor, next_review_at,
			last_reviewed_at, review_count, created_at, updated_at
		FROM user_card_progress
		WHERE user_id = $1 AND card_id = $2
	`

// Get implements store.ProgressStore.Get
// Returns store.ErrProgressNotFound if the learner has never reviewed the card.
func (s *PostgresProgressStore) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.UserCardProgress, error) {
	return s.get(ctx, progressSelect, userID, cardID)
}

// GetForUpdate implements store.ProgressStore.GetForUpdate
func (s *PostgresProgressStore) GetForUpdate(
	ctx context.Context,
	userID, cardID uuid.UUID,
) (*domain.UserCardProgress, error) {
	return s.get(ctx, progressSelect+"FOR UPDATE", userID, cardID)
}

func (s *PostgresProgressStore) get(
	ctx context.Context,
	query string,
	userID, cardID uuid.UUID,
) (*domain.UserCardProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		progress     domain.UserCardProgress
		lastReviewed sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, userID, cardID).Scan(
		&progress.UserID,
		&progress.CardID,
		&progress.Repetitions,
		&progress.IntervalDays,
		&progress.EaseFactor,
		&progress.NextReviewAt,
		&lastReviewed,
		&progress.ReviewCount,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("progress not found",
				slog.String("user_id", userID.String()),
				slog.String("card_id", cardID.String()))
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return nil, MapError(err)
	}

	if lastReviewed.Valid {
		progress.LastReviewedAt = lastReviewed.Time
	}
	return &progress, nil
}

// Upsert implements store.ProgressStore.Upsert
// Returns store.ErrInvalidEntity if the progress is invalid or the card does not exist.
func (s *PostgresProgressStore) Upsert(ctx context.Context, progress *domain.UserCardProgress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("progress validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("card_id", progress.CardID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	var lastReviewed sql.NullTime
	if !progress.LastReviewedAt.IsZero() {
		lastReviewed = sql.NullTime{Time: progress.LastReviewedAt, Valid: true}
	}

	query := `
		INSERT INTO user_card_progress (user_id, card_id, repetitions, interval_days, ease_factor,
			next_review_at, last_reviewed_at, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, card_id) DO UPDATE
		SET repetitions = EXCLUDED.repetitions,
			interval_days = EXCLUDED.interval_days,
			ease_factor = EXCLUDED.ease_factor,
			next_review_at = EXCLUDED.next_review_at,
			last_reviewed_at = EXCLUDED.last_reviewed_at,
			review_count = EXCLUDED.review_count,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		progress.UserID,
		progress.CardID,
		progress.Repetitions,
		progress.IntervalDays,
		progress.EaseFactor,
		progress.NextReviewAt,
		lastReviewed,
		progress.ReviewCount,
		progress.CreatedAt,
		progress.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during progress upsert",
				slog.String("card_id", progress.CardID.String()))
			return fmt.Errorf("%w: card with ID %s not found", store.ErrInvalidEntity, progress.CardID)
		}
		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.String("user_id", progress.UserID.String()),
			slog.String("card_id", progress.CardID.String()))
		return MapError(err)
	}

	log.Debug("progress saved",
		slog.String("user_id", progress.UserID.String()),
		slog.String("card_id", progress.CardID.String()),
		slog.Int("interval_days", progress.IntervalDays),
		slog.Time("next_review_at", progress.NextReviewAt))
	return nil
}

// WithTx implements store.ProgressStore.WithTx
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}
