package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

const cardColumns = `c.id, c.deck_id, c.front, c.back, c.generated_context, c.context_translation,
		c.context_reading, c.content_state, c.image_url, c.additional_metadata, c.created_at, c.updated_at`

// Create implements store.CardStore.Create
// Returns store.ErrInvalidEntity if the card is invalid or its deck does not exist.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cards (id, deck_id, front, back, generated_context, context_translation,
			context_reading, content_state, image_url, additional_metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		card.ID,
		card.DeckID,
		card.Content.Front,
		card.Content.Back,
		nullString(card.Content.GeneratedContext),
		nullString(card.Content.ContextTranslation),
		nullString(card.Content.ContextReading),
		string(card.Content.State),
		nullString(card.ImageURL),
		nullString(card.AdditionalMetadata),
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during card creation",
				slog.String("card_id", card.ID.String()),
				slog.String("deck_id", card.DeckID.String()))
			return fmt.Errorf("%w: deck with ID %s not found", store.ErrInvalidEntity, card.DeckID)
		}
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return MapError(err)
	}

	log.Info("card created successfully",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", card.DeckID.String()))
	return nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.id = $1
	`
	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, MapError(err)
	}
	return card, nil
}

// ListByDeck implements store.CardStore.ListByDeck
func (s *PostgresCardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.deck_id = $1
		ORDER BY c.created_at ASC
	`
	return s.queryCards(ctx, "list cards by deck", query, deckID)
}

// ListDue implements store.CardStore.ListDue
func (s *PostgresCardStore) ListDue(
	ctx context.Context,
	userID, deckID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Card, error) {
	if limit <= 0 {
		return []*domain.Card{}, nil
	}

	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		JOIN user_card_progress p ON p.card_id = c.id
		WHERE p.user_id = $1
			AND c.deck_id = $2
			AND p.next_review_at <= $3
		ORDER BY p.next_review_at ASC
		LIMIT $4
	`
	return s.queryCards(ctx, "list due cards", query, userID, deckID, now.UTC(), limit)
}

// ListNew implements store.CardStore.ListNew
func (s *PostgresCardStore) ListNew(
	ctx context.Context,
	userID, deckID uuid.UUID,
	limit int,
) ([]*domain.Card, error) {
	if limit <= 0 {
		return []*domain.Card{}, nil
	}

	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN user_card_progress p ON p.card_id = c.id AND p.user_id = $1
		WHERE c.deck_id = $2
			AND p.card_id IS NULL
		ORDER BY c.created_at ASC
		LIMIT $3
	`
	return s.queryCards(ctx, "list new cards", query, userID, deckID, limit)
}

// Update implements store.CardStore.Update
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during update",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE cards
		SET front = $2, back = $3, generated_context = $4, context_translation = $5,
			context_reading = $6, content_state = $7, image_url = $8,
			additional_metadata = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		card.ID,
		card.Content.Front,
		card.Content.Back,
		nullString(card.Content.GeneratedContext),
		nullString(card.Content.ContextTranslation),
		nullString(card.Content.ContextReading),
		string(card.Content.State),
		nullString(card.ImageURL),
		nullString(card.AdditionalMetadata),
		card.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return MapError(err)
	}

	if err := requireRows(result, store.ErrCardNotFound); err != nil {
		return err
	}

	log.Info("card updated successfully",
		slog.String("card_id", card.ID.String()),
		slog.String("content_state", string(card.Content.State)))
	return nil
}

// Delete implements store.CardStore.Delete
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return MapError(err)
	}

	if err := requireRows(result, store.ErrCardNotFound); err != nil {
		return err
	}

	log.Info("card deleted successfully", slog.String("card_id", id.String()))
	return nil
}

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresCardStore) queryCards(ctx context.Context, op, query string, args ...any) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to "+op, slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating card rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug(op, slog.Int("count", len(cards)))
	return cards, nil
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card                            domain.Card
		state                           string
		generated, translation, reading sql.NullString
		imageURL, metadata              sql.NullString
	)
	err := row.Scan(
		&card.ID,
		&card.DeckID,
		&card.Content.Front,
		&card.Content.Back,
		&generated,
		&translation,
		&reading,
		&state,
		&imageURL,
		&metadata,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Content.GeneratedContext = generated.String
	card.Content.ContextTranslation = translation.String
	card.Content.ContextReading = reading.String
	card.Content.State = domain.ContentState(state)
	card.ImageURL = imageURL.String
	card.AdditionalMetadata = metadata.String
	return &card, nil
}

// nullString stores empty optional text as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
