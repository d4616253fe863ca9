package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCardStore_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores empty optional fields as NULL", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		card := testCard(t, uuid.New())

		mock.ExpectExec("INSERT INTO cards").
			WithArgs(card.ID, card.DeckID, "cuchara", "spoon", "La cuchara está en la mesa.",
				nil, nil, "normal", nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgresCardStore(db, nil).Create(context.Background(), card)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses a card without a back", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		card := testCard(t, uuid.New())
		card.Content.Back = "  "

		err := NewPostgresCardStore(db, nil).Create(context.Background(), card)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrCardBackEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing deck", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO cards").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "cards_deck_id_fkey"})

		err := NewPostgresCardStore(db, nil).Create(context.Background(), testCard(t, uuid.New()))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "deck with ID")
	})
}

func TestPostgresCardStore_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("maps NULL columns to empty strings", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		id, deckID := uuid.New(), uuid.New()

		mock.ExpectQuery("SELECT (.+) FROM cards c WHERE c.id = \\$1").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(cardRowColumns()).AddRow(
				id.String(), deckID.String(), "猫", "cat", "猫が好きです。", "I like cats.",
				"ねこがすきです。", "simplified", nil, nil, fixedNow, fixedNow,
			))

		card, err := NewPostgresCardStore(db, nil).GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, deckID, card.DeckID)
		assert.Equal(t, "ねこがすきです。", card.Content.ContextReading)
		assert.Equal(t, domain.ContentStateSimplified, card.Content.State)
		assert.Empty(t, card.ImageURL)
		assert.Empty(t, card.AdditionalMetadata)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrCardNotFound", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT (.+) FROM cards").WillReturnRows(sqlmock.NewRows(cardRowColumns()))

		_, err := NewPostgresCardStore(db, nil).GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})
}

func TestPostgresCardStore_ListDue(t *testing.T) {
	t.Parallel()

	t.Run("joins progress and orders by due date", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		userID, deckID := uuid.New(), uuid.New()

		mock.ExpectQuery("JOIN user_card_progress p (.+) p.next_review_at <= \\$3 ORDER BY p.next_review_at ASC LIMIT \\$4").
			WithArgs(userID, deckID, fixedNow, 50).
			WillReturnRows(sqlmock.NewRows(cardRowColumns()).
				AddRow(uuid.New().String(), deckID.String(), "uno", "one", nil, nil, nil, "normal", nil, nil, fixedNow, fixedNow).
				AddRow(uuid.New().String(), deckID.String(), "dos", "two", nil, nil, nil, "normal", nil, nil, fixedNow, fixedNow))

		cards, err := NewPostgresCardStore(db, nil).ListDue(context.Background(), userID, deckID, fixedNow, 50)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "uno", cards[0].Content.Front)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-positive limit skips the query", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		cards, err := NewPostgresCardStore(db, nil).ListDue(context.Background(), uuid.New(), uuid.New(), fixedNow, 0)
		require.NoError(t, err)
		assert.Empty(t, cards)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCardStore_ListNew(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	userID, deckID := uuid.New(), uuid.New()

	mock.ExpectQuery("LEFT JOIN user_card_progress p (.+) p.card_id IS NULL").
		WithArgs(userID, deckID, 20).
		WillReturnRows(sqlmock.NewRows(cardRowColumns()))

	cards, err := NewPostgresCardStore(db, nil).ListNew(context.Background(), userID, deckID, 20)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_UpdateInTransaction(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	card := testCard(t, uuid.New())
	card.Content.State = domain.ContentStateSimplified

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cards").
		WithArgs(card.ID, "cuchara", "spoon", sqlmock.AnyArg(), nil, nil, "simplified",
			nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cards := NewPostgresCardStore(db, nil)
	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return cards.WithTx(tx).Update(ctx, card)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCardStore_UpdateMissing(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE cards").WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPostgresCardStore(db, nil).Update(context.Background(), testCard(t, uuid.New()))
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestPostgresCardStore_Delete(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	id := uuid.New()
	mock.ExpectExec("DELETE FROM cards WHERE id = \\$1").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewPostgresCardStore(db, nil).Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
