package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func testDeck(t *testing.T) *domain.Deck {
	t.Helper()
	deck, err := domain.NewDeck("Kitchen", "", domain.LanguageSpanish, domain.LanguageEnglish)
	require.NoError(t, err)
	return deck
}

func testCard(t *testing.T, deckID uuid.UUID) *domain.Card {
	t.Helper()
	card, err := domain.NewCard(deckID, domain.CardContent{
		Front:            "cuchara",
		Back:             "spoon",
		GeneratedContext: "La cuchara está en la mesa.",
		State:            domain.ContentStateNormal,
	})
	require.NoError(t, err)
	return card
}

func cardRowColumns() []string {
	return []string{
		"id", "deck_id", "front", "back", "generated_context", "context_translation",
		"context_reading", "content_state", "image_url", "additional_metadata", "created_at", "updated_at",
	}
}
