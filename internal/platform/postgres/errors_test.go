package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lexicontext/lexicontext-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		want    error
		message string
	}{
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
		{
			name: "duplicate key",
			err:  &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "decks_pkey"},
			want: store.ErrDuplicate, message: "decks_pkey",
		},
		{
			name: "missing deck",
			err:  &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "cards_deck_id_fkey"},
			want: store.ErrInvalidEntity, message: "cards_deck_id_fkey",
		},
		{
			name: "known check constraint",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "decks_languages_differ"},
			want: store.ErrInvalidEntity, message: "target and native language must differ",
		},
		{
			name: "unknown check constraint",
			err:  &pgconn.PgError{Code: checkViolationCode, ConstraintName: "cards_extra_check"},
			want: store.ErrInvalidEntity, message: "check cards_extra_check failed",
		},
		{
			name: "null column",
			err:  &pgconn.PgError{Code: notNullViolationCode, TableName: "cards", ColumnName: "front"},
			want: store.ErrInvalidEntity, message: "cards.front is required",
		},
		{
			name: "wrapped driver error",
			err:  fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolationCode}),
			want: store.ErrDuplicate,
		},
		{name: "unmapped", err: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			if tt.message != "" {
				assert.Contains(t, got.Error(), tt.message)
			}
		})
	}

	assert.NoError(t, MapError(nil))
}

func TestConstraintMessagesCoverMigrations(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"decks_title_not_blank",
		"decks_proficiency_level_check",
		"cards_back_not_blank",
		"progress_ease_factor_check",
	} {
		assert.Contains(t, constraintMessages, name)
	}
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: foreignKeyViolationCode})
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, isForeignKeyViolation(errors.New("timeout")))
}

func TestRequireRows(t *testing.T) {
	t.Parallel()

	assert.NoError(t, requireRows(sqlmock.NewResult(0, 1), store.ErrCardNotFound))
	assert.ErrorIs(t, requireRows(sqlmock.NewResult(0, 0), store.ErrDeckNotFound), store.ErrDeckNotFound)
	assert.ErrorIs(t, requireRows(sqlmock.NewResult(0, 0), store.ErrCardNotFound), store.ErrNotFound)

	resultErr := errors.New("driver does not support RowsAffected")
	assert.ErrorIs(t, requireRows(sqlmock.NewErrorResult(resultErr), store.ErrCardNotFound), resultErr)
}
