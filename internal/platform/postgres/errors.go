package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// SQLSTATE codes from the integrity constraint violation class (23xxx).
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// constraintMessages names the rule behind each CHECK constraint declared in
// the migrations, so a rejected row reports which field was wrong.
var constraintMessages = map[string]string{
	"decks_title_not_blank":         "deck title must not be blank",
	"decks_languages_differ":        "target and native language must differ",
	"decks_proficiency_level_check": "unknown proficiency level",
	"decks_daily_limits_positive":   "daily limits must be positive",
	"cards_front_not_blank":         "card front must not be blank",
	"cards_back_not_blank":          "card back must not be blank",
	"cards_content_state_check":     "unknown content state",
	"progress_repetitions_check":    "repetitions must not be negative",
	"progress_interval_check":       "interval out of range",
	"progress_ease_factor_check":    "ease factor below minimum",
	"progress_review_count_check":   "review count must not be negative",
}

// pgViolation extracts the Postgres error when err carries the given code.
func pgViolation(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return nil, false
	}
	return pgErr, true
}

func isUniqueViolation(err error) bool {
	_, ok := pgViolation(err, uniqueViolationCode)
	return ok
}

func isForeignKeyViolation(err error) bool {
	_, ok := pgViolation(err, foreignKeyViolationCode)
	return ok
}

// MapError translates driver errors into the store sentinels. Errors it does
// not recognise are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return fmt.Errorf("%w: %s", store.ErrDuplicate, pgErr.ConstraintName)
	case foreignKeyViolationCode:
		return fmt.Errorf("%w: missing referenced row (%s)", store.ErrInvalidEntity, pgErr.ConstraintName)
	case checkViolationCode:
		if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", store.ErrInvalidEntity, msg)
		}
		return fmt.Errorf("%w: check %s failed", store.ErrInvalidEntity, pgErr.ConstraintName)
	case notNullViolationCode:
		return fmt.Errorf("%w: %s.%s is required", store.ErrInvalidEntity, pgErr.TableName, pgErr.ColumnName)
	}
	return err
}

// requireRows returns notFound when an UPDATE or DELETE touched nothing.
func requireRows(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
