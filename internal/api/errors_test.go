package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func kindError(kind service.ErrorKind, message string) error {
	return &service.Error{Kind: kind, Op: "op", Message: message, Err: errors.New("cause")}
}

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", kindError(service.KindNotFound, "card not found"), http.StatusNotFound},
		{"validation", kindError(service.KindValidationFailed, "front required"), http.StatusBadRequest},
		{"already simplified", kindError(service.KindAlreadySimplified, "x"), http.StatusConflict},
		{"translation", kindError(service.KindTranslationFailed, "x"), http.StatusUnprocessableEntity},
		{"generation", kindError(service.KindGenerationFailed, "x"), http.StatusBadGateway},
		{"simplification", kindError(service.KindSimplificationFailed, "x"), http.StatusBadGateway},
		{"wrapped kind", fmt.Errorf("outer: %w", kindError(service.KindNotFound, "x")), http.StatusNotFound},
		{"domain validation", domain.NewValidationError("id", "is required", domain.ErrValidation), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Front required", GetSafeErrorMessage(kindError(service.KindValidationFailed, "front required")))
	assert.Equal(t, "AI unavailable, fill in fields manually",
		GetSafeErrorMessage(kindError(service.KindGenerationFailed, "gemini: 500 internal")))
	assert.Equal(t, "Card is already simplified",
		GetSafeErrorMessage(kindError(service.KindAlreadySimplified, "already simplified")))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: password authentication failed for user admin")))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.ValidateRequest(&ReviewRequest{UserID: "not-a-uuid", Quality: "good"})
	assert.Equal(t, "Invalid user_id: invalid ID", SanitizeValidationError(err))

	assert.Equal(t, "Request body is required", SanitizeValidationError(shared.ErrEmptyBody))
	assert.Equal(t, "Invalid request format", SanitizeValidationError(errors.New("invalid character '}'")))
}
