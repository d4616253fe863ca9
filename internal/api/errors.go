package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes without
// leaking their types to clients.
func MapErrorToStatusCode(err error) int {
	kind, ok := service.KindOf(err)
	if !ok {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidID) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}

	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindValidationFailed:
		return http.StatusBadRequest
	case service.KindAlreadySimplified:
		return http.StatusConflict
	case service.KindTranslationFailed:
		return http.StatusUnprocessableEntity
	case service.KindGenerationFailed, service.KindSimplificationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Provider and
// store details never appear in it.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case service.KindNotFound, service.KindValidationFailed:
			if svcErr.Message != "" {
				return capitalize(svcErr.Message)
			}
		case service.KindAlreadySimplified:
			return "Card is already simplified"
		case service.KindTranslationFailed:
			return "Translation is unavailable, enter the translation manually"
		case service.KindGenerationFailed, service.KindSimplificationFailed:
			return "AI unavailable, fill in fields manually"
		}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return capitalize(verr.Error())
	}

	switch MapErrorToStatusCode(err) {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusBadRequest:
		return "Invalid request"
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err. A non-empty
// userMessage replaces the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if kind, ok := service.KindOf(err); ok {
		opts = append(opts, shared.WithErrorKind(string(kind)))
		// the learner can recover, but a run of these means the provider is degraded
		if kind == service.KindTranslationFailed {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), userMessage, err, opts...)
}

// HandleValidationError writes a 400 for a request that failed decoding or
// validation.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err,
		shared.WithErrorKind(string(service.KindValidationFailed)))
}

// SanitizeValidationError turns validator output into a short message naming
// the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return capitalize(domainErr.Error())
	}

	if errors.Is(err, shared.ErrEmptyBody) {
		return "Request body is required"
	}

	return "Invalid request format"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "required_without", "required_if":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too long"
	case "oneof":
		return "invalid value"
	case "url", "http_url":
		return "invalid URL"
	case "uuid", "uuid4":
		return "invalid ID"
	default:
		return "validation failed"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
