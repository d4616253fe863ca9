package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/service"
)

// ReviewHandler handles study and review HTTP requests
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil for ReviewHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// Routes registers the review endpoints on r.
func (h *ReviewHandler) Routes(r chi.Router) {
	r.Get("/decks/{id}/due", h.DueCards)
	r.Post("/cards/{id}/review", h.SubmitReview)
	r.Post("/cards/{id}/postpone", h.PostponeCard)
}

// SubmitReview handles POST /cards/{id}/review requests
// It records the learner's recall quality and returns the new schedule.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req ReviewRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	userID := uuid.MustParse(req.UserID)
	progress, err := h.reviewService.SubmitReview(r.Context(), userID, cardID, domain.RecallQuality(req.Quality))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("review recorded",
		slog.String("card_id", cardID.String()),
		slog.String("quality", req.Quality),
		slog.Int("interval_days", progress.IntervalDays))
	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}

// PostponeCard handles POST /cards/{id}/postpone requests
func (h *ReviewHandler) PostponeCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req PostponeRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	userID := uuid.MustParse(req.UserID)
	progress, err := h.reviewService.Postpone(r.Context(), userID, cardID, req.Days)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, progressToResponse(progress))
}

// DueCards handles GET /decks/{id}/due?user_id= requests
func (h *ReviewHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		HandleValidationError(w, r, err)
		return
	}

	queue, err := h.reviewService.DueCards(r.Context(), userID, deckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StudyQueueResponse{
		Due: cardsToResponse(queue.Due),
		New: cardsToResponse(queue.New),
	})
}
