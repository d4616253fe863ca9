package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/service"
)

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(deckService service.DeckService, logger *slog.Logger) *DeckHandler {
	if deckService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckService cannot be nil for DeckHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		deckService: deckService,
		logger:      logger.With(slog.String("component", "deck_handler")),
	}
}

// Routes registers the deck endpoints on r.
func (h *DeckHandler) Routes(r chi.Router) {
	r.Post("/decks", h.CreateDeck)
	r.Get("/decks", h.ListDecks)
	r.Get("/decks/{id}", h.GetDeck)
	r.Put("/decks/{id}", h.UpdateDeck)
	r.Delete("/decks/{id}", h.DeleteDeck)
}

// CreateDeck handles POST /decks requests
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateDeckRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	in, err := req.toInput()
	if err != nil {
		HandleValidationError(w, r, err)
		return
	}

	deck, err := h.deckService.CreateDeck(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(deck))
}

// ListDecks handles GET /decks requests
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckService.ListDecks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]DeckResponse, 0, len(decks))
	for _, deck := range decks {
		resp = append(resp, deckToResponse(deck))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetDeck handles GET /decks/{id} requests
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), deckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// UpdateDeck handles PUT /decks/{id} requests
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateDeckRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	in, err := req.toInput()
	if err != nil {
		HandleValidationError(w, r, err)
		return
	}

	deck, err := h.deckService.UpdateDeck(r.Context(), deckID, in)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// DeleteDeck handles DELETE /decks/{id} requests. Cards of the deck and
// their review progress go with it.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.deckService.DeleteDeck(r.Context(), deckID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
