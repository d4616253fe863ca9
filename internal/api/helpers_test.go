package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/api/middleware"
	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

type routeRegistrar interface {
	Routes(r chi.Router)
}

// newTestRouter mounts the handlers under /api behind the trace middleware.
func newTestRouter(handlers ...routeRegistrar) http.Handler {
	log, _ := logger.NewTestLogger()
	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	r.Route("/api", func(r chi.Router) {
		for _, h := range handlers {
			h.Routes(r)
		}
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testDeck() *domain.Deck {
	return &domain.Deck{
		ID:                 uuid.New(),
		Title:              "Na targu",
		Description:        "Market vocabulary",
		TargetLanguage:     domain.LanguagePolish,
		NativeLanguage:     domain.LanguageEnglish,
		ProficiencyLevel:   domain.ProficiencyIntermediate,
		Tone:               domain.ToneCasual,
		DailyNewCardsLimit: 20,
		DailyReviewLimit:   200,
		CreatedAt:          fixedTime,
		UpdatedAt:          fixedTime,
	}
}

func testCard(deckID uuid.UUID) *domain.Card {
	return &domain.Card{
		ID:     uuid.New(),
		DeckID: deckID,
		Content: domain.CardContent{
			Front:              "jabłko",
			Back:               "apple",
			GeneratedContext:   "Kupiłem jabłko na targu.",
			ContextTranslation: "I bought an apple at the market.",
			State:              domain.ContentStateNormal,
		},
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}
