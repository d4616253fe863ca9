package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexicontext/lexicontext-api/internal/api/shared"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates a trace ID", func(t *testing.T) {
		t.Parallel()
		log, buf := logger.NewTestLogger()

		var seen string
		handler := NewTraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
			logger.FromContext(r.Context()).Info("inside handler")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/decks", nil))

		require.True(t, shared.IsValidTraceID(seen))
		assert.Equal(t, seen, w.Header().Get(shared.TraceIDHeader))

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, entry := range entries {
			assert.Equal(t, seen, entry["trace_id"])
		}
	})

	t.Run("reuses a valid incoming trace ID", func(t *testing.T) {
		t.Parallel()
		const incoming = "0123456789abcdef0123456789abcdef"

		var seen string
		handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(shared.TraceIDHeader, incoming)
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.Equal(t, incoming, seen)
	})

	t.Run("replaces a malformed incoming trace ID", func(t *testing.T) {
		t.Parallel()

		var seen string
		handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(shared.TraceIDHeader, "<script>")
		handler.ServeHTTP(httptest.NewRecorder(), r)

		assert.NotEqual(t, "<script>", seen)
		assert.True(t, shared.IsValidTraceID(seen))
	})
}
