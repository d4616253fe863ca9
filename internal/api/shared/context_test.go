package shared

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	withTrace := SetTraceID(ctx)
	traceID := GetTraceID(withTrace)
	assert.Len(t, traceID, 32)
	assert.True(t, IsValidTraceID(traceID))

	// the parent context is untouched
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceID_WrongType(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceID_Unique(t *testing.T) {
	t.Parallel()
	const iterations = 500
	seen := make(map[string]struct{}, iterations)
	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		_, err := hex.DecodeString(id)
		assert.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, iterations)
}

func TestGenerateFallbackTraceID(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 42, time.UTC)

	id := generateFallbackTraceID(now)
	assert.True(t, IsValidTraceID(id))
	assert.Equal(t, id, generateFallbackTraceID(now))
	assert.NotEqual(t, id, generateFallbackTraceID(now.Add(time.Nanosecond)))
}

func TestIsValidTraceID(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidTraceID("0123456789abcdef0123456789abcdef"))
	assert.False(t, IsValidTraceID(""))
	assert.False(t, IsValidTraceID("0123456789abcdef"))
	assert.False(t, IsValidTraceID("zz23456789abcdef0123456789abcdef"))
}
