package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/generation"
	"github.com/lexicontext/lexicontext-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProvider mocks the generation.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GenerateContext(
	ctx context.Context,
	req generation.ContextRequest,
) (*generation.ContextResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.ContextResult), args.Error(1)
}

func (m *MockProvider) TranslateWord(
	ctx context.Context,
	word string,
	target, native domain.Language,
) (string, error) {
	args := m.Called(ctx, word, target, native)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Simplify(
	ctx context.Context,
	req generation.SimplifyRequest,
) (*generation.SimplifiedContext, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generation.SimplifiedContext), args.Error(1)
}

// MockCardStore mocks the store.CardStore interface
type MockCardStore struct {
	mock.Mock
}

func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardStore) ListDue(
	ctx context.Context,
	userID, deckID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Card, error) {
	args := m.Called(ctx, userID, deckID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardStore) ListNew(
	ctx context.Context,
	userID, deckID uuid.UUID,
	limit int,
) ([]*domain.Card, error) {
	args := m.Called(ctx, userID, deckID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardStore) Update(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the same mock so expectations stay in one place.
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}

// MockDeckStore mocks the store.DeckStore interface
type MockDeckStore struct {
	mock.Mock
}

func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckStore) List(ctx context.Context) ([]*domain.Deck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Deck), args.Error(1)
}

func (m *MockDeckStore) Update(ctx context.Context, deck *domain.Deck) error {
	args := m.Called(ctx, deck)
	return args.Error(0)
}

func (m *MockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressStore mocks the store.ProgressStore interface
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Get(ctx context.Context, userID, cardID uuid.UUID) (*domain.UserCardProgress, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCardProgress), args.Error(1)
}

func (m *MockProgressStore) GetForUpdate(
	ctx context.Context,
	userID, cardID uuid.UUID,
) (*domain.UserCardProgress, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCardProgress), args.Error(1)
}

func (m *MockProgressStore) Upsert(ctx context.Context, progress *domain.UserCardProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// WithTx returns the same mock so expectations stay in one place.
func (m *MockProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return m
}
