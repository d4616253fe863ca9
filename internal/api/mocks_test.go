package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockDeckService mocks the service.DeckService interface
type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) CreateDeck(ctx context.Context, in service.CreateDeckInput) (*domain.Deck, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckService) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckService) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Deck), args.Error(1)
}

func (m *MockDeckService) UpdateDeck(
	ctx context.Context,
	id uuid.UUID,
	in service.UpdateDeckInput,
) (*domain.Deck, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckService) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCardService mocks the service.CardService interface
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) CreateCard(ctx context.Context, in service.CreateCardInput) (*domain.Card, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardService) UpdateCard(
	ctx context.Context,
	id uuid.UUID,
	in service.UpdateCardInput,
) (*domain.Card, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) SimplifyCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewService mocks the service.ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(
	ctx context.Context,
	userID, cardID uuid.UUID,
	quality domain.RecallQuality,
) (*domain.UserCardProgress, error) {
	args := m.Called(ctx, userID, cardID, quality)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCardProgress), args.Error(1)
}

func (m *MockReviewService) Postpone(
	ctx context.Context,
	userID, cardID uuid.UUID,
	days int,
) (*domain.UserCardProgress, error) {
	args := m.Called(ctx, userID, cardID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCardProgress), args.Error(1)
}

func (m *MockReviewService) DueCards(ctx context.Context, userID, deckID uuid.UUID) (*service.StudyQueue, error) {
	args := m.Called(ctx, userID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StudyQueue), args.Error(1)
}
