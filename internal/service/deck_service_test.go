package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeckService_CreateDeck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateDeckInput
		wantErr bool
	}{
		{
			name: "defaults applied",
			input: CreateDeckInput{
				Title:          "  Kitchen  ",
				TargetLanguage: domain.LanguageSpanish,
				NativeLanguage: domain.LanguageEnglish,
			},
		},
		{
			name: "same languages",
			input: CreateDeckInput{
				Title:          "Kitchen",
				TargetLanguage: domain.LanguageSpanish,
				NativeLanguage: domain.LanguageSpanish,
			},
			wantErr: true,
		},
		{
			name: "negative limit",
			input: CreateDeckInput{
				Title:            "Kitchen",
				TargetLanguage:   domain.LanguageGerman,
				NativeLanguage:   domain.LanguageEnglish,
				DailyReviewLimit: -1,
			},
			wantErr: true,
		},
		{
			name:    "blank title",
			input:   CreateDeckInput{Title: " ", TargetLanguage: domain.LanguageGerman, NativeLanguage: domain.LanguageEnglish},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decks := &MockDeckStore{}
			svc, err := NewDeckService(decks, nil)
			require.NoError(t, err)

			if !tt.wantErr {
				decks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Deck")).Return(nil)
			}

			deck, err := svc.CreateDeck(ctx, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
				decks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Kitchen", deck.Title)
			assert.Equal(t, domain.DefaultDailyNewCardsLimit, deck.DailyNewCardsLimit)
			assert.Equal(t, domain.DefaultDailyReviewLimit, deck.DailyReviewLimit)
			assert.Equal(t, domain.ToneNeutral, deck.Tone)
			decks.AssertExpectations(t)
		})
	}
}

func TestDeckService_UpdateDeck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("keeps languages and limits", func(t *testing.T) {
		t.Parallel()
		decks := &MockDeckStore{}
		svc, err := NewDeckService(decks, nil)
		require.NoError(t, err)

		current, err := domain.NewDeck("Kitchen", "", domain.LanguageJapanese, domain.LanguageEnglish)
		require.NoError(t, err)
		decks.On("GetByID", mock.Anything, current.ID).Return(current, nil)
		decks.On("Update", mock.Anything, mock.Anything).Return(nil)

		updated, err := svc.UpdateDeck(ctx, current.ID, UpdateDeckInput{
			Title:            "Cooking",
			ProficiencyLevel: domain.ProficiencyAdvanced,
			Tone:             domain.ToneHumorous,
		})
		require.NoError(t, err)
		assert.Equal(t, "Cooking", updated.Title)
		assert.Equal(t, domain.LanguageJapanese, updated.TargetLanguage)
		assert.Equal(t, domain.ProficiencyAdvanced, updated.ProficiencyLevel)
		assert.Equal(t, domain.DefaultDailyReviewLimit, updated.DailyReviewLimit)
		assert.Equal(t, "Kitchen", current.Title)
	})

	t.Run("missing deck", func(t *testing.T) {
		t.Parallel()
		decks := &MockDeckStore{}
		svc, err := NewDeckService(decks, nil)
		require.NoError(t, err)
		decks.On("GetByID", mock.Anything, mock.Anything).Return(nil, store.ErrDeckNotFound)

		_, err = svc.UpdateDeck(ctx, uuid.New(), UpdateDeckInput{Title: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeckService_GetListDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	decks := &MockDeckStore{}
	svc, err := NewDeckService(decks, nil)
	require.NoError(t, err)

	missing := uuid.New()
	decks.On("GetByID", mock.Anything, missing).Return(nil, store.ErrDeckNotFound)
	decks.On("List", mock.Anything).Return([]*domain.Deck{}, nil)
	decks.On("Delete", mock.Anything, missing).Return(store.ErrDeckNotFound)

	_, err = svc.GetDeck(ctx, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListDecks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.DeleteDeck(ctx, missing), ErrNotFound)
}

func TestNewDeckService_NilStore(t *testing.T) {
	t.Parallel()
	_, err := NewDeckService(nil, nil)
	assert.Error(t, err)
}
