package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/service"
)

// CreateDeckRequest is the body of POST /decks.
type CreateDeckRequest struct {
	Title              string `json:"title"                           validate:"required,max=100"`
	Description        string `json:"description,omitempty"           validate:"max=500"`
	IsPublic           bool   `json:"is_public"`
	TargetLanguage     string `json:"target_language"                 validate:"required,oneof=english ukrainian german polish spanish french italian chinese japanese,nefield=NativeLanguage"`
	NativeLanguage     string `json:"native_language"                 validate:"required,oneof=english ukrainian german polish spanish french italian chinese japanese"`
	ProficiencyLevel   string `json:"proficiency_level"               validate:"required,oneof=beginner intermediate advanced"`
	Tone               string `json:"tone,omitempty"                  validate:"omitempty,oneof=neutral casual formal humorous"`
	DailyNewCardsLimit int    `json:"daily_new_cards_limit,omitempty" validate:"omitempty,min=1,max=1000"`
	DailyReviewLimit   int    `json:"daily_review_limit,omitempty"    validate:"omitempty,min=1,max=10000"`
}

func (req CreateDeckRequest) toInput() (service.CreateDeckInput, error) {
	level, err := domain.ParseProficiencyLevel(req.ProficiencyLevel)
	if err != nil {
		return service.CreateDeckInput{}, domain.NewValidationError("proficiency_level", "is invalid", err)
	}
	return service.CreateDeckInput{
		Title:              req.Title,
		Description:        req.Description,
		IsPublic:           req.IsPublic,
		TargetLanguage:     domain.Language(req.TargetLanguage),
		NativeLanguage:     domain.Language(req.NativeLanguage),
		ProficiencyLevel:   level,
		Tone:               domain.Tone(req.Tone),
		DailyNewCardsLimit: req.DailyNewCardsLimit,
		DailyReviewLimit:   req.DailyReviewLimit,
	}, nil
}

// UpdateDeckRequest is the body of PUT /decks/{id}. Languages cannot change.
type UpdateDeckRequest struct {
	Title              string `json:"title"                           validate:"required,max=100"`
	Description        string `json:"description,omitempty"           validate:"max=500"`
	IsPublic           bool   `json:"is_public"`
	ProficiencyLevel   string `json:"proficiency_level"               validate:"required,oneof=beginner intermediate advanced"`
	Tone               string `json:"tone,omitempty"                  validate:"omitempty,oneof=neutral casual formal humorous"`
	DailyNewCardsLimit int    `json:"daily_new_cards_limit,omitempty" validate:"omitempty,min=1,max=1000"`
	DailyReviewLimit   int    `json:"daily_review_limit,omitempty"    validate:"omitempty,min=1,max=10000"`
}

func (req UpdateDeckRequest) toInput() (service.UpdateDeckInput, error) {
	level, err := domain.ParseProficiencyLevel(req.ProficiencyLevel)
	if err != nil {
		return service.UpdateDeckInput{}, domain.NewValidationError("proficiency_level", "is invalid", err)
	}
	return service.UpdateDeckInput{
		Title:              req.Title,
		Description:        req.Description,
		IsPublic:           req.IsPublic,
		ProficiencyLevel:   level,
		Tone:               domain.Tone(req.Tone),
		DailyNewCardsLimit: req.DailyNewCardsLimit,
		DailyReviewLimit:   req.DailyReviewLimit,
	}, nil
}

// CreateCardRequest is the body of POST /cards. An empty back is filled
// from the generated context or by translating the front. The context
// fields are replaced when generate_context is set.
type CreateCardRequest struct {
	DeckID             string `json:"deck_id"                       validate:"required,uuid"`
	Front              string `json:"front"                         validate:"required,max=200"`
	Back               string `json:"back,omitempty"                validate:"max=200"`
	GeneratedContext   string `json:"generated_context,omitempty"   validate:"max=1000"`
	ContextTranslation string `json:"context_translation,omitempty" validate:"max=1000"`
	ContextReading     string `json:"context_reading,omitempty"     validate:"max=1000"`
	GenerateContext    bool   `json:"generate_context"`
	ImageURL           string `json:"image_url,omitempty"           validate:"omitempty,url,max=2048"`
	AdditionalMetadata string `json:"additional_metadata,omitempty" validate:"max=2000"`
}

func (req CreateCardRequest) toInput() service.CreateCardInput {
	return service.CreateCardInput{
		DeckID:             uuid.MustParse(req.DeckID),
		Front:              req.Front,
		Back:               req.Back,
		GeneratedContext:   req.GeneratedContext,
		ContextTranslation: req.ContextTranslation,
		ContextReading:     req.ContextReading,
		GenerateContext:    req.GenerateContext,
		ImageURL:           req.ImageURL,
		AdditionalMetadata: req.AdditionalMetadata,
	}
}

// UpdateCardRequest is the body of PUT /cards/{id}. The context fields are
// ignored when generate_context is set.
type UpdateCardRequest struct {
	Front              string `json:"front"                         validate:"required,max=200"`
	Back               string `json:"back"                          validate:"required,max=200"`
	GeneratedContext   string `json:"generated_context,omitempty"   validate:"max=1000"`
	ContextTranslation string `json:"context_translation,omitempty" validate:"max=1000"`
	ContextReading     string `json:"context_reading,omitempty"     validate:"max=1000"`
	GenerateContext    bool   `json:"generate_context"`
	ImageURL           string `json:"image_url,omitempty"           validate:"omitempty,url,max=2048"`
	AdditionalMetadata string `json:"additional_metadata,omitempty" validate:"max=2000"`
}

func (req UpdateCardRequest) toInput() service.UpdateCardInput {
	return service.UpdateCardInput{
		Front:              req.Front,
		Back:               req.Back,
		GeneratedContext:   req.GeneratedContext,
		ContextTranslation: req.ContextTranslation,
		ContextReading:     req.ContextReading,
		GenerateContext:    req.GenerateContext,
		ImageURL:           req.ImageURL,
		AdditionalMetadata: req.AdditionalMetadata,
	}
}

// ReviewRequest is the body of POST /cards/{id}/review.
type ReviewRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Quality string `json:"quality" validate:"required,oneof=fail hard good easy"`
}

// PostponeRequest is the body of POST /cards/{id}/postpone.
type PostponeRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Days   int    `json:"days"    validate:"required,min=1,max=365"`
}

// DeckResponse is the JSON representation of a deck.
type DeckResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	IsPublic           bool      `json:"is_public"`
	TargetLanguage     string    `json:"target_language"`
	NativeLanguage     string    `json:"native_language"`
	ProficiencyLevel   string    `json:"proficiency_level"`
	Tone               string    `json:"tone"`
	DailyNewCardsLimit int       `json:"daily_new_cards_limit"`
	DailyReviewLimit   int       `json:"daily_review_limit"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func deckToResponse(deck *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:                 deck.ID,
		Title:              deck.Title,
		Description:        deck.Description,
		IsPublic:           deck.IsPublic,
		TargetLanguage:     string(deck.TargetLanguage),
		NativeLanguage:     string(deck.NativeLanguage),
		ProficiencyLevel:   deck.ProficiencyLevel.String(),
		Tone:               string(deck.Tone),
		DailyNewCardsLimit: deck.DailyNewCardsLimit,
		DailyReviewLimit:   deck.DailyReviewLimit,
		CreatedAt:          deck.CreatedAt,
		UpdatedAt:          deck.UpdatedAt,
	}
}

// CardResponse is the JSON representation of a card with its content
// flattened.
type CardResponse struct {
	ID                 uuid.UUID `json:"id"`
	DeckID             uuid.UUID `json:"deck_id"`
	Front              string    `json:"front"`
	Back               string    `json:"back"`
	GeneratedContext   string    `json:"generated_context,omitempty"`
	ContextTranslation string    `json:"context_translation,omitempty"`
	ContextReading     string    `json:"context_reading,omitempty"`
	IsSimplified       bool      `json:"is_simplified"`
	ImageURL           string    `json:"image_url,omitempty"`
	AdditionalMetadata string    `json:"additional_metadata,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:                 card.ID,
		DeckID:             card.DeckID,
		Front:              card.Content.Front,
		Back:               card.Content.Back,
		GeneratedContext:   card.Content.GeneratedContext,
		ContextTranslation: card.Content.ContextTranslation,
		ContextReading:     card.Content.ContextReading,
		IsSimplified:       card.Content.IsSimplified(),
		ImageURL:           card.ImageURL,
		AdditionalMetadata: card.AdditionalMetadata,
		CreatedAt:          card.CreatedAt,
		UpdatedAt:          card.UpdatedAt,
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardToResponse(card))
	}
	return out
}

// ProgressResponse is the review state of a card for one learner.
type ProgressResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	CardID         uuid.UUID `json:"card_id"`
	Repetitions    int       `json:"repetitions"`
	IntervalDays   int       `json:"interval_days"`
	EaseFactor     float64   `json:"ease_factor"`
	NextReviewAt   time.Time `json:"next_review_at"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	ReviewCount    int       `json:"review_count"`
}

func progressToResponse(p *domain.UserCardProgress) ProgressResponse {
	return ProgressResponse{
		UserID:         p.UserID,
		CardID:         p.CardID,
		Repetitions:    p.Repetitions,
		IntervalDays:   p.IntervalDays,
		EaseFactor:     p.EaseFactor,
		NextReviewAt:   p.NextReviewAt,
		LastReviewedAt: p.LastReviewedAt,
		ReviewCount:    p.ReviewCount,
	}
}

// StudyQueueResponse lists the cards a learner should study in a deck today.
type StudyQueueResponse struct {
	Due []CardResponse `json:"due"`
	New []CardResponse `json:"new"`
}
