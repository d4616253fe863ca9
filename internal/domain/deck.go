package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck limits.
const (
	MaxDeckTitleLength       = 100
	MaxDeckDescriptionLength = 500

	DefaultDailyNewCardsLimit = 20
	DefaultDailyReviewLimit   = 50
)

// Deck-specific validation errors
var (
	ErrDeckIDEmpty          = errors.New("deck ID cannot be empty")
	ErrDeckTitleEmpty       = errors.New("deck title cannot be empty")
	ErrDeckTitleTooLong     = errors.New("deck title is too long")
	ErrDeckDescriptionLong  = errors.New("deck description is too long")
	ErrDeckSameLanguages    = errors.New("native and target languages cannot be the same")
	ErrDeckInvalidDayLimits = errors.New("daily limits must be positive")
)

// Deck groups cards studied in one target language. Its localization and
// personalization fields drive content generation for every card it owns.
type Deck struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	IsPublic           bool             `json:"is_public"`
	TargetLanguage     Language         `json:"target_language"`
	NativeLanguage     Language         `json:"native_language"`
	ProficiencyLevel   ProficiencyLevel `json:"proficiency_level"`
	Tone               Tone             `json:"tone"`
	DailyNewCardsLimit int              `json:"daily_new_cards_limit"`
	DailyReviewLimit   int              `json:"daily_review_limit"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// DeckPersonalization is the read-only view of a deck that content
// generation needs. The title doubles as the topical context.
type DeckPersonalization struct {
	TargetLanguage   Language
	NativeLanguage   Language
	ProficiencyLevel ProficiencyLevel
	Tone             Tone
	Title            string
}

// NewDeck creates a deck with default limits and a neutral tone.
// Returns an error if validation fails.
func NewDeck(title, description string, target, native Language) (*Deck, error) {
	now := time.Now().UTC()
	deck := &Deck{
		ID:                 uuid.New(),
		Title:              strings.TrimSpace(title),
		Description:        description,
		TargetLanguage:     target,
		NativeLanguage:     native,
		ProficiencyLevel:   ProficiencyBeginner,
		Tone:               ToneNeutral,
		DailyNewCardsLimit: DefaultDailyNewCardsLimit,
		DailyReviewLimit:   DefaultDailyReviewLimit,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrDeckTitleEmpty
	}
	if len([]rune(d.Title)) > MaxDeckTitleLength {
		return ErrDeckTitleTooLong
	}
	if len([]rune(d.Description)) > MaxDeckDescriptionLength {
		return ErrDeckDescriptionLong
	}
	if !d.TargetLanguage.IsValid() || !d.NativeLanguage.IsValid() {
		return ErrInvalidLanguage
	}
	if d.TargetLanguage == d.NativeLanguage {
		return ErrDeckSameLanguages
	}
	if !d.ProficiencyLevel.IsValid() {
		return ErrInvalidProficiencyLevel
	}
	if !d.Tone.IsValid() {
		return ErrInvalidTone
	}
	if d.DailyNewCardsLimit <= 0 || d.DailyReviewLimit <= 0 {
		return ErrDeckInvalidDayLimits
	}
	return nil
}

// Personalization returns the generation settings of the deck.
func (d *Deck) Personalization() DeckPersonalization {
	return DeckPersonalization{
		TargetLanguage:   d.TargetLanguage,
		NativeLanguage:   d.NativeLanguage,
		ProficiencyLevel: d.ProficiencyLevel,
		Tone:             d.Tone,
		Title:            d.Title,
	}
}
