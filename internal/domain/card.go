package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card field limits.
const (
	MaxFrontLength = 200
	MaxBackLength  = 200
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardDeckIDEmpty is returned when a card's deck ID is empty or nil.
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card has no prompt word.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card has no translation.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrCardFieldTooLong is returned when front or back exceed their limit.
	ErrCardFieldTooLong = errors.New("card field is too long")

	// ErrInvalidContentState is returned for an unknown content state.
	ErrInvalidContentState = errors.New("invalid content state")
)

// ContentState is the simplification state of a card's generated context.
// The only transitions are Normal -> Simplified (simplification) and
// Simplified -> Normal (a new full generation).
type ContentState string

// Content states.
const (
	ContentStateNormal     ContentState = "normal"
	ContentStateSimplified ContentState = "simplified"
)

// IsValid reports whether s is a known state.
func (s ContentState) IsValid() bool {
	switch s {
	case ContentStateNormal, ContentStateSimplified:
		return true
	default:
		return false
	}
}

// CardContent holds the learner-facing fields of a card. Empty optional
// strings mean the field is absent.
type CardContent struct {
	Front              string       `json:"front"`
	Back               string       `json:"back"`
	GeneratedContext   string       `json:"generated_context,omitempty"`
	ContextTranslation string       `json:"context_translation,omitempty"`
	ContextReading     string       `json:"context_reading,omitempty"`
	State              ContentState `json:"state"`
}

// IsSimplified reports whether the context has been simplified since the
// last full generation.
func (c CardContent) IsSimplified() bool {
	return c.State == ContentStateSimplified
}

// HasContext reports whether there is generated context to work with.
func (c CardContent) HasContext() bool {
	return strings.TrimSpace(c.GeneratedContext) != ""
}

// Validate checks the content invariants shared by every write.
func (c CardContent) Validate() error {
	if strings.TrimSpace(c.Front) == "" {
		return ErrCardFrontEmpty
	}
	if strings.TrimSpace(c.Back) == "" {
		return ErrCardBackEmpty
	}
	if len([]rune(c.Front)) > MaxFrontLength {
		return fmt.Errorf("%w: front exceeds %d characters", ErrCardFieldTooLong, MaxFrontLength)
	}
	if len([]rune(c.Back)) > MaxBackLength {
		return fmt.Errorf("%w: back exceeds %d characters", ErrCardFieldTooLong, MaxBackLength)
	}
	if !c.State.IsValid() {
		return ErrInvalidContentState
	}
	return nil
}

// Card is a vocabulary flashcard belonging to a deck.
type Card struct {
	ID                 uuid.UUID   `json:"id"`
	DeckID             uuid.UUID   `json:"deck_id"`
	Content            CardContent `json:"content"`
	ImageURL           string      `json:"image_url,omitempty"`
	AdditionalMetadata string      `json:"additional_metadata,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// NewCard creates a new Card in the given deck with the given content.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewCard(deckID uuid.UUID, content CardContent) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}
	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}
	return c.Content.Validate()
}

// WithContent returns a copy of the card carrying content, stamped with now.
// The receiver is left untouched.
func (c *Card) WithContent(content CardContent, now time.Time) *Card {
	updated := *c
	updated.Content = content
	updated.UpdatedAt = now.UTC()
	return &updated
}
