package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecallQuality is the learner's self-reported judgment of a review.
type RecallQuality string

// Possible recall quality values, from complete failure to easy recall.
const (
	RecallFail RecallQuality = "fail"
	RecallHard RecallQuality = "hard"
	RecallGood RecallQuality = "good"
	RecallEasy RecallQuality = "easy"
)

// Score returns the SM-2 grade (0-5) of the quality. Fail is the only
// failing grade; the passing grades are the conventional 3, 4 and 5.
func (q RecallQuality) Score() int {
	switch q {
	case RecallHard:
		return 3
	case RecallGood:
		return 4
	case RecallEasy:
		return 5
	default:
		return 0
	}
}

// IsValid reports whether q is a known quality.
func (q RecallQuality) IsValid() bool {
	switch q {
	case RecallFail, RecallHard, RecallGood, RecallEasy:
		return true
	default:
		return false
	}
}

// ParseRecallQuality converts a case-insensitive quality name.
func ParseRecallQuality(s string) (RecallQuality, error) {
	q := RecallQuality(strings.ToLower(strings.TrimSpace(s)))
	if !q.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecallQuality, s)
	}
	return q, nil
}

// Repetition defaults for a card that has never been studied.
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxIntervalDays   = 3650
)

// Progress validation errors
var (
	ErrProgressUserIDEmpty = errors.New("progress user ID cannot be empty")
	ErrProgressCardIDEmpty = errors.New("progress card ID cannot be empty")
	ErrInvalidRepetitions  = errors.New("repetitions must be greater than or equal to 0")
	ErrInvalidInterval     = errors.New("interval must be between 0 and 3650 days")
	ErrInvalidEaseFactor   = errors.New("ease factor must be at least 1.3")
)

// RepetitionState is the spaced-repetition schedule of a learner-card pair
// after a review. Values are never mutated in place.
type RepetitionState struct {
	Repetitions  int       `json:"repetitions"`
	IntervalDays int       `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// UserCardProgress tracks a learner's repetition state for one card.
type UserCardProgress struct {
	UserID         uuid.UUID `json:"user_id"`
	CardID         uuid.UUID `json:"card_id"`
	RepetitionState
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	ReviewCount    int       `json:"review_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUserCardProgress creates progress for a card the learner studies for the
// first time. The card is due immediately.
func NewUserCardProgress(userID, cardID uuid.UUID, now time.Time) (*UserCardProgress, error) {
	now = now.UTC()
	progress := &UserCardProgress{
		UserID: userID,
		CardID: cardID,
		RepetitionState: RepetitionState{
			Repetitions:  0,
			IntervalDays: 0,
			EaseFactor:   InitialEaseFactor,
			NextReviewAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}
	return progress, nil
}

// Validate checks if the UserCardProgress has valid data.
func (p *UserCardProgress) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrProgressUserIDEmpty
	}
	if p.CardID == uuid.Nil {
		return ErrProgressCardIDEmpty
	}
	if p.Repetitions < 0 {
		return ErrInvalidRepetitions
	}
	if p.IntervalDays < 0 || p.IntervalDays > MaxIntervalDays {
		return ErrInvalidInterval
	}
	if p.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}
	return nil
}

// IsDue reports whether the card should be reviewed at now.
func (p *UserCardProgress) IsDue(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}
