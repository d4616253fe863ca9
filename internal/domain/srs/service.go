package srs

import (
	"errors"
	"time"

	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// Common errors
var (
	ErrNilProgress    = errors.New("user card progress cannot be nil")
	ErrInvalidQuality = errors.New("invalid recall quality")
	ErrInvalidDays    = errors.New("postpone days must be at least 1")
)

// Service applies the scheduler to stored learner progress.
type Service interface {
	// CalculateNextReview returns new progress after a review graded with quality.
	CalculateNextReview(
		progress *domain.UserCardProgress,
		quality domain.RecallQuality,
		now time.Time,
	) (*domain.UserCardProgress, error)

	// PostponeReview pushes the next review time forward by days.
	PostponeReview(
		progress *domain.UserCardProgress,
		days int,
		now time.Time,
	) (*domain.UserCardProgress, error)
}

type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters.
func NewDefaultService() (Service, error) {
	return NewServiceWithParams(NewDefaultParams())
}

// NewServiceWithParams creates a new SRS service with custom parameters.
func NewServiceWithParams(params *Params) (Service, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{params: params}, nil
}

// CalculateNextReview implements Service. The input is never modified.
func (s *defaultService) CalculateNextReview(
	progress *domain.UserCardProgress,
	quality domain.RecallQuality,
	now time.Time,
) (*domain.UserCardProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}
	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}

	now = now.UTC()
	next := *progress
	next.RepetitionState = computeNext(
		progress.Repetitions,
		progress.IntervalDays,
		progress.EaseFactor,
		quality,
		now,
		s.params,
	)
	next.ReviewCount++
	next.LastReviewedAt = now
	next.UpdatedAt = now

	return &next, nil
}

// PostponeReview implements Service. The input is never modified.
func (s *defaultService) PostponeReview(
	progress *domain.UserCardProgress,
	days int,
	now time.Time,
) (*domain.UserCardProgress, error) {
	if progress == nil {
		return nil, ErrNilProgress
	}
	if days < 1 {
		return nil, ErrInvalidDays
	}

	next := *progress
	next.NextReviewAt = progress.NextReviewAt.AddDate(0, 0, days)
	next.UpdatedAt = now.UTC()

	return &next, nil
}
