package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lexicontext/lexicontext-api/internal/domain"
	"github.com/lexicontext/lexicontext-api/internal/domain/srs"
	"github.com/lexicontext/lexicontext-api/internal/platform/logger"
	"github.com/lexicontext/lexicontext-api/internal/store"
)

// StudyQueue is what a learner should study in a deck right now.
type StudyQueue struct {
	// Due holds studied cards whose next review has come, most overdue first.
	Due []*domain.Card `json:"due"`

	// New holds cards the learner has never reviewed, oldest first.
	New []*domain.Card `json:"new"`
}

// ReviewService records reviews and schedules the next ones.
type ReviewService interface {
	// SubmitReview grades a review of cardID and returns the new progress.
	// A first review starts from fresh progress.
	SubmitReview(
		ctx context.Context,
		userID, cardID uuid.UUID,
		quality domain.RecallQuality,
	) (*domain.UserCardProgress, error)

	// Postpone pushes the next review of an already studied card by days.
	Postpone(ctx context.Context, userID, cardID uuid.UUID, days int) (*domain.UserCardProgress, error)

	// DueCards returns the study queue of a deck, capped by the deck's
	// daily limits.
	DueCards(ctx context.Context, userID, deckID uuid.UUID) (*StudyQueue, error)
}

type reviewServiceImpl struct {
	db       store.TxBeginner
	cards    store.CardStore
	decks    store.DeckStore
	progress store.ProgressStore
	srs      srs.Service
	logger   *slog.Logger
	now      func() time.Time
}

// Ensure reviewServiceImpl implements ReviewService interface
var _ ReviewService = (*reviewServiceImpl)(nil)

// NewReviewService creates a new ReviewService.
// It returns an error if any of the required dependencies are nil.
func NewReviewService(
	db store.TxBeginner,
	cards store.CardStore,
	decks store.DeckStore,
	progress store.ProgressStore,
	srsService srs.Service,
	logger *slog.Logger,
) (ReviewService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if progress == nil {
		return nil, domain.NewValidationError("progress", "cannot be nil", domain.ErrValidation)
	}
	if srsService == nil {
		return nil, domain.NewValidationError("srsService", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:       db,
		cards:    cards,
		decks:    decks,
		progress: progress,
		srs:      srsService,
		logger:   logger.With(slog.String("component", "review_service")),
		now:      time.Now,
	}, nil
}

// SubmitReview implements ReviewService.SubmitReview
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	userID, cardID uuid.UUID,
	quality domain.RecallQuality,
) (*domain.UserCardProgress, error) {
	const op = "submit_review"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, NewValidationError(op, "user id required")
	}
	if !quality.IsValid() {
		return nil, NewValidationError(op, "invalid recall quality")
	}
	if _, err := s.cards.GetByID(ctx, cardID); err != nil {
		return nil, storeError(op, "card", err)
	}

	now := s.now().UTC()
	var updated *domain.UserCardProgress
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProgress := s.progress.WithTx(tx)

		current, err := txProgress.GetForUpdate(ctx, userID, cardID)
		if errors.Is(err, store.ErrProgressNotFound) {
			current, err = domain.NewUserCardProgress(userID, cardID, now)
		}
		if err != nil {
			return err
		}

		updated, err = s.srs.CalculateNextReview(current, quality, now)
		if err != nil {
			return err
		}
		return txProgress.Upsert(ctx, updated)
	})
	if err != nil {
		log.Error("failed to record review",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, storeError(op, "progress", err)
	}

	log.Info("review recorded",
		slog.String("card_id", cardID.String()),
		slog.String("quality", string(quality)),
		slog.Int("interval_days", updated.IntervalDays),
		slog.Float64("ease_factor", updated.EaseFactor))
	return updated, nil
}

// Postpone implements ReviewService.Postpone
func (s *reviewServiceImpl) Postpone(
	ctx context.Context,
	userID, cardID uuid.UUID,
	days int,
) (*domain.UserCardProgress, error) {
	const op = "postpone_review"
	log := logger.FromContextOrDefault(ctx, s.logger)

	if days < 1 {
		return nil, NewValidationError(op, "days must be at least 1")
	}

	var updated *domain.UserCardProgress
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProgress := s.progress.WithTx(tx)

		current, err := txProgress.GetForUpdate(ctx, userID, cardID)
		if err != nil {
			return err
		}
		updated, err = s.srs.PostponeReview(current, days, s.now())
		if err != nil {
			return err
		}
		return txProgress.Upsert(ctx, updated)
	})
	if err != nil {
		return nil, storeError(op, "progress", err)
	}

	log.Info("review postponed",
		slog.String("card_id", cardID.String()),
		slog.Int("days", days),
		slog.Time("next_review_at", updated.NextReviewAt))
	return updated, nil
}

// DueCards implements ReviewService.DueCards
func (s *reviewServiceImpl) DueCards(ctx context.Context, userID, deckID uuid.UUID) (*StudyQueue, error) {
	const op = "due_cards"

	if userID == uuid.Nil {
		return nil, NewValidationError(op, "user id required")
	}
	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, storeError(op, "deck", err)
	}

	due, err := s.cards.ListDue(ctx, userID, deckID, s.now(), deck.DailyReviewLimit)
	if err != nil {
		return nil, storeError(op, "card", err)
	}
	fresh, err := s.cards.ListNew(ctx, userID, deckID, deck.DailyNewCardsLimit)
	if err != nil {
		return nil, storeError(op, "card", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("study queue built",
		slog.String("deck_id", deckID.String()),
		slog.Int("due", len(due)),
		slog.Int("new", len(fresh)))
	return &StudyQueue{Due: due, New: fresh}, nil
}
