package srs

import (
	"math"
	"time"

	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// ComputeNext returns the repetition state that follows a review graded with
// quality, using the default parameters.
//
// The ease factor moves by 0.1 - (5-q)(0.08 + (5-q)0.02) and never drops
// below 1.3. A failed recall restarts the sequence with a one-day interval.
// Successful recalls are scheduled 1 day, then 3 days, then
// floor(interval * ease) days out. The interval never exceeds 3650 days.
//
// ComputeNext is pure; inputs are assumed to be validated by the caller.
func ComputeNext(
	repetitions int,
	intervalDays int,
	easeFactor float64,
	quality domain.RecallQuality,
	now time.Time,
) domain.RepetitionState {
	return computeNext(repetitions, intervalDays, easeFactor, quality, now, defaultParams)
}

var defaultParams = NewDefaultParams()

func computeNext(
	repetitions int,
	intervalDays int,
	easeFactor float64,
	quality domain.RecallQuality,
	now time.Time,
	params *Params,
) domain.RepetitionState {
	newEase := calculateNewEaseFactor(easeFactor, quality.Score(), params)

	var newRepetitions, newInterval int
	if quality == domain.RecallFail {
		newRepetitions = 0
		newInterval = params.FailInterval
	} else {
		newRepetitions = repetitions + 1
		switch newRepetitions {
		case 1:
			newInterval = params.FirstInterval
		case 2:
			newInterval = params.SecondInterval
		default:
			newInterval = int(math.Floor(float64(intervalDays) * newEase))
		}
	}

	if newInterval > params.MaxIntervalDays {
		newInterval = params.MaxIntervalDays
	}

	return domain.RepetitionState{
		Repetitions:  newRepetitions,
		IntervalDays: newInterval,
		EaseFactor:   newEase,
		NextReviewAt: now.UTC().AddDate(0, 0, newInterval),
	}
}

// calculateNewEaseFactor applies the SM-2 ease adjustment for score q (0-5).
func calculateNewEaseFactor(current float64, q int, params *Params) float64 {
	d := float64(5 - q)
	newEase := current + (0.1 - d*(0.08+d*0.02))
	return math.Max(newEase, params.MinEaseFactor)
}
