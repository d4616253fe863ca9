package srs

import (
	"errors"

	"github.com/lexicontext/lexicontext-api/internal/domain"
)

// ErrInvalidParams is returned when scheduler parameters are inconsistent.
var ErrInvalidParams = errors.New("invalid SRS parameters")

// Params holds the numeric policy of the scheduler.
type Params struct {
	// MinEaseFactor is the floor applied to every computed ease factor.
	MinEaseFactor float64

	// MaxIntervalDays caps every computed interval.
	MaxIntervalDays int

	// FirstInterval and SecondInterval are the fixed intervals used after the
	// first and second consecutive successful recall.
	FirstInterval  int
	SecondInterval int

	// FailInterval is the interval scheduled after a failed recall.
	FailInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	MinEaseFactor   float64
	MaxIntervalDays int
	FirstInterval   int
	SecondInterval  int
	FailInterval    int
}

// NewDefaultParams returns the classic SM-2 policy.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:   domain.MinEaseFactor,
		MaxIntervalDays: domain.MaxIntervalDays,
		FirstInterval:   1,
		SecondInterval:  3,
		FailInterval:    1,
	}
}

// NewParams creates a Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.FailInterval > 0 {
		params.FailInterval = config.FailInterval
	}

	return params
}

// Validate reports whether the parameters can produce a valid schedule.
func (p *Params) Validate() error {
	switch {
	case p == nil:
		return ErrInvalidParams
	case p.MinEaseFactor < domain.MinEaseFactor:
		return errors.Join(ErrInvalidParams, domain.ErrInvalidEaseFactor)
	case p.MaxIntervalDays < 1 || p.MaxIntervalDays > domain.MaxIntervalDays:
		return errors.Join(ErrInvalidParams, domain.ErrInvalidInterval)
	case p.FirstInterval < 1 || p.SecondInterval < 1 || p.FailInterval < 1:
		return errors.Join(ErrInvalidParams, domain.ErrInvalidInterval)
	}
	return nil
}
