package store

import (
	"errors"
	"fmt"
)

// Sentinels shared by every store implementation. Callers branch on them with
// errors.Is; implementations wrap them with detail.
var (
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate means a row with the same key already exists.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity covers both pre-write validation and rows the
	// database rejected through a constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	ErrTransactionFailed = errors.New("transaction failed")
)

// Not found variants. Each wraps ErrNotFound.
var (
	ErrDeckNotFound     = fmt.Errorf("%w: deck", ErrNotFound)
	ErrCardNotFound     = fmt.Errorf("%w: card", ErrNotFound)
	ErrProgressNotFound = fmt.Errorf("%w: user card progress", ErrNotFound)
)
