package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures callers of the services must react to
// differently. The set is closed.
type ErrorKind string

// Error kinds.
const (
	// KindNotFound means a referenced deck or card does not exist.
	KindNotFound ErrorKind = "not_found"

	// KindValidationFailed means caller input violates an invariant.
	KindValidationFailed ErrorKind = "validation_failed"

	// KindGenerationFailed means the provider could not generate context the
	// caller explicitly asked for.
	KindGenerationFailed ErrorKind = "generation_failed"

	// KindTranslationFailed means the fallback word translation failed; the
	// caller should enter the translation manually.
	KindTranslationFailed ErrorKind = "translation_failed"

	// KindSimplificationFailed means the provider could not simplify the context.
	KindSimplificationFailed ErrorKind = "simplification_failed"

	// KindAlreadySimplified means the card was simplified since its last full
	// generation. Retrying will not help.
	KindAlreadySimplified ErrorKind = "already_simplified"
)

// Sentinels matched by errors.Is against an *Error of the same kind.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidationFailed     = errors.New("validation failed")
	ErrGenerationFailed     = errors.New("content generation failed")
	ErrTranslationFailed    = errors.New("translation failed")
	ErrSimplificationFailed = errors.New("simplification failed")
	ErrAlreadySimplified    = errors.New("card already simplified")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindValidationFailed:
		return ErrValidationFailed
	case KindGenerationFailed:
		return ErrGenerationFailed
	case KindTranslationFailed:
		return ErrTranslationFailed
	case KindSimplificationFailed:
		return ErrSimplificationFailed
	case KindAlreadySimplified:
		return ErrAlreadySimplified
	default:
		return nil
	}
}

// Error is the error type returned by the services. Err keeps the
// underlying cause, typically a provider or store error, for logging.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return "", false
}

func newError(kind ErrorKind, op, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewValidationError returns a ValidationFailed error with no cause.
func NewValidationError(op, message string) *Error {
	return newError(KindValidationFailed, op, message, nil)
}

// NewNotFoundError returns a NotFound error wrapping the store error.
func NewNotFoundError(op, message string, err error) *Error {
	return newError(KindNotFound, op, message, err)
}
