package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrProviderFailed wraps every failure returned by a Provider. Callers
	// do not need to classify the cause any further.
	ErrProviderFailed = errors.New("content generation provider failed")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyResult is returned when the response parses but required fields are blank
	ErrEmptyResult = errors.New("language model returned an empty result")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidInput is returned when a request is missing the word or context
	ErrInvalidInput = errors.New("invalid generation request")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// providerFailure normalises err into a failure wrapping ErrProviderFailed
// while keeping the cause reachable through errors.Is.
func providerFailure(op string, err error) error {
	if errors.Is(err, ErrProviderFailed) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrProviderFailed, op, err)
}
