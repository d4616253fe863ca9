package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseFormat describes the JSON object a prompt asks the model for.
// Adapters may use it to request structured output. Required is what the
// model is asked to return, not what the decoders enforce: a blank
// wordTranslation in a context response is accepted here and caught by the
// orchestrator's "back required" check when the card has no back.
type ResponseFormat struct {
	Name     string
	Fields   []string
	Required []string
}

// Response formats of the three prompts.
var (
	ContextFormat = ResponseFormat{
		Name:     "card_context",
		Fields:   []string{"generatedContext", "contextTranslation", "contextReading", "wordTranslation"},
		Required: []string{"generatedContext", "contextTranslation", "wordTranslation"},
	}
	TranslationFormat = ResponseFormat{
		Name:     "word_translation",
		Fields:   []string{"translation"},
		Required: []string{"translation"},
	}
	SimplifyFormat = ResponseFormat{
		Name:     "simplified_context",
		Fields:   []string{"generatedContext", "contextTranslation", "contextReading"},
		Required: []string{"generatedContext", "contextTranslation"},
	}
)

// ExtractJSON strips markdown code fences and surrounding prose from model
// output, returning the outermost JSON object.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		// skip the language identifier line
		if newline := strings.Index(content[start:], "\n"); newline != -1 {
			start += newline + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		} else {
			content = content[start:]
		}
	}

	content = strings.TrimSpace(content)

	if start := strings.Index(content, "{"); start != -1 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	return strings.TrimSpace(content)
}

func decodeContext(raw string) (*ContextResult, error) {
	var result ContextResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	trimContext(&result.GeneratedContext, &result.ContextTranslation, &result.ContextReading)
	result.WordTranslation = strings.TrimSpace(result.WordTranslation)

	if result.GeneratedContext == "" || result.ContextTranslation == "" {
		return nil, fmt.Errorf("%w: missing context or its translation", ErrEmptyResult)
	}
	return &result, nil
}

func decodeTranslation(raw string) (string, error) {
	var result struct {
		Translation string `json:"translation"`
	}
	if err := decode(raw, &result); err != nil {
		return "", err
	}

	translation := strings.TrimSpace(result.Translation)
	if translation == "" {
		return "", fmt.Errorf("%w: missing translation", ErrEmptyResult)
	}
	return translation, nil
}

func decodeSimplified(raw string) (*SimplifiedContext, error) {
	var result SimplifiedContext
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	trimContext(&result.GeneratedContext, &result.ContextTranslation, &result.ContextReading)

	if result.GeneratedContext == "" || result.ContextTranslation == "" {
		return nil, fmt.Errorf("%w: missing simplified context or its translation", ErrEmptyResult)
	}
	return &result, nil
}

func decode(raw string, v any) error {
	body := ExtractJSON(raw)
	if body == "" {
		return fmt.Errorf("%w: empty response", ErrEmptyResult)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func trimContext(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
