// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Errors from LLM SDKs
// routinely echo request URLs and API keys, and driver errors can carry
// connection strings.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order. Provider key formats run before the generic
// key=value rule so the more specific placeholder wins.
var rules = []rule{
	{
		// user:password@ part of database connection strings
		pattern:     regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		// Google API keys (Gemini)
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		// OpenAI style secret keys
		pattern:     regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{16,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`),
		replacement: RedactedKeyPlaceholder,
	},
	{
		// query and form parameters
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|key|token|secret|password|passwd|pwd)=[^&\s"'\[]+`),
		replacement: "${1}=" + RedactionPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
