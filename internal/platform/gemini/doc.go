// Package gemini provides a content generation backend that uses Google's
// Gemini API through the google.golang.org/genai client.
//
// The package is an infrastructure adapter: it only turns a rendered prompt
// into model text. Prompt rendering, response decoding and error
// normalisation live in the generation package, and NewProvider wires the
// two together.
//
// Safety-blocked responses are reported as generation.ErrContentBlocked, and
// structurally empty responses as generation.ErrInvalidResponse. Requests ask
// for JSON output constrained by a response schema.
package gemini
