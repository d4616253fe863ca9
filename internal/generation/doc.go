// Package generation defines the content generation capability used when
// cards are authored: example sentences for a word, lightweight word
// translation, and simplification of an existing example to a lower
// proficiency level.
//
// The Provider interface is the boundary between the application core and
// LLM backends. LLMProvider implements it on top of any Completer, so a
// backend adapter (see platform/gemini and platform/openai) only has to turn
// a prompt into raw model text. Every failure a Provider returns wraps
// ErrProviderFailed.
package generation
