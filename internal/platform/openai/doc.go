// Package openai provides a content generation backend for OpenAI and any
// endpoint that speaks the OpenAI chat completions protocol, using
// github.com/sashabaranov/go-openai.
package openai
