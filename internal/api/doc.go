// Package api exposes the deck, card and review services over HTTP. It
// decodes and validates requests, maps service error kinds to status codes
// and writes JSON responses through the shared package.
package api
