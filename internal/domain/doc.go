// Package domain contains the core vocabulary-learning entities: decks and
// their personalization settings, cards and their generated context, and the
// per-learner repetition progress. It is independent of storage, transport and
// the content generation backend.
package domain
