// Package store defines the persistence contracts for decks, cards and
// learner progress, the shared store errors, and transaction helpers.
// Implementations live in platform packages (see platform/postgres).
package store
