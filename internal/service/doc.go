// Package service contains the application use cases. It coordinates the
// domain, the content generation provider and the stores defined in
// internal/store.
//
// Key components:
//
// 1. ContentOrchestrator:
//   - Decides how the back and context fields of a card are populated
//   - Enforces the Normal -> Simplified lifecycle of generated context
//   - Turns provider failures into typed errors
//
// 2. CardService, DeckService, ReviewService:
//   - Look up the entities an operation needs and map store errors
//   - Compute new values first, then write them in a single transaction
//
// 3. Error Handling:
//   - Every failure a caller must react to is an *Error with an ErrorKind
//   - Use errors.Is with the Err* sentinels or KindOf to branch on it
//
// The service layer depends on domain entities and store interfaces, never
// on a specific database or provider implementation.
package service
