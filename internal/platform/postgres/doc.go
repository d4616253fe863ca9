// Package postgres provides the PostgreSQL implementations of the storage
// interfaces defined in internal/store, together with the embedded goose
// migrations that create their schema.
//
// Stores accept a store.DBTX, so the same code runs against a *sql.DB or
// inside a transaction obtained through store.RunInTransaction.
package postgres
