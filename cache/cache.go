// Package cache provides translated-fields store implementations.
//
// Stores are keyed by content identifier, verbatim. Every store honors a
// single-writer-per-key contract: the first write for an identifier wins and
// later writes are silently dropped, so a stored entry is stable for the
// lifetime of the store.
package cache

import "github.com/ZaguanLabs/puente"

// Store is the interface for the server-side translation cache.
// This is an alias to the main package interface for convenience.
type Store = puente.FieldsStore
