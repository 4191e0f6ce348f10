package cache

import (
	"sync"

	"github.com/ZaguanLabs/puente"
)

// MemoryStore is a thread-safe, process-lifetime in-memory store.
// Entries are never evicted and never overwritten.
type MemoryStore struct {
	entries map[string]puente.TranslatedFields
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]puente.TranslatedFields),
	}
}

// Get retrieves fields for an identifier.
func (s *MemoryStore) Get(id string) (puente.TranslatedFields, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.entries[id]
	return fields, ok
}

// Set stores fields for an identifier. If the identifier already has an
// entry the existing value is kept.
func (s *MemoryStore) Set(id string, fields puente.TranslatedFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; ok {
		return nil
	}

	s.entries[id] = fields
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
