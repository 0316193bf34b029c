package repositories

import (
	"context"
	"sync"
)

// Slot keys of the persisted collections.
const (
	SlotProducts = "products"
	SlotOrders   = "orders"
	SlotOwned    = "owned"
)

// SlotStore persists whole collections as opaque values under fixed keys.
// Every Save overwrites the previous value.
type SlotStore interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// MemorySlotStore is an in-memory implementation of SlotStore.
type MemorySlotStore struct {
	slots map[string][]byte
	mu    sync.RWMutex
}

// NewMemorySlotStore creates a new instance of MemorySlotStore.
func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{
		slots: make(map[string][]byte),
	}
}

// Load returns a copy of the value stored under key.
func (s *MemorySlotStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Save replaces the value stored under key.
func (s *MemorySlotStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}
