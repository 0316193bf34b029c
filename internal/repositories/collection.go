package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// collection keeps one slot's items in memory. Memory is the source of
// truth; commit persists the full next state before swapping it in, so a
// failed save leaves the collection unchanged.
type collection[T any] struct {
	store SlotStore
	key   string

	mu    sync.RWMutex
	items []T
}

func newCollection[T any](store SlotStore, key string) *collection[T] {
	return &collection[T]{store: store, key: key}
}

// load reads the slot, falling back to defaults when it does not exist yet.
func (c *collection[T]) load(ctx context.Context, defaults func() []T) error {
	raw, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		return err
	}

	var items []T
	switch {
	case ok:
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("failed to decode slot %s: %w", c.key, err)
		}
	case defaults != nil:
		items = defaults()
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T{}, c.items...)
}

// update builds the next state from a copy of the current one and commits it.
func (c *collection[T]) update(ctx context.Context, mutate func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := mutate(append([]T{}, c.items...))
	if err != nil {
		return err
	}
	if next == nil {
		next = []T{}
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, raw); err != nil {
		return err
	}
	c.items = next
	return nil
}
