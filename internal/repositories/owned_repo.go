package repositories

import (
	"context"
	"strings"

	"lumina/internal/models"
)

// OwnedItemRepository defines the interface for products acquired by customers.
type OwnedItemRepository interface {
	Load(ctx context.Context) error
	GetAll() ([]models.OwnedItem, error)
	GetByEmail(email string) ([]models.OwnedItem, error)
	AppendAll(ctx context.Context, items []models.OwnedItem) error
	Reset(ctx context.Context) error
}

// SlotOwnedItemRepository keeps owned items in the owned slot.
type SlotOwnedItemRepository struct {
	items *collection[models.OwnedItem]
}

// NewSlotOwnedItemRepository creates a new instance of SlotOwnedItemRepository.
func NewSlotOwnedItemRepository(store SlotStore) *SlotOwnedItemRepository {
	return &SlotOwnedItemRepository{
		items: newCollection[models.OwnedItem](store, SlotOwned),
	}
}

func (r *SlotOwnedItemRepository) Load(ctx context.Context) error {
	return r.items.load(ctx, nil)
}

func (r *SlotOwnedItemRepository) GetAll() ([]models.OwnedItem, error) {
	return r.items.snapshot(), nil
}

// GetByEmail returns the items owned by a customer, matching the email
// case-insensitively.
func (r *SlotOwnedItemRepository) GetByEmail(email string) ([]models.OwnedItem, error) {
	owned := []models.OwnedItem{}
	for _, item := range r.items.snapshot() {
		if strings.EqualFold(item.CustomerEmail, email) {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

func (r *SlotOwnedItemRepository) AppendAll(ctx context.Context, items []models.OwnedItem) error {
	return r.items.update(ctx, func(current []models.OwnedItem) ([]models.OwnedItem, error) {
		return append(current, items...), nil
	})
}

func (r *SlotOwnedItemRepository) Reset(ctx context.Context) error {
	return r.items.update(ctx, func([]models.OwnedItem) ([]models.OwnedItem, error) {
		return []models.OwnedItem{}, nil
	})
}
