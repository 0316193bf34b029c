package repositories

import (
	"context"
	"errors"
	"fmt"

	"lumina/internal/models"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentReferenceUsed = errors.New("payment reference already used")
)

// OrderRepository defines the interface for the order ledger. From the
// application's point of view it is append-only; Reset and ReplaceAll are
// administrative.
type OrderRepository interface {
	Load(ctx context.Context) error
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Append(ctx context.Context, order *models.Order) error
	ReplaceAll(ctx context.Context, orders []models.Order) error
	Reset(ctx context.Context) error
}

// SlotOrderRepository keeps the ledger in the orders slot.
type SlotOrderRepository struct {
	orders *collection[models.Order]
}

// NewSlotOrderRepository creates a new instance of SlotOrderRepository.
func NewSlotOrderRepository(store SlotStore) *SlotOrderRepository {
	return &SlotOrderRepository{
		orders: newCollection[models.Order](store, SlotOrders),
	}
}

// Load reads the ledger from the store.
func (r *SlotOrderRepository) Load(ctx context.Context) error {
	return r.orders.load(ctx, nil)
}

// GetAll returns all orders, oldest first.
func (r *SlotOrderRepository) GetAll() ([]models.Order, error) {
	return r.orders.snapshot(), nil
}

// GetByID returns an order by its ID.
func (r *SlotOrderRepository) GetByID(id string) (*models.Order, error) {
	for _, o := range r.orders.snapshot() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
}

// Append adds an order to the back of the ledger. An order whose payment
// reference is already in the ledger is refused with ErrPaymentReferenceUsed.
func (r *SlotOrderRepository) Append(ctx context.Context, order *models.Order) error {
	return r.orders.update(ctx, func(items []models.Order) ([]models.Order, error) {
		if order.PaymentReference != "" {
			for _, o := range items {
				if o.PaymentReference == order.PaymentReference {
					return nil, fmt.Errorf("reference %s (order %s): %w", order.PaymentReference, o.ID, ErrPaymentReferenceUsed)
				}
			}
		}
		return append(items, *order), nil
	})
}

// ReplaceAll overwrites the ledger.
func (r *SlotOrderRepository) ReplaceAll(ctx context.Context, orders []models.Order) error {
	return r.orders.update(ctx, func([]models.Order) ([]models.Order, error) {
		return append([]models.Order{}, orders...), nil
	})
}

// Reset clears the ledger.
func (r *SlotOrderRepository) Reset(ctx context.Context) error {
	return r.orders.update(ctx, func([]models.Order) ([]models.Order, error) {
		return []models.Order{}, nil
	})
}
