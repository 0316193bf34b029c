package repositories

import (
	"context"
	"errors"
	"fmt"

	"lumina/internal/models"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the interface for catalog data access. Products
// keep their insertion order.
type ProductRepository interface {
	Load(ctx context.Context) error
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// SlotProductRepository keeps the catalog in the products slot. The default
// catalog is served until the slot is first written.
type SlotProductRepository struct {
	products *collection[models.Product]
	defaults func() []models.Product
}

// NewSlotProductRepository creates a new instance of SlotProductRepository.
func NewSlotProductRepository(store SlotStore, defaults func() []models.Product) *SlotProductRepository {
	return &SlotProductRepository{
		products: newCollection[models.Product](store, SlotProducts),
		defaults: defaults,
	}
}

// Load reads the catalog from the store.
func (r *SlotProductRepository) Load(ctx context.Context) error {
	return r.products.load(ctx, r.defaults)
}

// GetAll returns all products.
func (r *SlotProductRepository) GetAll() ([]models.Product, error) {
	return r.products.snapshot(), nil
}

// GetByID returns a product by its ID.
func (r *SlotProductRepository) GetByID(id string) (*models.Product, error) {
	for _, p := range r.products.snapshot() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
}

// Create appends a new product, generating an ID when none is given.
func (r *SlotProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.products.update(ctx, func(items []models.Product) ([]models.Product, error) {
		if indexOfProduct(items, product.ID) >= 0 {
			return nil, fmt.Errorf("product with ID %s: %w", product.ID, ErrDuplicateProduct)
		}
		return append(items, *product), nil
	})
}

// Update replaces an existing product in place.
func (r *SlotProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.products.update(ctx, func(items []models.Product) ([]models.Product, error) {
		i := indexOfProduct(items, product.ID)
		if i < 0 {
			return nil, fmt.Errorf("product with ID %s not found for update: %w", product.ID, ErrProductNotFound)
		}
		items[i] = *product
		return items, nil
	})
}

// Delete removes a product by its ID.
func (r *SlotProductRepository) Delete(ctx context.Context, id string) error {
	return r.products.update(ctx, func(items []models.Product) ([]models.Product, error) {
		i := indexOfProduct(items, id)
		if i < 0 {
			return nil, fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrProductNotFound)
		}
		return append(items[:i], items[i+1:]...), nil
	})
}

// ReplaceAll overwrites the whole catalog.
func (r *SlotProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	return r.products.update(ctx, func([]models.Product) ([]models.Product, error) {
		return append([]models.Product{}, products...), nil
	})
}

func indexOfProduct(items []models.Product, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
