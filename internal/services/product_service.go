package services

import (
	"context"
	"errors"
	"fmt"

	"lumina/internal/filter"
	"lumina/internal/models"
	"lumina/internal/repositories"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ErrMissingProductID is returned when a replacement catalog holds a
// product without an ID.
var ErrMissingProductID = errors.New("product id is required")

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validation.New(),
		logger:   logger,
	}
}

// GetAllProducts retrieves the whole catalog in insertion order.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// Browse returns the catalog narrowed by criteria.
func (s *ProductService) Browse(criteria filter.Criteria) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return filter.Apply(products, criteria), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Categories lists the categories a product can belong to.
func (s *ProductService) Categories() []models.Category {
	return append([]models.Category{}, models.Categories...)
}

// ValidateProduct checks a product before it enters the catalog. The
// returned error is a validator.ValidationErrors.
func (s *ProductService) ValidateProduct(product *models.Product) error {
	return s.validate.Struct(product)
}

// CreateProduct validates and appends a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.ValidateProduct(product); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"product_id": product.ID, "name": product.Name}).Info("Product created")
	return nil
}

// UpdateProduct validates and replaces an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := s.ValidateProduct(product); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	s.logger.WithField("product_id", product.ID).Info("Product updated")
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("Product deleted")
	return nil
}

// ValidateCatalog checks every product of a replacement catalog. IDs must
// be present and unique.
func (s *ProductService) ValidateCatalog(products []models.Product) error {
	seen := make(map[string]struct{}, len(products))
	for i := range products {
		if err := s.ValidateProduct(&products[i]); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		id := products[i].ID
		if id == "" {
			return fmt.Errorf("product %d: %w", i, ErrMissingProductID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("product %d: %q: %w", i, id, repositories.ErrDuplicateProduct)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ReplaceCatalog validates the catalog and then overwrites it.
func (s *ProductService) ReplaceCatalog(ctx context.Context, products []models.Product) error {
	if err := s.ValidateCatalog(products); err != nil {
		return err
	}
	return s.repo.ReplaceAll(ctx, products)
}

// RestoreDefaults puts the seed catalog back.
func (s *ProductService) RestoreDefaults(ctx context.Context) error {
	return s.repo.ReplaceAll(ctx, repositories.DefaultProducts())
}
