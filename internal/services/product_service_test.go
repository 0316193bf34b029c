package services_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"lumina/internal/filter"
	"lumina/internal/models"
	"lumina/internal/repositories"
	"lumina/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceAll(ctx context.Context, products []models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func validProduct(id, name string, price int64) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Category:     models.CategorySaaS,
		Price:        decimal.NewFromInt(price),
		Rating:       4.5,
		BillingModel: models.BillingSubscription,
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	expectedProducts := []models.Product{
		validProduct("1", "Product A", 10),
		validProduct("2", "Product B", 20),
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Browse(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	mockRepo.On("GetAll").Return([]models.Product{
		validProduct("1", "Cheap", 10),
		validProduct("2", "Pricey", 9000),
	}, nil).Once()

	products, err := service.Browse(filter.Default())
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	expectedProduct := &models.Product{ID: "1", Name: "Product A"}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrProductNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	newProduct := validProduct("", "New Product", 50)

	// Test successful creation
	mockRepo.On("Create", ctx, &newProduct).Return(nil).Once()
	err := service.CreateProduct(ctx, &newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., storage error)
	mockRepo.On("Create", ctx, &newProduct).Return(errors.New("database error")).Once()
	err = service.CreateProduct(ctx, &newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductValidation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	cases := map[string]models.Product{
		"missing name":     {Category: models.CategorySaaS, BillingModel: models.BillingService},
		"no category":      {Name: "x", BillingModel: models.BillingService},
		"negative price":   {Name: "x", Category: models.CategorySaaS, Price: decimal.NewFromInt(-1), BillingModel: models.BillingService},
		"rating too high":  {Name: "x", Category: models.CategorySaaS, Rating: 5.1, BillingModel: models.BillingService},
		"no billing model": {Name: "x", Category: models.CategorySaaS},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			err := service.CreateProduct(ctx, &p)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	updatedProduct := validProduct("1", "Product A Updated", 12)

	// Test successful update
	mockRepo.On("Update", ctx, &updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(ctx, &updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (product not found in repo)
	missing := validProduct("99", "NonExistent", 1)
	mockRepo.On("Update", ctx, &missing).Return(fmt.Errorf("product with ID 99 not found for update: %w", repositories.ErrProductNotFound)).Once()
	err = service.UpdateProduct(ctx, &missing)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	// Test successful deletion
	mockRepo.On("Delete", ctx, "1").Return(nil).Once()
	err := service.DeleteProduct(ctx, "1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (product not found)
	mockRepo.On("Delete", ctx, "99").Return(fmt.Errorf("product with ID 99 not found for deletion: %w", repositories.ErrProductNotFound)).Once()
	err = service.DeleteProduct(ctx, "99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}

func TestProductService_RestoreDefaults(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	mockRepo.On("ReplaceAll", ctx, mock.MatchedBy(func(p []models.Product) bool {
		return len(p) == len(repositories.DefaultProducts())
	})).Return(nil).Once()

	assert.NoError(t, service.RestoreDefaults(ctx))
	mockRepo.AssertExpectations(t)
}

func TestProductService_ReplaceCatalogRequiresUniqueIDs(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, quietLogger())

	err := service.ReplaceCatalog(ctx, []models.Product{validProduct("a", "One", 1), validProduct("a", "Two", 2)})
	assert.ErrorIs(t, err, repositories.ErrDuplicateProduct)

	err = service.ReplaceCatalog(ctx, []models.Product{validProduct("a", "One", 1), validProduct("", "Two", 2)})
	assert.ErrorIs(t, err, services.ErrMissingProductID)

	mockRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)

	catalog := []models.Product{validProduct("a", "One", 1), validProduct("b", "Two", 2)}
	mockRepo.On("ReplaceAll", ctx, catalog).Return(nil).Once()
	assert.NoError(t, service.ReplaceCatalog(ctx, catalog))
	mockRepo.AssertExpectations(t)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	service := services.NewProductService(new(MockProductRepository), quietLogger())
	for _, p := range repositories.DefaultProducts() {
		assert.NoError(t, service.ValidateProduct(&p), p.ID)
	}
	assert.NoError(t, service.ValidateCatalog(repositories.DefaultProducts()))
}
