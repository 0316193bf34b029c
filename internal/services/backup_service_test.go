package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"lumina/internal/models"
	"lumina/internal/repositories"
	"lumina/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type backupFixture struct {
	backup   *services.BackupService
	products *services.ProductService
	orders   *services.OrderService
}

func newBackupFixture(t *testing.T, store repositories.SlotStore) backupFixture {
	t.Helper()
	ctx := context.Background()
	productRepo := repositories.NewSlotProductRepository(store, func() []models.Product {
		return []models.Product{validProduct("p1", "Original", 10)}
	})
	orderRepo := repositories.NewSlotOrderRepository(store)
	ownedRepo := repositories.NewSlotOwnedItemRepository(store)
	require.NoError(t, productRepo.Load(ctx))
	require.NoError(t, orderRepo.Load(ctx))
	require.NoError(t, ownedRepo.Load(ctx))

	products := services.NewProductService(productRepo, quietLogger())
	orders := services.NewOrderService(orderRepo, ownedRepo, nil, nil, quietLogger())
	return backupFixture{
		backup:   services.NewBackupService(products, orders, quietLogger()),
		products: products,
		orders:   orders,
	}
}

func TestBackupService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newBackupFixture(t, repositories.NewMemorySlotStore())
	require.NoError(t, source.orders.Record(ctx, sampleOrder("o1", 110)))

	backup, err := source.backup.Export()
	require.NoError(t, err)
	assert.Equal(t, models.BackupVersion, backup.Version)
	assert.False(t, backup.Timestamp.IsZero())

	raw, err := json.Marshal(backup)
	require.NoError(t, err)

	target := newBackupFixture(t, repositories.NewMemorySlotStore())
	result, err := target.backup.Import(ctx, raw)
	require.NoError(t, err)
	assert.True(t, result.Catalog)
	assert.True(t, result.Ledger)

	products, _ := target.products.GetAllProducts()
	assert.Equal(t, []string{"p1"}, productIDs(products))
	orders, _ := target.orders.GetAllOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, "110", orders[0].Total.String())
}

func TestBackupService_ImportPartialDocument(t *testing.T) {
	ctx := context.Background()
	f := newBackupFixture(t, repositories.NewMemorySlotStore())
	require.NoError(t, f.orders.Record(ctx, sampleOrder("o1", 110)))

	result, err := f.backup.Import(ctx, []byte(`{"products":[{"id":"n1","name":"New","category":"Cybersecurity","price":5,"rating":3,"billing_model":"Service"}]}`))
	require.NoError(t, err)
	assert.True(t, result.Catalog)
	assert.False(t, result.Ledger)

	products, _ := f.products.GetAllProducts()
	assert.Equal(t, []string{"n1"}, productIDs(products))
	orders, _ := f.orders.GetAllOrders()
	assert.Len(t, orders, 1, "ledger untouched")
}

func TestBackupService_ImportRejectsInvalidDocuments(t *testing.T) {
	ctx := context.Background()
	f := newBackupFixture(t, repositories.NewMemorySlotStore())

	docs := map[string]string{
		"malformed":         `{"products": [`,
		"neither field":     `{"version":"1.0"}`,
		"products object":   `{"products": {}}`,
		"orders string":     `{"orders": "none"}`,
		"invalid product":   `{"products":[{"id":"x","name":"","category":"SaaS Software","billing_model":"Service"}]}`,
		"unknown category":  `{"products":[{"id":"x","name":"n","category":"Toys","billing_model":"Service"}]}`,
		"top-level array":   `[]`,
		"both null":         `{"products": null, "orders": null}`,
		"orders not orders": `{"orders": [1, 2]}`,
		"duplicate ids":     `{"products":[{"id":"d","name":"a","category":"SaaS Software","billing_model":"Service"},{"id":"d","name":"b","category":"Cybersecurity","billing_model":"Service"}]}`,
		"missing id":        `{"products":[{"name":"a","category":"SaaS Software","billing_model":"Service"}]}`,
		"empty id":          `{"products":[{"id":"","name":"a","category":"SaaS Software","billing_model":"Service"}],"orders":[]}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := f.backup.Import(ctx, []byte(doc))
			assert.ErrorIs(t, err, services.ErrInvalidBackup)
		})
	}

	products, _ := f.products.GetAllProducts()
	assert.Equal(t, []string{"p1"}, productIDs(products))
}

func TestBackupService_ImportRollsBackCatalogWhenLedgerFails(t *testing.T) {
	ctx := context.Background()
	store := new(MockSlotStore)
	store.On("Load", ctx, mock.Anything).Return(nil, false, nil)
	store.On("Save", ctx, repositories.SlotProducts, mock.Anything).Return(nil)
	store.On("Save", ctx, repositories.SlotOrders, mock.Anything).Return(errors.New("disk full"))

	f := newBackupFixture(t, store)
	_, err := f.backup.Import(ctx, []byte(`{"products":[],"orders":[]}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrInvalidBackup)

	products, _ := f.products.GetAllProducts()
	assert.Equal(t, []string{"p1"}, productIDs(products))
	store.AssertNumberOfCalls(t, "Save", 3)
}

func TestBackupService_FactoryReset(t *testing.T) {
	ctx := context.Background()
	f := newBackupFixture(t, repositories.NewMemorySlotStore())
	require.NoError(t, f.orders.Record(ctx, sampleOrder("o1", 110)))
	require.NoError(t, f.products.DeleteProduct(ctx, "p1"))

	require.NoError(t, f.backup.FactoryReset(ctx))

	products, _ := f.products.GetAllProducts()
	assert.Len(t, products, len(repositories.DefaultProducts()))
	orders, _ := f.orders.GetAllOrders()
	assert.Empty(t, orders)
	owned, _ := f.orders.OwnedBy("ada@example.com")
	assert.Empty(t, owned)
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
