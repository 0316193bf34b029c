package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lumina/internal/models"

	"github.com/sirupsen/logrus"
)

var ErrInvalidBackup = errors.New("invalid backup document")

// BackupService exports and imports the catalog and the order ledger.
type BackupService struct {
	products *ProductService
	orders   *OrderService
	logger   *logrus.Logger
	now      func() time.Time
}

// NewBackupService creates a new BackupService.
func NewBackupService(products *ProductService, orders *OrderService, logger *logrus.Logger) *BackupService {
	return &BackupService{
		products: products,
		orders:   orders,
		logger:   logger,
		now:      time.Now,
	}
}

// Export snapshots the catalog and the ledger.
func (s *BackupService) Export() (*models.Backup, error) {
	products, err := s.products.GetAllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	orders, err := s.orders.GetAllOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return &models.Backup{
		Products:  products,
		Orders:    orders,
		Timestamp: s.now().UTC(),
		Version:   models.BackupVersion,
	}, nil
}

// ImportResult tells which collections a restore replaced.
type ImportResult struct {
	Products int  `json:"products"`
	Orders   int  `json:"orders"`
	Catalog  bool `json:"catalog_replaced"`
	Ledger   bool `json:"ledger_replaced"`
}

// Import replaces the catalog and/or the ledger with the arrays present in
// raw. Nothing changes unless the whole document is valid; if the ledger
// cannot be written after the catalog was, the catalog is put back.
func (s *BackupService) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	products, hasProducts, err := decodeArray[models.Product](doc, "products")
	if err != nil {
		return nil, err
	}
	orders, hasOrders, err := decodeArray[models.Order](doc, "orders")
	if err != nil {
		return nil, err
	}
	if !hasProducts && !hasOrders {
		return nil, fmt.Errorf("%w: neither products nor orders present", ErrInvalidBackup)
	}
	if hasProducts {
		if err := s.products.ValidateCatalog(products); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
		}
	}

	result := &ImportResult{}
	var previous []models.Product
	if hasProducts {
		if previous, err = s.products.GetAllProducts(); err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
		if err := s.products.ReplaceCatalog(ctx, products); err != nil {
			return nil, fmt.Errorf("failed to restore catalog: %w", err)
		}
		result.Catalog, result.Products = true, len(products)
	}
	if hasOrders {
		if err := s.orders.ReplaceLedger(ctx, orders); err != nil {
			if hasProducts {
				if rbErr := s.products.ReplaceCatalog(ctx, previous); rbErr != nil {
					s.logger.WithError(rbErr).Error("Failed to roll back catalog after ledger restore failure")
				}
			}
			return nil, fmt.Errorf("failed to restore ledger: %w", err)
		}
		result.Ledger, result.Orders = true, len(orders)
	}

	s.logger.WithFields(logrus.Fields{"products": result.Products, "orders": result.Orders}).Info("Backup restored")
	return result, nil
}

// FactoryReset restores the seed catalog and empties the ledger and the
// owned items.
func (s *BackupService) FactoryReset(ctx context.Context) error {
	if err := s.products.RestoreDefaults(ctx); err != nil {
		return fmt.Errorf("failed to restore default catalog: %w", err)
	}
	if err := s.orders.ClearLedger(ctx); err != nil {
		return err
	}
	if err := s.orders.ClearOwned(ctx); err != nil {
		return err
	}
	s.logger.Warn("Factory reset completed")
	return nil
}

// decodeArray reads doc[key] as a JSON array. A missing or null key is
// reported as absent; any other non-array value is invalid.
func decodeArray[T any](doc map[string]json.RawMessage, key string) ([]T, bool, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false, fmt.Errorf("%w: %s is not an array", ErrInvalidBackup, key)
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrInvalidBackup, key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}
