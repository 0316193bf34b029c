package services

import (
	"context"
	"fmt"

	"lumina/internal/metrics"
	"lumina/internal/models"
	"lumina/internal/repositories"
	"lumina/pkg/rabbitmq"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderEventPublisher announces completed orders.
type OrderEventPublisher interface {
	PublishOrderCompleted(event rabbitmq.OrderCompletedEvent) error
}

// OrderStats summarises the ledger.
type OrderStats struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// OrderService handles business logic related to the order ledger and the
// items customers own.
type OrderService struct {
	orderRepo repositories.OrderRepository
	ownedRepo repositories.OwnedItemRepository
	publisher OrderEventPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, ownedRepo repositories.OwnedItemRepository, publisher OrderEventPublisher, m *metrics.Metrics, logger *logrus.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		ownedRepo: ownedRepo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Record appends a completed order to the ledger. Once the ledger write
// succeeds the order counts as recorded; owned items and the event are
// best effort.
func (s *OrderService) Record(ctx context.Context, order *models.Order) error {
	if err := s.orderRepo.Append(ctx, order); err != nil {
		return fmt.Errorf("failed to append order %s to ledger: %w", order.ID, err)
	}
	log := s.logger.WithFields(logrus.Fields{"order_id": order.ID, "total": order.Total.String()})
	s.metrics.ObserveOrder(order.Total)

	owned := make([]models.OwnedItem, 0, len(order.Items))
	for _, line := range order.Items {
		owned = append(owned, models.OwnedItem{
			OrderID:       order.ID,
			CustomerEmail: order.CustomerEmail,
			Product:       line.Product,
			AcquiredAt:    order.CreatedAt,
		})
	}
	if err := s.ownedRepo.AppendAll(ctx, owned); err != nil {
		log.WithError(err).Error("Failed to record owned items")
	}

	if s.publisher == nil {
		log.Debug("Order event publisher not configured. Skipping event.")
	} else if err := s.publisher.PublishOrderCompleted(rabbitmq.OrderCompletedEvent{
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total,
		Currency:      order.Currency,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish order completed event")
	}

	log.Info("Order recorded")
	return nil
}

// GetAllOrders retrieves the ledger, oldest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Stats returns the order count and the revenue sum.
func (s *OrderService) Stats() (OrderStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return OrderStats{}, err
	}
	stats := OrderStats{Count: len(orders), Revenue: decimal.Zero}
	for _, o := range orders {
		stats.Revenue = stats.Revenue.Add(o.Total)
	}
	return stats, nil
}

// OwnedBy lists the products acquired by email.
func (s *OrderService) OwnedBy(email string) ([]models.OwnedItem, error) {
	return s.ownedRepo.GetByEmail(email)
}

// ClearLedger removes every order.
func (s *OrderService) ClearLedger(ctx context.Context) error {
	if err := s.orderRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}
	s.logger.Warn("Order ledger cleared")
	return nil
}

// ClearOwned removes every owned item.
func (s *OrderService) ClearOwned(ctx context.Context) error {
	if err := s.ownedRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to clear owned items: %w", err)
	}
	return nil
}

// ReplaceLedger overwrites the ledger with orders.
func (s *OrderService) ReplaceLedger(ctx context.Context, orders []models.Order) error {
	return s.orderRepo.ReplaceAll(ctx, orders)
}
