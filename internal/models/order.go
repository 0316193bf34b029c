package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

const (
	// OrderStatusPending is defined for completeness; checkout never produces it.
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// CartLine is a product snapshot plus a quantity, held in a cart or an order.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order represents a completed purchase. Total is fixed at creation time.
type Order struct {
	ID               string          `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	Items            []CartLine      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Currency         string          `json:"currency"`
	CreatedAt        time.Time       `json:"created_at"`
	Status           OrderStatus     `json:"status"`
	PaymentMethod    string          `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
}

// OwnedItem records a product a customer acquired through an order.
type OwnedItem struct {
	OrderID       string    `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	Product       Product   `json:"product"`
	AcquiredAt    time.Time `json:"acquired_at"`
}
