// Package cart holds the line items of an in-progress purchase.
package cart

import (
	"sync"

	"lumina/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Cart is a goroutine-safe list of cart lines keyed by product ID.
// Operations on unknown IDs are no-ops.
type Cart struct {
	mu     sync.RWMutex
	lines  []models.CartLine
	logger *logrus.Logger
}

// New creates an empty cart.
func New(logger *logrus.Logger) *Cart {
	return &Cart{logger: logger}
}

// Add increments the quantity of the product's line, or appends a new line
// with quantity 1.
func (c *Cart) Add(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{Product: product, Quantity: 1})
}

// UpdateQuantity adds delta to the line's quantity, clamping at 1.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		c.logger.WithField("product_id", id).Debug("Quantity update for product not in cart ignored")
		return
	}
	c.lines[i].Quantity = max(1, c.lines[i].Quantity+delta)
}

// Remove deletes the line for id.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		c.logger.WithField("product_id", id).Debug("Removal of product not in cart ignored")
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Total sums price × quantity over the current lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]models.CartLine{}, c.lines...)
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) indexOf(id string) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			return i
		}
	}
	return -1
}
