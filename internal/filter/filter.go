// Package filter computes the visible slice of the catalog for a set of
// browsing criteria.
package filter

import (
	"strings"

	"lumina/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultMaxPrice is the price ceiling applied when no other is configured.
var DefaultMaxPrice = decimal.NewFromInt(5000)

// Criteria holds the browsing filters of one session. A nil Semantic set
// means semantic narrowing is not active; a non-nil empty set matches nothing.
type Criteria struct {
	Category  models.Category `json:"category"`
	MaxPrice  decimal.Decimal `json:"max_price"`
	MinRating float64         `json:"min_rating"`
	Query     string          `json:"query"`
	Semantic  []string        `json:"semantic"`
}

// Default returns criteria that narrow nothing but the default price ceiling.
func Default() Criteria {
	return WithMaxPrice(DefaultMaxPrice)
}

// WithMaxPrice returns default criteria with the given price ceiling.
func WithMaxPrice(maxPrice decimal.Decimal) Criteria {
	return Criteria{
		Category: models.CategoryAll,
		MaxPrice: maxPrice,
	}
}

// Reset restores every field to defaults in a single assignment.
func (c *Criteria) Reset(defaults Criteria) {
	*c = defaults.Clone()
}

// Clone returns a copy that shares no memory with c.
func (c Criteria) Clone() Criteria {
	if c.Semantic != nil {
		c.Semantic = append([]string{}, c.Semantic...)
	}
	return c
}

// Apply returns the products matching c, in catalog order. It never returns
// nil and never fails.
func Apply(products []models.Product, c Criteria) []models.Product {
	var semantic map[string]struct{}
	if c.Semantic != nil {
		semantic = make(map[string]struct{}, len(c.Semantic))
		for _, id := range c.Semantic {
			semantic[id] = struct{}{}
		}
	}
	query := strings.ToLower(c.Query)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Category != models.CategoryAll && p.Category != c.Category {
			continue
		}
		if p.Price.GreaterThan(c.MaxPrice) || p.Rating < c.MinRating {
			continue
		}
		if semantic != nil {
			if _, ok := semantic[p.ID]; !ok {
				continue
			}
		} else if query != "" && !matchesText(p, query) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesText(p models.Product, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Description), lowerQuery)
}
