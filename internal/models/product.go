package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog. The zero value, CategoryAll, is
// only meaningful as a filter and is never valid on a product.
type Category int

const (
	CategoryAll Category = iota
	CategorySaaS
	CategoryTradingBots
	CategoryTemplates
	CategoryDigitalAssets
	CategoryCybersecurity
	CategoryEcommerceDev
)

// Categories lists the product categories in display order.
var Categories = []Category{
	CategorySaaS,
	CategoryTradingBots,
	CategoryTemplates,
	CategoryDigitalAssets,
	CategoryCybersecurity,
	CategoryEcommerceDev,
}

func (c Category) String() string {
	switch c {
	case CategoryAll:
		return "All Solutions"
	case CategorySaaS:
		return "SaaS Software"
	case CategoryTradingBots:
		return "Trading Bots"
	case CategoryTemplates:
		return "Web Templates"
	case CategoryDigitalAssets:
		return "Digital Assets"
	case CategoryCybersecurity:
		return "Cybersecurity"
	case CategoryEcommerceDev:
		return "E-commerce Dev"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory maps a display name (case-insensitive) to its Category.
// "all" is accepted as an alias of CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return CategoryAll, nil
	}
	for _, c := range append([]Category{CategoryAll}, Categories...) {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return CategoryAll, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// BillingModel describes how a product is charged.
type BillingModel int

const (
	BillingUnknown BillingModel = iota
	BillingSubscription
	BillingOneTime
	BillingService
)

func (b BillingModel) String() string {
	switch b {
	case BillingSubscription:
		return "Subscription"
	case BillingOneTime:
		return "One-time"
	case BillingService:
		return "Service"
	default:
		return "Unknown"
	}
}

func (b BillingModel) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BillingModel) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "subscription":
		*b = BillingSubscription
	case "one-time", "onetime":
		*b = BillingOneTime
	case "service":
		*b = BillingService
	default:
		return fmt.Errorf("unknown billing model %q", string(text))
	}
	return nil
}

// Product represents a product in the store.
type Product struct {
	ID           string          `json:"id" validate:"omitempty,max=64"`
	Name         string          `json:"name" validate:"required,max=100"`
	Category     Category        `json:"category" validate:"required"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Description  string          `json:"description" validate:"max=500"`
	Image        string          `json:"image" validate:"omitempty,url"`
	Rating       float64         `json:"rating" validate:"gte=0,lte=5"`
	Specs        []string        `json:"specs"`
	BillingModel BillingModel    `json:"billing_model" validate:"required"`
	Disclaimer   string          `json:"disclaimer,omitempty"`
}
