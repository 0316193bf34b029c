package models_test

import (
	"encoding/json"
	"testing"

	"lumina/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]models.Category{
		"all":            models.CategoryAll,
		"All Solutions":  models.CategoryAll,
		"saas software":  models.CategorySaaS,
		" Trading Bots ": models.CategoryTradingBots,
		"E-commerce Dev": models.CategoryEcommerceDev,
	}
	for in, want := range cases {
		got, err := models.ParseCategory(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := models.ParseCategory("Toys")
	assert.Error(t, err)
}

func TestProductJSON(t *testing.T) {
	raw := []byte(`{"id":"x","name":"Bot","category":"Trading Bots","price":"19.99","rating":4.2,"billing_model":"One-time","specs":["a"]}`)

	var p models.Product
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.Equal(t, models.CategoryTradingBots, p.Category)
	assert.Equal(t, models.BillingOneTime, p.BillingModel)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"category":"Trading Bots"`)
	assert.Contains(t, string(out), `"billing_model":"One-time"`)
	assert.NotContains(t, string(out), "disclaimer")

	assert.Error(t, json.Unmarshal([]byte(`{"billing_model":"Lease"}`), &p))
}

func TestCartLineSubtotal(t *testing.T) {
	line := models.CartLine{Product: models.Product{Price: decimal.RequireFromString("12.50")}, Quantity: 3}
	assert.Equal(t, "37.5", line.Subtotal().String())
}
