package validation_test

import (
	"errors"
	"testing"

	"lumina/internal/models"
	"lumina/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() models.Product {
	return models.Product{
		ID:           "p1",
		Name:         "TaskFlow Pro",
		Category:     models.CategorySaaS,
		Price:        decimal.NewFromInt(29),
		Rating:       4.8,
		BillingModel: models.BillingSubscription,
	}
}

func TestValidateProduct(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(validProduct()))

	negative := validProduct()
	negative.Price = decimal.NewFromInt(-1)
	err := v.Struct(negative)
	assert.Error(t, err)
	assert.Contains(t, validation.Messages(err), "Price")

	noCategory := validProduct()
	noCategory.Category = models.CategoryAll
	err = v.Struct(noCategory)
	assert.Error(t, err)
	assert.Contains(t, validation.Messages(err), "Category")

	badRating := validProduct()
	badRating.Rating = 5.5
	err = v.Struct(badRating)
	assert.Error(t, err)
	assert.Contains(t, validation.Messages(err), "Rating")
}

func TestMessagesForPlainError(t *testing.T) {
	msgs := validation.Messages(errors.New("boom"))
	assert.Equal(t, map[string]string{"error": "boom"}, msgs)
}
