package cart_test

import (
	"io"
	"sync"
	"testing"

	"lumina/internal/cart"
	"lumina/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart() *cart.Cart {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return cart.New(logger)
}

func product(id string, price int64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price)}
}

func TestAddMergesByProductID(t *testing.T) {
	c := newCart()
	p := product("a", 10)

	c.Add(p)
	c.Add(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c := newCart()
	c.Add(product("b", 1))
	c.Add(product("a", 1))
	c.Add(product("b", 1))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "b", lines[0].Product.ID)
	assert.Equal(t, "a", lines[1].Product.ID)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	c := newCart()
	c.Add(product("a", 10))

	c.UpdateQuantity("a", 4)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	c.UpdateQuantity("a", -100)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	c := newCart()
	c.Add(product("a", 10))

	c.UpdateQuantity("missing", 3)
	c.Remove("missing")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := newCart()
	c.Add(product("a", 10))
	c.Add(product("b", 5))

	c.Remove("a")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].Product.ID)
}

func TestTotalIsRecomputed(t *testing.T) {
	c := newCart()
	assert.True(t, c.Total().IsZero())

	c.Add(product("a", 50))
	c.UpdateQuantity("a", 1)
	c.Add(product("b", 10))
	assert.Equal(t, "110", c.Total().String())

	c.Remove("b")
	assert.Equal(t, "100", c.Total().String())

	c.Clear()
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.Len())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := newCart()
	c.Add(product("a", 10))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestConcurrentAdds(t *testing.T) {
	c := newCart()
	p := product("a", 1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(p)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Lines()[0].Quantity)
}
