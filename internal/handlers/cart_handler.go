package handlers

import (
	"lumina/internal/cart"
	"lumina/internal/middleware"
	"lumina/internal/services"
	"lumina/internal/session"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const cartLocked = "Cart is locked while a payment is in progress"

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	products *services.ProductService
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(products *services.ProductService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		products: products,
		validate: validation.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// AddItemRequest represents the request body for adding a product.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateQuantityRequest represents the request body for a quantity change.
// A zero delta leaves the line as it is.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

// HandleGetCart returns the cart contents and total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(cartView(middleware.CurrentSession(c), false))
}

// HandleAddItem adds one unit of a catalog product and opens the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	product, err := h.products.GetProductByID(req.ProductID)
	if err != nil {
		return respondError(c, h.logger, err, "Could not add product to cart")
	}
	if err := s.Checkout.MutateCart(func(ct *cart.Cart) { ct.Add(*product) }); err != nil {
		return respondError(c, h.logger, err, cartLocked)
	}
	return c.Status(fiber.StatusCreated).JSON(cartView(s, true))
}

// HandleUpdateQuantity changes a line's quantity by delta. Quantities never
// drop below one; unknown products are ignored.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	id := c.Params("id")
	if err := s.Checkout.MutateCart(func(ct *cart.Cart) { ct.UpdateQuantity(id, req.Delta) }); err != nil {
		return respondError(c, h.logger, err, cartLocked)
	}
	return c.JSON(cartView(s, true))
}

// HandleRemoveItem removes a product's line. Unknown products are ignored.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := c.Params("id")
	if err := s.Checkout.MutateCart(func(ct *cart.Cart) { ct.Remove(id) }); err != nil {
		return respondError(c, h.logger, err, cartLocked)
	}
	return c.JSON(cartView(s, true))
}

func cartView(s *session.Session, open bool) fiber.Map {
	lines := s.Cart.Lines()
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	view := fiber.Map{
		"items": lines,
		"total": s.Cart.Total(),
		"count": count,
	}
	if open {
		view["cart_open"] = true
	}
	return view
}
