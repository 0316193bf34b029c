package handlers

import (
	"lumina/internal/middleware"
	"lumina/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProductHandler serves the storefront catalog.
type ProductHandler struct {
	service *services.ProductService
	logger  *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetProducts returns the catalog narrowed by the session's criteria.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.Browse(middleware.CurrentSession(c).Criteria())
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.service.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleGetCategories lists the product categories.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}
