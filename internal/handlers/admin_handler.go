package handlers

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminHandler serves catalog management and backups for the admin console.
type AdminHandler struct {
	products *services.ProductService
	backups  *services.BackupService
	logger   *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(products *services.ProductService, backups *services.BackupService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		products: products,
		backups:  backups,
		logger:   logger,
	}
}

// RegisterRoutes registers the routes on an admin group.
func (h *AdminHandler) RegisterRoutes(admin fiber.Router) {
	productRoutes := admin.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)

	admin.Get("/backup", h.HandleBackup)
	admin.Post("/restore", h.HandleRestore)
	admin.Post("/factory-reset", h.HandleFactoryReset)
}

// HandleCreateProduct adds a product to the catalog.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	if err := h.products.CreateProduct(c.UserContext(), &product); err != nil {
		return respondError(c, h.logger, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces a product. The ID comes from the path.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, err)
	}
	product.ID = c.Params("id")
	if err := h.products.UpdateProduct(c.UserContext(), &product); err != nil {
		return respondError(c, h.logger, err, "Could not update product")
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product from the catalog.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.products.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s deleted", id),
	})
}

// HandleBackup downloads the catalog and the ledger as one JSON document.
func (h *AdminHandler) HandleBackup(c *fiber.Ctx) error {
	backup, err := h.backups.Export()
	if err != nil {
		return respondError(c, h.logger, err, "Could not export backup")
	}
	c.Attachment(fmt.Sprintf("lumina-backup-%s.json", backup.Timestamp.Format("2006-01-02")))
	return c.JSON(backup)
}

// HandleRestore replaces the catalog and/or the ledger from a backup
// document.
func (h *AdminHandler) HandleRestore(c *fiber.Ctx) error {
	result, err := h.backups.Import(c.UserContext(), c.Body())
	if err != nil {
		return respondError(c, h.logger, err, "Could not restore backup")
	}
	return c.JSON(result)
}

// HandleFactoryReset restores the seed catalog and wipes orders and owned
// items. The body must confirm the request.
func (h *AdminHandler) HandleFactoryReset(c *fiber.Ctx) error {
	if !confirmed(c) {
		return confirmationRequired(c)
	}
	if err := h.backups.FactoryReset(c.UserContext()); err != nil {
		return respondError(c, h.logger, err, "Could not reset store")
	}
	return c.JSON(fiber.Map{"message": "Store reset to factory defaults"})
}
