package handlers

import (
	"strings"

	"lumina/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// OrderHandler handles HTTP requests for the order ledger and owned items.
type OrderHandler struct {
	service *services.OrderService
	logger  *logrus.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the customer facing routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/owned", h.HandleGetOwned)
}

// RegisterAdminRoutes registers the ledger routes on an admin group.
func (h *OrderHandler) RegisterAdminRoutes(admin fiber.Router) {
	orderRoutes := admin.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Delete("/", h.HandleClearOrders)
	admin.Get("/stats", h.HandleGetStats)
}

// ConfirmRequest guards destructive admin operations.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// HandleGetOrders retrieves the whole ledger.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleGetStats returns the order count and revenue.
func (h *OrderHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return respondError(c, h.logger, err, "Could not compute stats")
	}
	return c.JSON(stats)
}

// HandleClearOrders wipes the ledger. The body must confirm the request.
func (h *OrderHandler) HandleClearOrders(c *fiber.Ctx) error {
	if !confirmed(c) {
		return confirmationRequired(c)
	}
	if err := h.service.ClearLedger(c.UserContext()); err != nil {
		return respondError(c, h.logger, err, "Could not clear orders")
	}
	return c.JSON(fiber.Map{"message": "Order ledger cleared"})
}

// HandleGetOwned lists the products a customer acquired.
func (h *OrderHandler) HandleGetOwned(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'email' is required",
		})
	}
	owned, err := h.service.OwnedBy(email)
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve owned products")
	}
	return c.JSON(owned)
}

func confirmed(c *fiber.Ctx) bool {
	var req ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return false
	}
	return req.Confirm
}

func confirmationRequired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": `This operation cannot be undone. Send {"confirm": true} to proceed.`,
	})
}
