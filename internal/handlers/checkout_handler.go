package handlers

import (
	"lumina/internal/checkout"
	"lumina/internal/middleware"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler drives the session's checkout coordinator.
type CheckoutHandler struct {
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		validate: validation.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the checkout routes.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Get("/", h.HandleGetStatus)
	checkoutRoutes.Post("/", h.HandleBegin)
	checkoutRoutes.Post("/identify", h.HandleIdentify)
	checkoutRoutes.Post("/pay", h.HandlePay)
	checkoutRoutes.Post("/cancel", h.HandleCancel)
}

// PayRequest carries the reference of the transaction the customer
// completed in the provider's widget.
type PayRequest struct {
	Reference string `json:"reference" validate:"required,max=128"`
}

// HandleGetStatus returns the checkout step.
func (h *CheckoutHandler) HandleGetStatus(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c).Checkout.Status())
}

// HandleBegin starts checkout for a non-empty cart.
func (h *CheckoutHandler) HandleBegin(c *fiber.Ctx) error {
	co := middleware.CurrentSession(c).Checkout
	if err := co.Begin(); err != nil {
		return respondError(c, h.logger, err, "Could not start checkout")
	}
	return c.JSON(co.Status())
}

// HandleIdentify records the customer's name and email.
func (h *CheckoutHandler) HandleIdentify(c *fiber.Ctx) error {
	var customer checkout.Customer
	if err := c.BodyParser(&customer); err != nil {
		return badRequest(c, err)
	}

	co := middleware.CurrentSession(c).Checkout
	if err := co.Identify(customer); err != nil {
		return respondError(c, h.logger, err, "Could not identify customer")
	}
	return c.JSON(co.Status())
}

// HandlePay confirms the payment and returns the recorded order.
func (h *CheckoutHandler) HandlePay(c *fiber.Ctx) error {
	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	order, err := middleware.CurrentSession(c).Checkout.Pay(c.UserContext(), req.Reference)
	if err != nil {
		return respondError(c, h.logger, err, "Payment was not completed")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleCancel records that the customer closed the payment widget.
func (h *CheckoutHandler) HandleCancel(c *fiber.Ctx) error {
	co := middleware.CurrentSession(c).Checkout
	if err := co.Cancel(); err != nil {
		return respondError(c, h.logger, err, "Could not cancel payment")
	}
	return c.JSON(co.Status())
}
