package handlers

import (
	"lumina/internal/services"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles the admin console login.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
	logger      *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validation.New(),
		logger:      logger,
	}
}

// RegisterRoutes registers the login route.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/admin/login", h.HandleLogin)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Passcode string `json:"passcode" validate:"required"`
}

// HandleLogin exchanges the admin passcode for a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	token, err := h.authService.Login(req.Passcode)
	if err != nil {
		return respondError(c, h.logger, err, "Authentication failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
