package handlers

import (
	"errors"

	"lumina/internal/checkout"
	"lumina/internal/repositories"
	"lumina/internal/services"
	"lumina/internal/session"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidBackup),
		errors.Is(err, services.ErrMissingProductID):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidPasscode):
		return fiber.StatusUnauthorized
	case errors.Is(err, checkout.ErrPaymentNotCompleted):
		return fiber.StatusPaymentRequired
	case errors.Is(err, repositories.ErrProductNotFound),
		errors.Is(err, repositories.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrDuplicateProduct),
		errors.Is(err, checkout.ErrWrongState),
		errors.Is(err, checkout.ErrPaymentInProgress),
		errors.Is(err, session.ErrSearchInProgress):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body with the matching status.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, message string) error {
	status := statusFor(err)
	entry := logger.WithError(err).WithFields(logrus.Fields{"path": c.Path(), "status": status})
	if status >= fiber.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Debug(message)
	}

	body := fiber.Map{
		"message": message,
		"error":   err.Error(),
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		body["message"] = "Validation failed"
		body["errors"] = validation.Messages(err)
	}
	return c.Status(status).JSON(body)
}

// badRequest reports an unparsable request body.
func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// validate checks req with v and writes the 400 response on failure. It
// returns true when the caller should stop.
func validate(c *fiber.Ctx, v *validator.Validate, req interface{}) (bool, error) {
	if err := v.Struct(req); err != nil {
		return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validation.Messages(err),
		})
	}
	return false, nil
}
