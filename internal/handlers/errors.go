package handlers

import (
	"errors"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// statusFromError maps the typed failure taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, apperr.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceError logs a failed service call and writes the matching error
// response. Expected failures (4xx) are logged at warn, the rest at error.
func serviceError(c *fiber.Ctx, logger *logrus.Logger, err error, operation string) error {
	code := statusFromError(err)

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"operation": operation,
		"path":      c.Path(),
		"status":    code,
	})
	if code >= 500 {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	return utils.ErrorResponse(c, code, err.Error())
}
