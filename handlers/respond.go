package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"inventory_backend/internal/apperrors"
	"inventory_backend/models"
)

// respondError maps a service error to the HTTP status and {message,
// error?} body of the response envelope.
func respondError(c *fiber.Ctx, err error) error {
	message := "server error"
	var e *apperrors.Error
	if errors.As(err, &e) {
		message = e.Message
	}

	body := models.ErrorResponse(message, apperrors.Detail(err))
	return c.Status(apperrors.HTTPStatus(err)).JSON(body)
}
