package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/session"
)

// actionError maps a rejected session action to a response. Anything that
// is not a validation failure goes to the error handler.
func actionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Please log in first.",
		})
	case errors.Is(err, session.ErrInvalidUsername),
		errors.Is(err, session.ErrInvalidRole),
		errors.Is(err, session.ErrUnknownTopic),
		errors.Is(err, session.ErrUnknownTheme),
		errors.Is(err, session.ErrUnknownChecklistItem):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return err
	}
}
