package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/models"
)

// parseAndValidate decodes the body into req and validates it. The returned
// error is a *fiber.Error carrying a 400 status.
func parseAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := models.Validate(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
