package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/session"
)

const stateLocal = "session_state"

// RequireLogin rejects requests whose session is not logged in and exposes
// the loaded state to the next handler.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := store.Load(c)
		if err != nil {
			return err
		}

		if !state.LoggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Please log in first.",
			})
		}

		c.Locals(stateLocal, state)
		return c.Next()
	}
}

func currentState(c *fiber.Ctx) session.State {
	state, _ := c.Locals(stateLocal).(session.State)
	return state
}
