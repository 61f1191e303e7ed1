package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/metrics"
	"alfredoptarigan/ds-tutor/internal/models"
	"alfredoptarigan/ds-tutor/internal/session"
)

type AuthHandler struct {
	store   *session.Store
	metrics *metrics.Metrics
}

func NewAuthHandler(store *session.Store, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		store:   store,
		metrics: m,
	}
}

// HandleLogin handles POST /login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := models.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Please enter your username and select a user type.",
			"details": err.Error(),
		})
	}

	state, err := h.store.Update(c, session.Login{Username: req.Username, Role: req.Role})
	if err != nil {
		return actionError(c, err)
	}

	h.metrics.LoginsTotal.WithLabelValues(state.Role).Inc()

	return c.JSON(models.LoginResponse{
		Message: fmt.Sprintf("Welcome, %s!", state.Username),
		Session: state,
	})
}

// HandleLogout handles POST /logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if _, err := h.store.Update(c, session.Logout{}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// HandleGetSession handles GET /session
func (h *AuthHandler) HandleGetSession(c *fiber.Ctx) error {
	state, err := h.store.Load(c)
	if err != nil {
		return err
	}
	return c.JSON(state)
}
