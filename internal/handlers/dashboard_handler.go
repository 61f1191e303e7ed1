package handlers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/catalog"
	"alfredoptarigan/ds-tutor/internal/models"
	"alfredoptarigan/ds-tutor/internal/session"
)

type DashboardHandler struct {
	store *session.Store
}

func NewDashboardHandler(store *session.Store) *DashboardHandler {
	return &DashboardHandler{
		store: store,
	}
}

// HandleDashboard handles GET /dashboard
func (h *DashboardHandler) HandleDashboard(c *fiber.Ctx) error {
	return c.JSON(buildDashboard(currentState(c)))
}

// HandleSelectTopic handles PUT /session/topic
func (h *DashboardHandler) HandleSelectTopic(c *fiber.Ctx) error {
	var req models.TopicRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.store.Update(c, session.SelectTopic{Topic: req.Topic})
	if err != nil {
		return actionError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Studying: %s", state.Topic),
		"topic":   state.Topic,
	})
}

// HandleSelectTheme handles PUT /session/theme
func (h *DashboardHandler) HandleSelectTheme(c *fiber.Ctx) error {
	var req models.ThemeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	state, err := h.store.Update(c, session.SelectTheme{Theme: req.Theme})
	if err != nil {
		return actionError(c, err)
	}

	return c.JSON(fiber.Map{
		"theme": state.Theme,
	})
}

// HandleToggleChecklist handles PUT /session/checklist/:item
func (h *DashboardHandler) HandleToggleChecklist(c *fiber.Ctx) error {
	item, err := url.PathUnescape(c.Params("item"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid checklist item",
		})
	}

	state, err := h.store.Update(c, session.ToggleChecklist{Item: item})
	if err != nil {
		return actionError(c, err)
	}

	return c.JSON(fiber.Map{
		"item":      item,
		"completed": state.HasCompleted(item),
		"checklist": checklist(state),
	})
}

func buildDashboard(state session.State) models.DashboardResponse {
	return models.DashboardResponse{
		Greeting:     fmt.Sprintf("Welcome, %s!", state.Username),
		Role:         state.Role,
		RoleMessage:  catalog.RoleMessage(state.Role),
		Topic:        state.Topic,
		Theme:        state.Theme,
		Topics:       catalog.Topics,
		Themes:       catalog.Themes,
		Checklist:    checklist(state),
		DailyTip:     catalog.RandomTip(),
		Tools:        catalog.Tools,
		Resources:    catalog.Resources,
		Shortcuts:    catalog.Shortcuts,
		LastAnalysis: state.LastAnalysis,
	}
}

func checklist(state session.State) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(catalog.Checklist))
	for _, item := range catalog.Checklist {
		items = append(items, models.ChecklistItem{
			Item:      item,
			Completed: state.HasCompleted(item),
		})
	}
	return items
}

// HandleClearAnalysis handles DELETE /session/analysis
func (h *DashboardHandler) HandleClearAnalysis(c *fiber.Ctx) error {
	if _, err := h.store.Update(c, session.ClearAnalysis{}); err != nil {
		return actionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
