package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/catalog"
	"alfredoptarigan/ds-tutor/internal/models"
	"alfredoptarigan/ds-tutor/internal/services"
	"alfredoptarigan/ds-tutor/internal/session"
)

type ChatHandler struct {
	store *session.Store
	tutor services.TutorService
}

func NewChatHandler(store *session.Store, tutor services.TutorService) *ChatHandler {
	return &ChatHandler{
		store: store,
		tutor: tutor,
	}
}

// HandleChat handles POST /chat
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := models.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter a question.",
		})
	}

	return h.ask(c, req.Prompt)
}

// HandleShortcut handles POST /chat/shortcuts/:id
func (h *ChatHandler) HandleShortcut(c *fiber.Ctx) error {
	shortcut, ok := catalog.FindShortcut(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Shortcut not found",
		})
	}

	return h.ask(c, shortcut.Prompt)
}

// ask sends exactly one request to the tutor. A gateway failure is answered
// with 502 and the generic message.
func (h *ChatHandler) ask(c *fiber.Ctx, question string) error {
	answer, err := h.tutor.Ask(c.UserContext(), question)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPrompt) || errors.Is(err, services.ErrPromptTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return err
	}

	_, err = h.store.Update(c, session.RecordChat{Entry: session.ChatEntry{
		Question: answer.Question,
		Answer:   answer.Answer,
		Error:    answer.Error,
		AskedAt:  time.Now(),
	}})
	if err != nil {
		return actionError(c, err)
	}

	resp := models.ChatResponse{
		Question: answer.Question,
		Answer:   answer.Answer,
		Error:    answer.Error,
	}
	if answer.Failed() {
		return c.Status(fiber.StatusBadGateway).JSON(resp)
	}
	return c.JSON(resp)
}
