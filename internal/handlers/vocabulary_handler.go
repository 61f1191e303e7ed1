package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ds-tutor/internal/models"
	"alfredoptarigan/ds-tutor/internal/skills"
)

type VocabularyHandler struct {
	matcher *skills.Matcher
}

func NewVocabularyHandler(matcher *skills.Matcher) *VocabularyHandler {
	return &VocabularyHandler{
		matcher: matcher,
	}
}

// HandleGetVocabulary handles GET /vocabulary
func (h *VocabularyHandler) HandleGetVocabulary(c *fiber.Ctx) error {
	vocab := h.matcher.Vocabulary()
	weights := h.matcher.Weights()

	return c.JSON(models.VocabularyResponse{
		Core:            vocab.Core(),
		Secondary:       vocab.Secondary(),
		CoreWeight:      weights.Core,
		SecondaryWeight: weights.Secondary,
		PhraseMatching:  h.matcher.PhraseMatching(),
	})
}
