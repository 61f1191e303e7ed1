package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"alfredoptarigan/ds-tutor/internal/metrics"
	"alfredoptarigan/ds-tutor/internal/session"
)

type Router struct {
	Store      *session.Store
	Metrics    *metrics.Metrics
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	Analyze    *AnalyzeHandler
	Chat       *ChatHandler
	Vocabulary *VocabularyHandler
}

// Setup registers every route under /api/v1.
func (r *Router) Setup(app *fiber.App) {
	app.Use(r.Metrics.Middleware())

	api := app.Group("/api/v1")

	// Public
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	api.Post("/login", r.Auth.HandleLogin)
	api.Get("/vocabulary", r.Vocabulary.HandleGetVocabulary)
	api.Get("/metrics", adaptor.HTTPHandler(r.Metrics.Handler()))

	// Logged in
	private := api.Group("", RequireLogin(r.Store))
	private.Post("/logout", r.Auth.HandleLogout)
	private.Get("/session", r.Auth.HandleGetSession)
	private.Get("/dashboard", r.Dashboard.HandleDashboard)
	private.Put("/session/topic", r.Dashboard.HandleSelectTopic)
	private.Put("/session/theme", r.Dashboard.HandleSelectTheme)
	private.Put("/session/checklist/:item", r.Dashboard.HandleToggleChecklist)
	private.Delete("/session/analysis", r.Dashboard.HandleClearAnalysis)
	private.Post("/analyze", r.Analyze.HandleAnalyzeUpload)
	private.Post("/analyze/text", r.Analyze.HandleAnalyzeText)
	private.Post("/chat", r.Chat.HandleChat)
	private.Post("/chat/shortcuts/:id", r.Chat.HandleShortcut)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Data Science Tutor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/login",
				"GET /api/v1/dashboard",
				"POST /api/v1/analyze",
				"POST /api/v1/chat",
			},
		})
	})
}
