package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/ds-tutor/internal/config"
	"alfredoptarigan/ds-tutor/internal/handlers"
	"alfredoptarigan/ds-tutor/internal/metrics"
	"alfredoptarigan/ds-tutor/internal/services"
	"alfredoptarigan/ds-tutor/internal/session"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize skill matcher
	matcher, err := config.InitMatcher(cfg.Matcher)
	if err != nil {
		log.Fatalf("❌ Failed to initialize skill matcher: %v", err)
	}
	log.Printf("✅ Skill matcher ready (%d skills, phrase matching: %t)\n", matcher.Vocabulary().Size(), matcher.PhraseMatching())

	m := metrics.New()

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	documentParser := services.NewDocumentParserService()
	resumeAnalyzer := services.NewResumeAnalyzerService(matcher, documentParser, m)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	prompts := services.NewPromptBuilder()
	tutorGateway, err := services.NewGeminiTutor(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout, prompts)
	switch {
	case errors.Is(err, services.ErrTutorUnavailable):
		log.Println("⚠️  GEMINI_API_KEY is not set. Chat requests will fail until it is configured.")
		tutorGateway = services.NewDisabledTutor()
	case err != nil:
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	default:
		log.Printf("✅ Gemini AI initialized successfully (%s)\n", cfg.Gemini.Model)
	}
	tutorService := services.NewTutorService(tutorGateway, prompts, m)

	// Initialize Handlers
	store := session.NewStore(cfg.Session.Expiration)
	router := &handlers.Router{
		Store:      store,
		Metrics:    m,
		Auth:       handlers.NewAuthHandler(store, m),
		Dashboard:  handlers.NewDashboardHandler(store),
		Analyze:    handlers.NewAnalyzeHandler(store, resumeAnalyzer, storageService, cfg.Storage.MaxFileSize),
		Chat:       handlers.NewChatHandler(store, tutorService),
		Vocabulary: handlers.NewVocabularyHandler(matcher),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:           "Data Science Tutor API",
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Gemini.Timeout + 30*time.Second,
		BodyLimit:         int(cfg.Storage.MaxFileSize) + 1024*1024,
		ErrorHandler:      handlers.ErrorHandler,
		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	router.Setup(app)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
