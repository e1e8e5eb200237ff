package main

import (
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

	"atscribe/resume-analyzer/internal/config"
	"atscribe/resume-analyzer/internal/handlers"
	"atscribe/resume-analyzer/internal/repositories"
	"atscribe/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	analysisRepo := repositories.NewAnalysisRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	sessionRepo := repositories.NewRankingSessionRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	planRepo := repositories.NewPrepPlanRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize core services
	pdfParser := services.NewPDFParserService()
	validator := services.NewDocumentValidator()
	log.Println("✅ Services initialized successfully")

	// Initialize reasoning provider
	generator, err := services.NewTextGenerator(cfg.Provider)
	if err != nil {
		log.Fatalf("❌ Failed to initialize provider %q: %v", cfg.Provider.Name, err)
	}
	log.Printf("✅ Provider %q initialized successfully", cfg.Provider.Name)

	gateway := services.NewReasoningGateway(generator, cfg.Retry.MaxRetries, cfg.Retry.InitialDelay)

	// Initialize domain services
	analysisService := services.NewAnalysisService(validator, gateway, analysisRepo)
	rankingService := services.NewRankingService(validator, gateway, sessionRepo, candidateRepo)
	chatService := services.NewChatService(validator, gateway, chatRepo)
	planService := services.NewPlanService(gateway, analysisRepo, planRepo)
	log.Println("✅ Domain services initialized")

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(pdfParser, analysisService, cfg.Upload.MaxFileSize)
	recruiterHandler := handlers.NewRecruiterHandler(pdfParser, rankingService, cfg.Upload.MaxResumes, cfg.Upload.MaxFileSize)
	chatHandler := handlers.NewChatHandler(pdfParser, chatService, cfg.Upload.MaxFileSize)
	planHandler := handlers.NewPlanHandler(planService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	analysis := api.Group("/analysis")
	analysis.Post("/analyze", analysisHandler.HandleAnalyze)
	analysis.Get("/:sessionId", analysisHandler.HandleGetAnalysis)

	recruiter := api.Group("/recruiter")
	recruiter.Post("/rank-resumes", recruiterHandler.HandleRankResumes)
	recruiter.Get("/candidates/:sessionId", recruiterHandler.HandleGetCandidates)
	recruiter.Patch("/candidates/:id/status", recruiterHandler.HandleUpdateCandidateStatus)
	recruiter.Post("/generate-assignments", recruiterHandler.HandleGenerateAssignments)

	chat := api.Group("/chat")
	chat.Post("/init", chatHandler.HandleInit)
	chat.Post("/message", chatHandler.HandleMessage)
	chat.Get("/:sessionId", chatHandler.HandleHistory)
	chat.Delete("/:sessionId", chatHandler.HandleClear)

	plan := api.Group("/prep-plan")
	plan.Post("/generate", planHandler.HandleGenerate)
	plan.Get("/:sessionId", planHandler.HandleList)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analysis/analyze",
				"GET /api/v1/analysis/:sessionId",
				"POST /api/v1/recruiter/rank-resumes",
				"GET /api/v1/recruiter/candidates/:sessionId",
				"PATCH /api/v1/recruiter/candidates/:id/status",
				"POST /api/v1/recruiter/generate-assignments",
				"POST /api/v1/chat/init",
				"POST /api/v1/chat/message",
				"GET /api/v1/chat/:sessionId",
				"DELETE /api/v1/chat/:sessionId",
				"POST /api/v1/prep-plan/generate",
				"GET /api/v1/prep-plan/:sessionId",
			},
		})
	})

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
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
