// Looper Reports API
//
// REST API for weekly fitness coaching reports.
//
//	@title			Looper Reports API
//	@version		1.0
//	@description	Generates weekly coaching reports from daily check-ins using chained LLM sections.
//
//	@BasePath	/v1
//
//	@tag.name			students
//	@tag.description	Student management endpoints
//
//	@tag.name			checkins
//	@tag.description	Daily check-in endpoints
//
//	@tag.name			reports
//	@tag.description	Report generation and retrieval endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/ard-guilherme/looper-reports/internal/api"
	"github.com/ard-guilherme/looper-reports/internal/api/handler"
	"github.com/ard-guilherme/looper-reports/internal/config"
	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/ard-guilherme/looper-reports/internal/events"
	"github.com/ard-guilherme/looper-reports/internal/langfuse"
	"github.com/ard-guilherme/looper-reports/internal/llm"
	"github.com/ard-guilherme/looper-reports/internal/report"
	"github.com/ard-guilherme/looper-reports/internal/repository"
	"github.com/ard-guilherme/looper-reports/internal/seed"
	"github.com/ard-guilherme/looper-reports/internal/service"
	"github.com/ard-guilherme/looper-reports/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "looper-reports-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Student{}, &domain.Checkin{}, &domain.MacroGoal{}, &domain.Report{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(db)
	checkinRepo := repository.NewCheckinRepository(db)
	goalRepo := repository.NewMacroGoalRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Langfuse client for traces and feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIReportModel, cfg.GenerationTimeout)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, report generation will be unavailable")
	}

	// Section prompt source and generator
	prompts := &report.LangfusePrompts{
		BaseURL:   cfg.LangfuseBaseURL,
		PublicKey: cfg.LangfusePublicKey,
		SecretKey: cfg.LangfuseSecretKey,
		PromptDir: cfg.PromptDir,
	}
	generator := report.NewGenerator(openaiClient, prompts, cfg.SectionFailurePolicy)

	// Kafka event side-channel (no-op when brokers are not configured)
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaReportTopic)
	defer publisher.Close()

	// Initialize services
	studentService := service.NewStudentService(studentRepo)
	checkinService := service.NewCheckinService(checkinRepo, studentRepo)
	reportService := service.NewReportService(
		studentRepo, checkinRepo, goalRepo, reportRepo,
		generator, publisher, langfuseClient,
		service.ReportOptions{
			TemplatePath: cfg.ReportTemplatePath,
			OutputDir:    cfg.ReportOutputDir,
			LogoURL:      cfg.ReportLogoURL,
		},
	)
	bulkService := service.NewBulkService(studentRepo, reportService)

	// Initialize handlers
	studentHandler := handler.NewStudentHandler(studentService)
	checkinHandler := handler.NewCheckinHandler(checkinService)
	reportHandler := handler.NewReportHandler(reportService, bulkService, langfuseClient)

	// Setup router
	router := api.NewRouter(studentHandler, checkinHandler, reportHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
