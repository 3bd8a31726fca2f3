package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/budai-platform/agent-summarizer/internal/adapter/handler"
	"github.com/budai-platform/agent-summarizer/internal/infrastructure/eventbus"
	"github.com/budai-platform/agent-summarizer/internal/infrastructure/health"
	"github.com/budai-platform/agent-summarizer/internal/usecase/summarizer"
	pkgai "github.com/budai-platform/agent-summarizer/pkg/ai"
	"github.com/budai-platform/agent-summarizer/pkg/config"
	pkgvalidator "github.com/budai-platform/agent-summarizer/pkg/validator"
)

// @title           BudAI Agent Summarizer API
// @version         1.0
// @description     HTTP service exposing the meeting summarizer agent for orchestrator invocation

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Event bus for publishing summary events (best-effort, optional)
	log.Println("📦 Connecting event bus...")
	bus := eventbus.NewRedisBus(cfg)
	defer bus.Close()

	// Initialize the summarizer agent
	log.Println("🤖 Initializing summarizer agent...")
	llmClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	if !llmClient.Configured() {
		log.Println("⚠️  No OpenAI API key configured; service starts not-ready and will answer 503 on /summarize")
	}
	svc := summarizer.NewService(llmClient, bus, cfg.OpenAI.Model, logger)

	// Register health checks
	checker := health.NewChecker("agent-summarizer", handler.ServiceVersion)
	checker.Register(health.LivenessCheck, func(ctx context.Context) error {
		return nil
	})
	checker.Register("redis", func(ctx context.Context) error {
		return bus.Ping(ctx)
	})
	checker.Register("openai_api", func(ctx context.Context) error {
		if !llmClient.Configured() {
			return fmt.Errorf("OpenAI API key not configured")
		}
		return nil
	})

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	summarizeHandler := handler.NewSummarizeHandler(svc, logger)
	router := handler.NewRouter(cfg, summarizeHandler, checker)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownDuration())
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
