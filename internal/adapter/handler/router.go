package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/budai-platform/agent-summarizer/internal/infrastructure/health"
	"github.com/budai-platform/agent-summarizer/pkg/config"
)

// ServiceVersion is reported by the identity and health endpoints
const ServiceVersion = "1.0.0"

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	summarizeHandler *SummarizeHandler
	healthChecker    *health.Checker
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summarizeHandler *SummarizeHandler, healthChecker *health.Checker) *Router {
	return &Router{
		cfg:              cfg,
		summarizeHandler: summarizeHandler,
		healthChecker:    healthChecker,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.POST("/summarize", rt.summarizeHandler.Summarize)
}

// root returns the static service identity document
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service": "BudAI Agent Summarizer",
		"version": ServiceVersion,
		"agent":   "Meeting Summarizer",
		"status":  "running",
	})
}

// healthCheck returns the aggregated health report. The status code follows
// the liveness check only; failing dependency checks leave it at 200.
func (rt *Router) healthCheck(c echo.Context) error {
	report := rt.healthChecker.Check(c.Request().Context())

	status := http.StatusOK
	if !report.Available() {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, report)
}
