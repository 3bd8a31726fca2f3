package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/budai-platform/agent-summarizer/internal/adapter/dto"
	"github.com/budai-platform/agent-summarizer/internal/domain/entities"
	"github.com/budai-platform/agent-summarizer/internal/infrastructure/health"
	"github.com/budai-platform/agent-summarizer/internal/usecase/summarizer"
	"github.com/budai-platform/agent-summarizer/pkg/config"
	pkgvalidator "github.com/budai-platform/agent-summarizer/pkg/validator"
)

type stubService struct {
	summary   *entities.MeetingSummary
	ready     bool
	lastInput summarizer.Input
}

func (s *stubService) Summarize(ctx context.Context, input summarizer.Input) *entities.MeetingSummary {
	s.lastInput = input
	return s.summary
}

func (s *stubService) Ready() bool { return s.ready }

func newTestServer(svc summarizer.Service, checker *health.Checker) *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()

	if checker == nil {
		checker = health.NewChecker("agent-summarizer", ServiceVersion)
		checker.Register(health.LivenessCheck, func(ctx context.Context) error { return nil })
	}

	router := NewRouter(&config.Config{}, NewSummarizeHandler(svc, zap.NewNop()), checker)
	router.Setup(e)
	return e
}

func generatedSummary() *entities.MeetingSummary {
	summary := &entities.MeetingSummary{
		Title:       "Sync",
		Summary:     "Team agreed to ship v2.",
		ActionItems: []entities.ActionItem{{Description: "QA sign-off", Owner: "Alice"}},
		Decisions:   []entities.Decision{{Decision: "Ship v2 next week"}},
	}
	summary.EnsureDefaults()
	summary.StampMetadata("meeting-1", "Meeting Summarizer", "gpt-4")
	return summary
}

func TestSummarize_OK(t *testing.T) {
	svc := &stubService{summary: generatedSummary(), ready: true}
	e := newTestServer(svc, nil)

	body := `{"task_id":"task-1","meeting_id":"meeting-1","title":"Sync","transcript":"We decided to ship v2 next week. Alice owns QA."}`
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "task-1", resp.TaskID)
	assert.Equal(t, "meeting-1", resp.MeetingID)
	assert.Equal(t, "Team agreed to ship v2.", resp.Summary)
	require.Len(t, resp.ActionItems, 1)
	assert.Equal(t, "Alice", resp.ActionItems[0].Owner)
	require.Len(t, resp.Decisions, 1)
	assert.Equal(t, "meeting-1", resp.Metadata["meeting_id"])

	assert.Equal(t, "task-1", svc.lastInput.TaskID)
	assert.Equal(t, "Sync", svc.lastInput.Title)
}

func TestSummarize_NotReady(t *testing.T) {
	svc := &stubService{summary: generatedSummary(), ready: false}
	e := newTestServer(svc, nil)

	body := `{"task_id":"task-1","meeting_id":"meeting-1","title":"Sync","transcript":"text"}`
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not configured")
}

func TestSummarize_MissingFields(t *testing.T) {
	svc := &stubService{summary: generatedSummary(), ready: true}
	e := newTestServer(svc, nil)

	body := `{"task_id":"task-1","meeting_id":"meeting-1","title":"Sync"}`
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_MalformedBody(t *testing.T) {
	svc := &stubService{summary: generatedSummary(), ready: true}
	e := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoot_IdentityDocument(t *testing.T) {
	e := newTestServer(&stubService{ready: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "BudAI Agent Summarizer", doc["service"])
	assert.Equal(t, "Meeting Summarizer", doc["agent"])
	assert.Equal(t, "running", doc["status"])
}

func TestHealth_LivenessGatesStatusCode(t *testing.T) {
	checker := health.NewChecker("agent-summarizer", ServiceVersion)
	checker.Register(health.LivenessCheck, func(ctx context.Context) error { return nil })
	checker.Register("redis", func(ctx context.Context) error {
		return context.DeadlineExceeded
	})

	e := newTestServer(&stubService{ready: true}, checker)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Failing dependency check degrades the report but keeps the 200
	require.Equal(t, http.StatusOK, rec.Code)

	var report health.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "degraded", report.Status)
	assert.False(t, report.Checks["redis"].Healthy)
}

func TestHealth_UnavailableWhenLivenessFails(t *testing.T) {
	checker := health.NewChecker("agent-summarizer", ServiceVersion)
	checker.Register(health.LivenessCheck, func(ctx context.Context) error {
		return context.DeadlineExceeded
	})

	e := newTestServer(&stubService{ready: true}, checker)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
