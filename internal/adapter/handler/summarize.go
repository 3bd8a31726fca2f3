package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/budai-platform/agent-summarizer/errors"
	"github.com/budai-platform/agent-summarizer/internal/adapter/dto"
	"github.com/budai-platform/agent-summarizer/internal/usecase/summarizer"
)

// SummarizeHandler handles meeting summarization requests
type SummarizeHandler struct {
	svc    summarizer.Service
	logger *zap.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(svc summarizer.Service, logger *zap.Logger) *SummarizeHandler {
	return &SummarizeHandler{svc: svc, logger: logger}
}

// Summarize produces a structured summary for a meeting transcript
// @Summary      Summarize a meeting
// @Description  Sends the transcript to the LLM provider and returns a structured summary. Generation failures degrade into an error-flagged summary rather than a hard failure.
// @Tags         Summarization
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequest   true  "Meeting transcript and identifiers"
// @Success      200      {object}  dto.SummarizeResponse  "Structured meeting summary"
// @Failure      400      {object}  map[string]interface{} "Invalid or incomplete payload"
// @Failure      503      {object}  map[string]interface{} "Summarizer agent not configured"
// @Router       /summarize [post]
func (h *SummarizeHandler) Summarize(c echo.Context) error {
	var req dto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if !h.svc.Ready() {
		return HandleError(h.logger, c, errors.ErrAgentUnavailable("summarizer"))
	}

	h.logger.Info("summarizing meeting",
		zap.String("meeting_id", req.MeetingID),
		zap.String("task_id", req.TaskID),
		zap.String("title", req.Title),
		zap.Int("transcript_length", len(req.Transcript)),
	)

	summary := h.svc.Summarize(c.Request().Context(), summarizer.Input{
		TaskID:            req.TaskID,
		MeetingID:         req.MeetingID,
		Title:             req.Title,
		Transcript:        req.Transcript,
		AdditionalContext: req.AdditionalContext,
	})

	h.logger.Info("meeting summarized",
		zap.String("meeting_id", req.MeetingID),
		zap.Int("action_items", len(summary.ActionItems)),
		zap.Int("risks", len(summary.Risks)),
	)

	return c.JSON(http.StatusOK, dto.NewSummarizeResponse(req.TaskID, req.MeetingID, summary))
}
