package dto

import (
	"github.com/budai-platform/agent-summarizer/internal/domain/entities"
)

// SummarizeRequest is the request to summarize a meeting
type SummarizeRequest struct {
	TaskID            string                 `json:"task_id" validate:"required"`
	MeetingID         string                 `json:"meeting_id" validate:"required"`
	Title             string                 `json:"title" validate:"required"`
	Transcript        string                 `json:"transcript" validate:"required"`
	AdditionalContext map[string]interface{} `json:"additional_context,omitempty"`
}

// SummarizeResponse is the response from meeting summarization
type SummarizeResponse struct {
	TaskID             string                 `json:"task_id"`
	MeetingID          string                 `json:"meeting_id"`
	Summary            string                 `json:"summary"`
	KeyPoints          []string               `json:"key_points"`
	ActionItems        []entities.ActionItem  `json:"action_items"`
	Decisions          []entities.Decision    `json:"decisions"`
	Risks              []string               `json:"risks"`
	NextSteps          []string               `json:"next_steps"`
	AttendeesMentioned []string               `json:"attendees_mentioned"`
	Metadata           map[string]interface{} `json:"metadata"`
}

// NewSummarizeResponse maps a generated summary back onto the wire format,
// echoing the caller-supplied identifiers
func NewSummarizeResponse(taskID, meetingID string, summary *entities.MeetingSummary) SummarizeResponse {
	return SummarizeResponse{
		TaskID:             taskID,
		MeetingID:          meetingID,
		Summary:            summary.Summary,
		KeyPoints:          summary.KeyPoints,
		ActionItems:        summary.ActionItems,
		Decisions:          summary.Decisions,
		Risks:              summary.Risks,
		NextSteps:          summary.NextSteps,
		AttendeesMentioned: summary.AttendeesMentioned,
		Metadata:           summary.Metadata,
	}
}
