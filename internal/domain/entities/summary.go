package entities

import (
	"encoding/json"
	"fmt"
)

// ActionItem is an action item extracted from the meeting
type ActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// UnmarshalJSON accepts either the structured object form or a bare scalar.
// Models do not reliably honor the requested schema: an array of plain
// strings in action_items is wrapped into items carrying only a description.
func (a *ActionItem) UnmarshalJSON(data []byte) error {
	type plain ActionItem
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*a = ActionItem(obj)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ActionItem{Description: s}
		return nil
	}

	var scalar interface{}
	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}
	*a = ActionItem{Description: fmt.Sprint(scalar)}
	return nil
}

// Decision is a decision made during the meeting
type Decision struct {
	Decision     string   `json:"decision"`
	Rationale    string   `json:"rationale,omitempty"`
	Stakeholders []string `json:"stakeholders"`
}

// UnmarshalJSON applies the same scalar-wrap fallback as ActionItem:
// a bare string becomes a Decision with only the decision text set.
func (d *Decision) UnmarshalJSON(data []byte) error {
	type plain Decision
	var obj plain
	if err := json.Unmarshal(data, &obj); err == nil {
		*d = Decision(obj)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Decision{Decision: s}
		return nil
	}

	var scalar interface{}
	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}
	*d = Decision{Decision: fmt.Sprint(scalar)}
	return nil
}

// MeetingSummary is the structured summary produced for downstream automation
type MeetingSummary struct {
	Title              string                 `json:"title"`
	Summary            string                 `json:"summary"`
	KeyPoints          []string               `json:"key_points"`
	ActionItems        []ActionItem           `json:"action_items"`
	Decisions          []Decision             `json:"decisions"`
	Risks              []string               `json:"risks"`
	NextSteps          []string               `json:"next_steps"`
	AttendeesMentioned []string               `json:"attendees_mentioned"`
	Metadata           map[string]interface{} `json:"metadata"`
}

// EnsureDefaults replaces nil collections with their empty form so missing
// response fields serialize as empty lists rather than null
func (m *MeetingSummary) EnsureDefaults() {
	if m.KeyPoints == nil {
		m.KeyPoints = make([]string, 0)
	}
	if m.ActionItems == nil {
		m.ActionItems = make([]ActionItem, 0)
	}
	if m.Decisions == nil {
		m.Decisions = make([]Decision, 0)
	}
	if m.Risks == nil {
		m.Risks = make([]string, 0)
	}
	if m.NextSteps == nil {
		m.NextSteps = make([]string, 0)
	}
	if m.AttendeesMentioned == nil {
		m.AttendeesMentioned = make([]string, 0)
	}
	if m.Metadata == nil {
		m.Metadata = make(map[string]interface{})
	}
	for i := range m.Decisions {
		if m.Decisions[i].Stakeholders == nil {
			m.Decisions[i].Stakeholders = make([]string, 0)
		}
	}
}

// NewFallbackSummary builds the degraded summary returned when generation or
// parsing fails. The error is carried in the summary text and metadata; every
// list field is empty.
func NewFallbackSummary(title, meetingID string, cause error) *MeetingSummary {
	summary := &MeetingSummary{
		Title:   title,
		Summary: fmt.Sprintf("Summary generation encountered an error: %s", cause.Error()),
		Metadata: map[string]interface{}{
			"meeting_id": meetingID,
			"error":      cause.Error(),
		},
	}
	summary.EnsureDefaults()
	return summary
}

// StampMetadata records the generation provenance. Required on both the
// success and fallback paths.
func (m *MeetingSummary) StampMetadata(meetingID, agentName, model string) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]interface{})
	}
	m.Metadata["meeting_id"] = meetingID
	m.Metadata["agent_name"] = agentName
	m.Metadata["model"] = model
}
