package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionItemUnmarshal_Object(t *testing.T) {
	data := `{"description":"QA sign-off","owner":"Alice","due_date":"2026-09-05","priority":"high"}`

	var item ActionItem
	require.NoError(t, json.Unmarshal([]byte(data), &item))
	assert.Equal(t, "QA sign-off", item.Description)
	assert.Equal(t, "Alice", item.Owner)
	assert.Equal(t, "2026-09-05", item.DueDate)
	assert.Equal(t, "high", item.Priority)
}

func TestActionItemUnmarshal_BareString(t *testing.T) {
	var item ActionItem
	require.NoError(t, json.Unmarshal([]byte(`"call Bob"`), &item))
	assert.Equal(t, "call Bob", item.Description)
	assert.Empty(t, item.Owner)
	assert.Empty(t, item.DueDate)
	assert.Empty(t, item.Priority)
}

func TestActionItemUnmarshal_BareNumber(t *testing.T) {
	var item ActionItem
	require.NoError(t, json.Unmarshal([]byte(`42`), &item))
	assert.Equal(t, "42", item.Description)
}

func TestDecisionUnmarshal_Object(t *testing.T) {
	data := `{"decision":"Ship v2 next week","rationale":"deadline","stakeholders":["Alice","Bob"]}`

	var dec Decision
	require.NoError(t, json.Unmarshal([]byte(data), &dec))
	assert.Equal(t, "Ship v2 next week", dec.Decision)
	assert.Equal(t, "deadline", dec.Rationale)
	assert.Equal(t, []string{"Alice", "Bob"}, dec.Stakeholders)
}

func TestDecisionUnmarshal_BareString(t *testing.T) {
	var dec Decision
	require.NoError(t, json.Unmarshal([]byte(`"ship it"`), &dec))
	assert.Equal(t, "ship it", dec.Decision)
	assert.Empty(t, dec.Rationale)
}

func TestEnsureDefaults(t *testing.T) {
	var summary MeetingSummary
	summary.EnsureDefaults()

	assert.NotNil(t, summary.KeyPoints)
	assert.NotNil(t, summary.ActionItems)
	assert.NotNil(t, summary.Decisions)
	assert.NotNil(t, summary.Risks)
	assert.NotNil(t, summary.NextSteps)
	assert.NotNil(t, summary.AttendeesMentioned)
	assert.NotNil(t, summary.Metadata)
}

func TestEnsureDefaults_FillsDecisionStakeholders(t *testing.T) {
	summary := MeetingSummary{Decisions: []Decision{{Decision: "d1"}}}
	summary.EnsureDefaults()
	assert.NotNil(t, summary.Decisions[0].Stakeholders)
}

func TestNewFallbackSummary(t *testing.T) {
	cause := errors.New("connection refused")
	summary := NewFallbackSummary("Sync", "meeting-1", cause)

	assert.Equal(t, "Sync", summary.Title)
	assert.Contains(t, summary.Summary, "Summary generation encountered an error")
	assert.Contains(t, summary.Summary, "connection refused")
	assert.Equal(t, "meeting-1", summary.Metadata["meeting_id"])
	assert.Equal(t, "connection refused", summary.Metadata["error"])
	assert.Empty(t, summary.KeyPoints)
	assert.Empty(t, summary.ActionItems)
	assert.Empty(t, summary.Decisions)
	assert.Empty(t, summary.Risks)
}

func TestStampMetadata(t *testing.T) {
	var summary MeetingSummary
	summary.StampMetadata("meeting-1", "Meeting Summarizer", "gpt-4")

	assert.Equal(t, "meeting-1", summary.Metadata["meeting_id"])
	assert.Equal(t, "Meeting Summarizer", summary.Metadata["agent_name"])
	assert.Equal(t, "gpt-4", summary.Metadata["model"])
}
