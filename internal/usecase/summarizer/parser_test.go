package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyObject(t *testing.T) {
	summary, err := NewParser().Parse(`{}`)
	require.NoError(t, err)

	assert.Empty(t, summary.Title)
	assert.Empty(t, summary.Summary)
	assert.Empty(t, summary.KeyPoints)
	assert.Empty(t, summary.ActionItems)
	assert.Empty(t, summary.Decisions)
	assert.Empty(t, summary.Risks)
	assert.Empty(t, summary.NextSteps)
	assert.Empty(t, summary.AttendeesMentioned)
	assert.NotNil(t, summary.Metadata)
}

func TestParse_SubsetOfFields(t *testing.T) {
	summary, err := NewParser().Parse(`{"risks": ["r1"]}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, summary.Risks)
	assert.Empty(t, summary.KeyPoints)
	assert.Empty(t, summary.ActionItems)
	assert.Empty(t, summary.Decisions)
	assert.Empty(t, summary.NextSteps)
}

func TestParse_BareStringActionItems(t *testing.T) {
	summary, err := NewParser().Parse(`{"action_items": ["call Bob", "send invoice"]}`)
	require.NoError(t, err)

	require.Len(t, summary.ActionItems, 2)
	assert.Equal(t, "call Bob", summary.ActionItems[0].Description)
	assert.Equal(t, "send invoice", summary.ActionItems[1].Description)
	assert.Empty(t, summary.ActionItems[0].Owner)
	assert.Empty(t, summary.ActionItems[0].DueDate)
	assert.Empty(t, summary.ActionItems[0].Priority)
}

func TestParse_BareStringDecisions(t *testing.T) {
	summary, err := NewParser().Parse(`{"decisions": ["ship it"]}`)
	require.NoError(t, err)

	require.Len(t, summary.Decisions, 1)
	assert.Equal(t, "ship it", summary.Decisions[0].Decision)
	assert.Empty(t, summary.Decisions[0].Rationale)
	assert.NotNil(t, summary.Decisions[0].Stakeholders)
}

func TestParse_FullResponse(t *testing.T) {
	raw := `{
		"title": "Sync",
		"summary": "Team agreed to ship v2.",
		"key_points": ["v2 scope locked"],
		"action_items": [{"description": "QA sign-off", "owner": "Alice"}],
		"decisions": [{"decision": "Ship v2 next week"}],
		"risks": ["QA timeline tight"],
		"next_steps": ["schedule release review"],
		"attendees_mentioned": ["Alice"],
		"metadata": {"language": "en"}
	}`

	summary, err := NewParser().Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "Sync", summary.Title)
	assert.Equal(t, "Team agreed to ship v2.", summary.Summary)
	require.Len(t, summary.ActionItems, 1)
	assert.Equal(t, "Alice", summary.ActionItems[0].Owner)
	require.Len(t, summary.Decisions, 1)
	assert.Equal(t, "Ship v2 next week", summary.Decisions[0].Decision)
	assert.Equal(t, "en", summary.Metadata["language"])
}

func TestParse_MarkdownFencedJSON(t *testing.T) {
	raw := "```json\n{\"summary\": \"fenced\"}\n```"

	summary, err := NewParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "fenced", summary.Summary)
}

func TestParse_PlainFencedJSON(t *testing.T) {
	raw := "```\n{\"summary\": \"fenced\"}\n```"

	summary, err := NewParser().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "fenced", summary.Summary)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := NewParser().Parse("not json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse model response")
}
