package summarizer

import (
	"fmt"
	"sort"
	"strings"
)

// AgentName identifies this agent in summary metadata and events
const AgentName = "Meeting Summarizer"

// systemInstructions is the fixed instruction prompt sent with every call.
// It is not request-dependent.
const systemInstructions = `You are a professional meeting summarizer specializing in sales calls and business meetings.

Your role is to:
1. Extract key points, decisions, and action items from meeting transcripts
2. Identify risks, blockers, and concerns raised
3. Note next steps and follow-up requirements
4. Capture attendee names when mentioned
5. Provide a concise executive summary

Guidelines:
- Be concise but comprehensive
- Focus on actionable items and decisions
- Highlight risks and concerns prominently
- Use bullet points for clarity
- Extract owner names for action items when mentioned
- Identify due dates if specified
- Note priority levels (high/medium/low) when indicated

Your output will be used for:
- Automated follow-up emails
- CRM updates
- Team notifications
- Executive reporting

Respond with a valid JSON object following this structure:
{
  "title": "meeting title",
  "summary": "executive summary",
  "key_points": ["point1", "point2"],
  "action_items": [{"description": "...", "owner": "...", "due_date": "...", "priority": "..."}],
  "decisions": [{"decision": "...", "rationale": "...", "stakeholders": []}],
  "risks": ["risk1", "risk2"],
  "next_steps": ["step1", "step2"],
  "attendees_mentioned": ["name1", "name2"],
  "metadata": {}
}
`

// SystemInstructions returns the fixed system instruction string
func SystemInstructions() string {
	return systemInstructions
}

// BuildUserPrompt assembles the user-facing prompt: meeting title, meeting id,
// a rendered additional-context block (omitted when the map is empty), the
// full transcript verbatim, and a closing instruction. No truncation or
// token-budget logic is applied.
func BuildUserPrompt(title, meetingID, transcript string, additionalContext map[string]interface{}) string {
	var contextBlock strings.Builder
	if len(additionalContext) > 0 {
		contextBlock.WriteString("\n\nAdditional Context:\n")

		// Map iteration order is randomized; sort keys so identical requests
		// produce identical prompts.
		keys := make([]string, 0, len(additionalContext))
		for key := range additionalContext {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			contextBlock.WriteString(fmt.Sprintf("- %s: %v\n", key, additionalContext[key]))
		}
	}

	return fmt.Sprintf(`Meeting: %s
Meeting ID: %s
%s

Transcript:
%s

Please provide a comprehensive summary of this meeting.`, title, meetingID, contextBlock.String(), transcript)
}
