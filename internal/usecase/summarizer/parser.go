package summarizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/budai-platform/agent-summarizer/internal/domain/entities"
)

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the raw model output into a MeetingSummary. A decode failure
// is returned as a parse error; the fallback layer above decides what to do
// with it. Missing fields default to their empty form, and list elements that
// are bare scalars are coerced by the entity decoders.
func (p *Parser) Parse(rawText string) (*entities.MeetingSummary, error) {
	// Models sometimes wrap JSON in markdown code blocks despite JSON mode
	rawText = extractJSON(rawText)

	var summary entities.MeetingSummary
	if err := json.Unmarshal([]byte(rawText), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	summary.EnsureDefaults()
	return &summary, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
