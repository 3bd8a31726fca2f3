package summarizer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/budai-platform/agent-summarizer/internal/domain/entities"
	"github.com/budai-platform/agent-summarizer/internal/infrastructure/eventbus"
)

// EventSummaryGenerated is published after each successful summarization
const EventSummaryGenerated = "summary.generated"

const publishTimeout = 5 * time.Second

// TextGenerator sends a prompt to the text-generation provider and returns
// raw text. A single attempt, no retries.
type TextGenerator interface {
	Complete(ctx context.Context, systemInstruction, userPrompt, model string) (string, error)
	Configured() bool
}

// Input carries one summarization request through the use case
type Input struct {
	TaskID            string
	MeetingID         string
	Title             string
	Transcript        string
	AdditionalContext map[string]interface{}
}

// Service produces meeting summaries with graceful degradation
type Service interface {
	// Summarize never fails: invocation and parse errors degrade into a
	// fallback summary carrying the error instead of propagating.
	Summarize(ctx context.Context, input Input) *entities.MeetingSummary
	Ready() bool
}

type service struct {
	llm    TextGenerator
	parser *Parser
	bus    eventbus.Publisher
	model  string
	logger *zap.Logger
}

// NewService constructs the summarizer service. The event bus may be nil;
// publication is best-effort either way.
func NewService(llm TextGenerator, bus eventbus.Publisher, model string, logger *zap.Logger) Service {
	return &service{
		llm:    llm,
		parser: NewParser(),
		bus:    bus,
		model:  model,
		logger: logger,
	}
}

// Ready reports whether the provider is configured. Handlers fail fast with
// 503 when it is not.
func (s *service) Ready() bool {
	return s.llm != nil && s.llm.Configured()
}

func (s *service) Summarize(ctx context.Context, input Input) *entities.MeetingSummary {
	userPrompt := BuildUserPrompt(input.Title, input.MeetingID, input.Transcript, input.AdditionalContext)

	var summary *entities.MeetingSummary
	rawText, err := s.llm.Complete(ctx, SystemInstructions(), userPrompt, s.model)
	if err == nil {
		summary, err = s.parser.Parse(rawText)
	}

	if err != nil {
		s.logger.Error("failed to generate summary",
			zap.String("meeting_id", input.MeetingID),
			zap.String("task_id", input.TaskID),
			zap.Error(err),
		)
		summary = entities.NewFallbackSummary(input.Title, input.MeetingID, err)
	} else {
		if summary.Title == "" {
			summary.Title = input.Title
		}
		s.publishGenerated(input, summary)
	}

	summary.StampMetadata(input.MeetingID, AgentName, s.model)
	return summary
}

// publishGenerated emits a best-effort summary.generated event. The dispatch
// is detached from the request: a slow or unreachable bus never delays the
// response, and failures are logged locally and swallowed.
func (s *service) publishGenerated(input Input, summary *entities.MeetingSummary) {
	if s.bus == nil {
		return
	}

	event := eventbus.NewEvent(EventSummaryGenerated, input.TaskID, input.MeetingID, map[string]interface{}{
		"title":        summary.Title,
		"action_items": len(summary.ActionItems),
		"decisions":    len(summary.Decisions),
		"risks":        len(summary.Risks),
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish summary event",
				zap.String("meeting_id", input.MeetingID),
				zap.Error(err),
			)
		}
	}()
}
