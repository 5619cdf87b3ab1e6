package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/recallai-backend/internal/clients/openrouter"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/observability"
	"github.com/yungbote/recallai-backend/internal/types"
)

const summaryPromptTemplate = `You are an assistant helping a university instructor review the most recent class submission.

Return ONLY a valid JSON object with exactly these three fields:
{ "topics": [], "key_takeaways": [], "recap_questions": [] }

- "topics": the main topics covered, as short strings.
- "key_takeaways": the most important points students should remember.
- "recap_questions": questions the instructor can ask to check understanding.

Notes:
%s`

// SummaryService produces the instructor summary. Summarize never fails: it
// returns the empty-state object when there is nothing to summarize and a
// degraded object when the call or the JSON parse fails.
type SummaryService interface {
	Summarize(ctx context.Context, classContent string) types.ClassSummary
}

// EmptySummary is the fixed placeholder returned when no raw submission
// exists. It is a normal result, not an error.
func EmptySummary() types.ClassSummary {
	return types.ClassSummary{
		Topics:         []string{},
		KeyTakeaways:   []string{"No class content uploaded yet"},
		RecapQuestions: []string{},
	}
}

func DegradedSummary(reason string) types.ClassSummary {
	return types.ClassSummary{
		Topics:         []string{"Error loading summary"},
		KeyTakeaways:   []string{reason},
		RecapQuestions: []string{},
	}
}

type summaryService struct {
	log         *logger.Logger
	ai          openrouter.Client
	metrics     *observability.Metrics
	temperature float64
}

func NewSummaryService(log *logger.Logger, ai openrouter.Client, metrics *observability.Metrics, temperature float64) SummaryService {
	return &summaryService{
		log:         log.With("service", "SummaryService"),
		ai:          ai,
		metrics:     metrics,
		temperature: temperature,
	}
}

func (s *summaryService) Summarize(ctx context.Context, classContent string) types.ClassSummary {
	if strings.TrimSpace(classContent) == "" {
		return EmptySummary()
	}
	if s.ai == nil {
		return DegradedSummary("Configuration error: OpenRouter API key is missing")
	}

	prompt := fmt.Sprintf(summaryPromptTemplate, classContent)
	raw, err := s.ai.ChatJSON(ctx, prompt, s.temperature)
	if err != nil {
		s.metrics.IncAICall("summary", "error")
		s.log.Error("AI summary failed", "kind", openrouter.KindOf(err), "error", err)
		return DegradedSummary(err.Error())
	}

	var summary types.ClassSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		s.metrics.IncAICall("summary", "malformed")
		s.log.Error("AI summary returned malformed JSON", "error", err)
		return DegradedSummary("AI response was not valid JSON: " + err.Error())
	}

	s.metrics.IncAICall("summary", "ok")
	if summary.Topics == nil {
		summary.Topics = []string{}
	}
	if summary.KeyTakeaways == nil {
		summary.KeyTakeaways = []string{}
	}
	if summary.RecapQuestions == nil {
		summary.RecapQuestions = []string{}
	}
	return summary
}
