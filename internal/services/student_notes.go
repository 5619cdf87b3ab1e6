package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/recallai-backend/internal/clients/openrouter"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/normalization"
	"github.com/yungbote/recallai-backend/internal/observability"
)

const refinedNotesTitle = "Comprehensive Class Notes"

const refinePromptTemplate = `You are an expert academic tutor creating a comprehensive study guide based on a student's rough class notes.

YOUR GOAL:
Transform the raw notes into detailed, self-contained learning material.
If the student mentions a topic briefly (e.g., "teacher discussed interfaces"), YOU MUST EXPAND ON IT with a full explanation and examples.

RULES:
1. **Expand & Explain**: Do not just fix grammar. If a concept is mentioned, define it and explain how it works.
2. **Fill in the Blanks**: If the notes say "we covered differences between X and Y" but don't list them, use your knowledge to provide those differences.
3. **Structure**: Use clear Markdown headers (#, ##), bullet points, and bold text for key terms.
4. **Examples**: Add code snippets (for coding topics) or illustrative examples (for theory) where appropriate, even if they weren't in the raw text.
5. **Tone**: Educational, encouraging, and clear.

FORMATTING RULES:
- When creating tables, ensure there is a NEWLINE after every row.
- Do not compress tables into a single line.
- Use standard Markdown table syntax.

Raw Notes:
%s

Output the detailed study guide in Markdown:`

// StudentNotesService refines raw notes into a study guide. Refine never
// fails: every outcome, including upstream errors, is a renderable string.
type StudentNotesService interface {
	Refine(ctx context.Context, rawContent string) string
}

type studentNotesService struct {
	log         *logger.Logger
	ai          openrouter.Client
	metrics     *observability.Metrics
	temperature float64
	maxTokens   int
}

func NewStudentNotesService(log *logger.Logger, ai openrouter.Client, metrics *observability.Metrics, temperature float64, maxTokens int) StudentNotesService {
	return &studentNotesService{
		log:         log.With("service", "StudentNotesService"),
		ai:          ai,
		metrics:     metrics,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

func (s *studentNotesService) Refine(ctx context.Context, rawContent string) string {
	if strings.TrimSpace(rawContent) == "" {
		return "⚠️ No content provided to refine."
	}
	if s.ai == nil {
		return "❌ Configuration Error: OpenRouter API key is missing."
	}

	prompt := fmt.Sprintf(refinePromptTemplate, rawContent)
	raw, err := s.ai.ChatText(ctx, prompt, s.temperature, s.maxTokens)
	if err != nil {
		s.metrics.IncAICall("refine", "error")
		s.log.Error("AI refinement failed", "kind", openrouter.KindOf(err), "error", err)
		return refineErrorMessage(err)
	}

	s.metrics.IncAICall("refine", "ok")
	return normalization.NormalizeMarkdown(raw, refinedNotesTitle)
}

func refineErrorMessage(err error) string {
	switch openrouter.KindOf(err) {
	case openrouter.KindAuth:
		return "❌ Error: The AI provider rejected the API key. Check your OpenRouter credentials."
	case openrouter.KindRateLimit:
		return "❌ Error: The AI provider is rate limiting requests. Please try again shortly."
	case openrouter.KindQuota:
		return "❌ Error: The AI provider quota is exhausted."
	case openrouter.KindModelUnavailable:
		return "❌ Error: The configured AI model is currently unavailable."
	default:
		return "❌ Error: Unable to generate detailed notes. Please try again."
	}
}
