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

const quizPromptTemplate = `You are generating a short multiple-choice quiz from classroom notes.

Return ONLY a valid JSON object of the form:
{ "questions": [ { "question": "...", "options": ["...", "...", "...", "..."], "answer": "..." } ] }

Write 5 questions. "answer" must be one of the entries in "options".

Notes:
%s`

// QuizService generates a quiz payload from the latest raw submission. Like
// the summary pipeline it always returns a usable payload.
type QuizService interface {
	Generate(ctx context.Context) types.Quiz
}

type quizService struct {
	log         *logger.Logger
	ai          openrouter.Client
	noteSvc     NoteService
	metrics     *observability.Metrics
	temperature float64
}

func NewQuizService(log *logger.Logger, ai openrouter.Client, noteSvc NoteService, metrics *observability.Metrics, temperature float64) QuizService {
	return &quizService{
		log:         log.With("service", "QuizService"),
		ai:          ai,
		noteSvc:     noteSvc,
		metrics:     metrics,
		temperature: temperature,
	}
}

func (s *quizService) Generate(ctx context.Context) types.Quiz {
	empty := types.Quiz{Questions: []types.QuizQuestion{}}

	content, err := s.noteSvc.LatestRawContent(ctx)
	if err != nil {
		s.log.Error("Failed to load latest raw submission for quiz", "error", err)
		return empty
	}
	if strings.TrimSpace(content) == "" || s.ai == nil {
		return empty
	}

	prompt := fmt.Sprintf(quizPromptTemplate, content)
	raw, err := s.ai.ChatJSON(ctx, prompt, s.temperature)
	if err != nil {
		s.metrics.IncAICall("quiz", "error")
		s.log.Error("AI quiz generation failed", "kind", openrouter.KindOf(err), "error", err)
		return empty
	}

	var quiz types.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		s.metrics.IncAICall("quiz", "malformed")
		s.log.Error("AI quiz returned malformed JSON", "error", err)
		return empty
	}
	if quiz.Questions == nil {
		quiz.Questions = []types.QuizQuestion{}
	}

	s.metrics.IncAICall("quiz", "ok")
	return quiz
}
