package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/services"
)

type QuizHandler struct {
	log     *logger.Logger
	quizSvc services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizSvc services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:     log.With("handler", "QuizHandler"),
		quizSvc: quizSvc,
	}
}

// GET /quiz
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	RespondOK(c, h.quizSvc.Generate(c.Request.Context()))
}
