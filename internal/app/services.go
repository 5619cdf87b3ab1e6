package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/observability"
	"github.com/yungbote/recallai-backend/internal/services"
)

type Services struct {
	Notes        services.NoteService
	StudentNotes services.StudentNotesService
	Summary      services.SummaryService
	Quiz         services.QuizService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	noteService := services.NewNoteService(db, log, reposet.Note, metrics)
	studentNotesService := services.NewStudentNotesService(log, clients.OpenRouter, metrics, cfg.RefineTemperature, cfg.RefineMaxTokens)
	summaryService := services.NewSummaryService(log, clients.OpenRouter, metrics, cfg.SummaryTemperature)
	quizService := services.NewQuizService(log, clients.OpenRouter, noteService, metrics, cfg.QuizTemperature)

	return Services{
		Notes:        noteService,
		StudentNotes: studentNotesService,
		Summary:      summaryService,
		Quiz:         quizService,
	}
}
