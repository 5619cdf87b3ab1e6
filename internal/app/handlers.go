package app

import (
	"github.com/yungbote/recallai-backend/internal/handlers"
	"github.com/yungbote/recallai-backend/internal/logger"
)

type Handlers struct {
	Upload       *handlers.UploadHandler
	StudentNotes *handlers.StudentNotesHandler
	Notes        *handlers.NotesHandler
	Summary      *handlers.SummaryHandler
	Quiz         *handlers.QuizHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Upload:       handlers.NewUploadHandler(log, serviceset.Notes),
		StudentNotes: handlers.NewStudentNotesHandler(log, serviceset.StudentNotes, serviceset.Notes),
		Notes:        handlers.NewNotesHandler(log, serviceset.Notes),
		Summary:      handlers.NewSummaryHandler(log, serviceset.Summary, serviceset.Notes),
		Quiz:         handlers.NewQuizHandler(log, serviceset.Quiz),
	}
}
