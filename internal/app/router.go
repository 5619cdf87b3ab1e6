package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/observability"
	"github.com/yungbote/recallai-backend/internal/server"
)

func wireRouter(handlerset Handlers, metrics *observability.Metrics) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		UploadHandler:       handlerset.Upload,
		StudentNotesHandler: handlerset.StudentNotes,
		NotesHandler:        handlerset.Notes,
		SummaryHandler:      handlerset.Summary,
		QuizHandler:         handlerset.Quiz,
		MetricsHandler:      metrics.Handler(),
	})
}
