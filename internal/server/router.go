package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/handlers"
)

type RouterConfig struct {
	UploadHandler       *handlers.UploadHandler
	StudentNotesHandler *handlers.StudentNotesHandler
	NotesHandler        *handlers.NotesHandler
	SummaryHandler      *handlers.SummaryHandler
	QuizHandler         *handlers.QuizHandler
	MetricsHandler      http.Handler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", handlers.RootStatus)
	router.GET("/healthcheck", handlers.HealthCheck)
	if cfg.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}

	// Upload
	router.POST("/upload", cfg.UploadHandler.UploadClassContent)
	// Student notes
	router.POST("/student-notes", cfg.StudentNotesHandler.RefineStudentNotes)
	router.POST("/student-notes/save", cfg.StudentNotesHandler.SaveNote)
	router.GET("/student-notes/saved", cfg.StudentNotesHandler.GetSavedNotes)
	// Notes
	router.GET("/notes", cfg.NotesHandler.GetAllNotes)
	// Summary
	router.GET("/summary", cfg.SummaryHandler.GetClassSummary)
	// Quiz
	router.GET("/quiz", cfg.QuizHandler.GetQuiz)

	return router
}
