package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/apierr"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/services"
)

type NotesHandler struct {
	log     *logger.Logger
	noteSvc services.NoteService
}

func NewNotesHandler(log *logger.Logger, noteSvc services.NoteService) *NotesHandler {
	return &NotesHandler{
		log:     log.With("handler", "NotesHandler"),
		noteSvc: noteSvc,
	}
}

// GET /notes
// All saved notes (raw uploads and AI refinements), newest first.
func (h *NotesHandler) GetAllNotes(c *gin.Context) {
	notes, err := h.noteSvc.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to fetch notes", "error", err)
		RespondError(c, apierr.StatusOf(err), apierr.CodeStorage, errors.New("Failed to fetch notes"))
		return
	}
	RespondOK(c, notes)
}
