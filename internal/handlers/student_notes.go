package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/apierr"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/services"
	"github.com/yungbote/recallai-backend/internal/types"
)

type NoteRequest struct {
	Content string `json:"content"`
}

type NoteSaveRequest struct {
	Content  string `json:"content"`
	NoteType string `json:"note_type"`
}

type StudentNotesHandler struct {
	log        *logger.Logger
	refinerSvc services.StudentNotesService
	noteSvc    services.NoteService
}

func NewStudentNotesHandler(log *logger.Logger, refinerSvc services.StudentNotesService, noteSvc services.NoteService) *StudentNotesHandler {
	return &StudentNotesHandler{
		log:        log.With("handler", "StudentNotesHandler"),
		refinerSvc: refinerSvc,
		noteSvc:    noteSvc,
	}
}

// POST /student-notes
// Refinement performs no persistence; saving is a separate, explicit call.
func (h *StudentNotesHandler) RefineStudentNotes(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, errors.New("Content cannot be empty"))
		return
	}

	refined := h.refinerSvc.Refine(c.Request.Context(), req.Content)
	RespondOK(c, gin.H{"notes": refined})
}

// POST /student-notes/save
func (h *StudentNotesHandler) SaveNote(c *gin.Context) {
	var req NoteSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, errors.New("Content cannot be empty"))
		return
	}

	note, err := h.noteSvc.Save(c.Request.Context(), req.Content, types.NoteType(req.NoteType))
	if err != nil {
		if apierr.IsValidation(err) {
			RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
			return
		}
		h.log.Error("Save failed", "error", err)
		RespondError(c, apierr.StatusOf(err), apierr.CodeStorage, errors.New("Failed to save note"))
		return
	}

	RespondOK(c, gin.H{
		"success": true,
		"message": "Note saved",
		"note_id": note.ID,
	})
}

// GET /student-notes/saved
func (h *StudentNotesHandler) GetSavedNotes(c *gin.Context) {
	notes, err := h.noteSvc.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to fetch saved notes", "error", err)
		RespondError(c, apierr.StatusOf(err), apierr.CodeStorage, errors.New("Failed to fetch notes"))
		return
	}
	RespondOK(c, gin.H{"saved_notes": notes})
}
