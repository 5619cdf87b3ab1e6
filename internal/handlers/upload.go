package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/apierr"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/services"
)

type UploadRequest struct {
	Content string `json:"content"`
}

type UploadHandler struct {
	log     *logger.Logger
	noteSvc services.NoteService
}

func NewUploadHandler(log *logger.Logger, noteSvc services.NoteService) *UploadHandler {
	return &UploadHandler{
		log:     log.With("handler", "UploadHandler"),
		noteSvc: noteSvc,
	}
}

// POST /upload
func (h *UploadHandler) UploadClassContent(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, errors.New("Content cannot be empty"))
		return
	}

	note, err := h.noteSvc.Upload(c.Request.Context(), req.Content)
	if err != nil {
		if apierr.IsValidation(err) {
			RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
			return
		}
		h.log.Error("Upload failed", "error", err)
		RespondError(c, apierr.StatusOf(err), apierr.CodeStorage, errors.New("Failed to upload notes"))
		return
	}

	RespondOK(c, gin.H{
		"message": "Notes uploaded successfully",
		"note_id": note.ID,
	})
}
