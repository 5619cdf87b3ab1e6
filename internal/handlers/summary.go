package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/services"
)

type SummaryHandler struct {
	log        *logger.Logger
	summarySvc services.SummaryService
	noteSvc    services.NoteService
}

func NewSummaryHandler(log *logger.Logger, summarySvc services.SummaryService, noteSvc services.NoteService) *SummaryHandler {
	return &SummaryHandler{
		log:        log.With("handler", "SummaryHandler"),
		summarySvc: summarySvc,
		noteSvc:    noteSvc,
	}
}

// GET /summary
// Always responds 200 with a summary object: the real summary, the empty-state
// skeleton, or a degraded object describing the failure.
func (h *SummaryHandler) GetClassSummary(c *gin.Context) {
	content, err := h.noteSvc.LatestRawContent(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load latest raw submission", "error", err)
		RespondOK(c, services.DegradedSummary(err.Error()))
		return
	}
	RespondOK(c, h.summarySvc.Summarize(c.Request.Context(), content))
}
