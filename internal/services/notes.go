package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/recallai-backend/internal/apierr"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/observability"
	"github.com/yungbote/recallai-backend/internal/repos"
	"github.com/yungbote/recallai-backend/internal/types"
)

type NoteService interface {
	// Upload persists content as a raw submission and updates the advisory
	// latest pointer.
	Upload(ctx context.Context, content string) (*types.Note, error)
	// Save persists content with the given type tag (ai_refined when empty).
	Save(ctx context.Context, content string, noteType types.NoteType) (*types.Note, error)
	// ListAll returns every note, newest first.
	ListAll(ctx context.Context) ([]*types.Note, error)
	// LatestRawContent returns the content of the most recent raw submission,
	// or "" when none exists. The store query is authoritative; the in-memory
	// pointer is only a fallback hint when the store read fails.
	LatestRawContent(ctx context.Context) (string, error)
}

type latestPointer struct {
	mu      sync.Mutex
	content string
	set     bool
}

func (p *latestPointer) update(content string) {
	p.mu.Lock()
	p.content = content
	p.set = true
	p.mu.Unlock()
}

func (p *latestPointer) get() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content, p.set
}

type noteService struct {
	db       *gorm.DB
	log      *logger.Logger
	noteRepo repos.NoteRepo
	metrics  *observability.Metrics
	latest   latestPointer
}

func NewNoteService(db *gorm.DB, log *logger.Logger, noteRepo repos.NoteRepo, metrics *observability.Metrics) NoteService {
	serviceLog := log.With("service", "NoteService")
	return &noteService{db: db, log: serviceLog, noteRepo: noteRepo, metrics: metrics}
}

func (s *noteService) Upload(ctx context.Context, content string) (*types.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apierr.Validation(errors.New("content cannot be empty"))
	}

	note, err := s.noteRepo.Create(ctx, s.db, &types.Note{
		Content:  content,
		NoteType: types.NoteTypeRawSubmission,
	})
	if err != nil {
		return nil, err
	}

	s.latest.update(note.Content)
	s.metrics.IncNoteCreated(string(note.NoteType))
	s.log.Info("Raw submission uploaded", "note_id", note.ID)
	return note, nil
}

func (s *noteService) Save(ctx context.Context, content string, noteType types.NoteType) (*types.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apierr.Validation(errors.New("content cannot be empty"))
	}
	if noteType == "" {
		noteType = types.NoteTypeAIRefined
	}
	if !noteType.Valid() {
		return nil, apierr.Validation(errors.New("unknown note type: " + string(noteType)))
	}

	note, err := s.noteRepo.Create(ctx, s.db, &types.Note{
		Content:  content,
		NoteType: noteType,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncNoteCreated(string(note.NoteType))
	s.log.Info("Note saved", "note_id", note.ID, "note_type", note.NoteType)
	return note, nil
}

func (s *noteService) ListAll(ctx context.Context) ([]*types.Note, error) {
	return s.noteRepo.GetAll(ctx, s.db)
}

func (s *noteService) LatestRawContent(ctx context.Context) (string, error) {
	note, err := s.noteRepo.GetLatestByType(ctx, s.db, types.NoteTypeRawSubmission)
	if err != nil {
		if content, ok := s.latest.get(); ok {
			s.log.Warn("Latest raw submission query failed, using advisory pointer", "error", err)
			return content, nil
		}
		return "", err
	}
	if note == nil {
		return "", nil
	}
	return note.Content, nil
}
