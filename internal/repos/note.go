package repos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/recallai-backend/internal/apierr"
	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/types"
)

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, note *types.Note) (*types.Note, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Note, error)
	GetLatestByType(ctx context.Context, tx *gorm.DB, noteType types.NoteType) (*types.Note, error)
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	repoLog := baseLog.With("repo", "NoteRepo")
	return &noteRepo{db: db, log: repoLog}
}

// Create assigns id and creation timestamp. The insert is a single row, so a
// failed write leaves no partial record.
func (r *noteRepo) Create(ctx context.Context, tx *gorm.DB, note *types.Note) (*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if strings.TrimSpace(note.Content) == "" {
		return nil, apierr.Validation(errors.New("note content cannot be empty"))
	}
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(note).Error; err != nil {
		r.log.Error("Failed to create note", "note_type", note.NoteType, "error", err)
		return nil, apierr.Storage(err)
	}
	return note, nil
}

func (r *noteRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Note
	if err := transaction.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		r.log.Error("Failed to fetch notes", "error", err)
		return nil, apierr.Storage(err)
	}
	return results, nil
}

// GetLatestByType returns (nil, nil) when no note of the given type exists.
func (r *noteRepo) GetLatestByType(ctx context.Context, tx *gorm.DB, noteType types.NoteType) (*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Note
	err := transaction.WithContext(ctx).
		Where("note_type = ?", noteType).
		Order("created_at DESC, id DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("Failed to fetch latest note", "note_type", noteType, "error", err)
		return nil, apierr.Storage(err)
	}
	return &result, nil
}
