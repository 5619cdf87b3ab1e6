package types

import (
	"time"

	"github.com/google/uuid"
)

type NoteType string

const (
	NoteTypeRawSubmission NoteType = "raw_submission"
	NoteTypeAIRefined     NoteType = "ai_refined"
)

func (t NoteType) Valid() bool {
	switch t {
	case NoteTypeRawSubmission, NoteTypeAIRefined:
		return true
	default:
		return false
	}
}

// Note is append-only: rows are created once and never updated or deleted.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	NoteType  NoteType  `gorm:"column:note_type;type:varchar(50);not null;index" json:"note_type"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Note) TableName() string {
	return "saved_notes"
}
