package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/recallai-backend/internal/logger"
	"github.com/yungbote/recallai-backend/internal/repos"
)

type Repos struct {
	Note repos.NoteRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Note: repos.NewNoteRepo(db, log),
	}
}
