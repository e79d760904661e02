package models

import (
	"time"

	"gorm.io/gorm"
)

// SubjectFolder группирует заметки пользователя. Имя уникально в пределах
// пользователя; удаление папки каскадно удаляет её заметки.
type SubjectFolder struct {
	gorm.Model
	UserID uint        `gorm:"not null;uniqueIndex:idx_folder_user_name"`
	Name   string      `gorm:"not null;uniqueIndex:idx_folder_user_name"`
	Notes  []QuickNote `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

type QuickNote struct {
	gorm.Model
	UserID        uint  `gorm:"index;not null"`
	FolderID      *uint `gorm:"index"` // nil = legacy note outside any folder
	Subject       string
	Title         string `gorm:"default:Untitled Note"`
	Content       string `gorm:"size:2000"`
	StudyDuration *int   // minutes, set when the note follows a study session
	IsPinned      bool   `gorm:"default:false"`
	PinnedAt      *time.Time
}
