package models

import (
	"time"

	"gorm.io/gorm"
)

// StudySession хранит одну учебную сессию пользователя.
// Запись не изменяется после создания, кроме явной корректировки администратором.
type StudySession struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Subject  string    `gorm:"not null"`
	Duration int       `gorm:"not null"` // minutes
	Date     time.Time `gorm:"type:date;index"`
}
