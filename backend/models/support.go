package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MessageGeneral        = "general"
	MessageTimeCorrection = "time_correction"
	MessageBugReport      = "bug_report"
	MessageFeedback       = "feedback"
)

// SupportMessage — обращение пользователя к администратору. Для запросов
// корректировки времени хранит ссылку на сессию и запрошенную длительность.
type SupportMessage struct {
	gorm.Model
	SenderID    uint   `gorm:"index;not null"`
	RecipientID *uint  // nil = addressed to any admin
	MessageType string `gorm:"default:general"`
	Subject     string `gorm:"not null"`
	Content     string `gorm:"size:2000"`

	StudySessionID    *uint // time correction target
	RequestedDuration *int  // requested corrected duration, minutes

	IsRead             bool `gorm:"default:false"`
	IsResolved         bool `gorm:"default:false"`
	IsApprovedFeedback bool `gorm:"default:false"` // approved feedback shows on the login page
	AdminResponse      string
	RespondedAt        *time.Time
}
