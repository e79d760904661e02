package models

import (
	"time"

	"gorm.io/gorm"
)

// Статусы задания. "pending" — устаревший синоним "todo", нормализуется на входе.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	statusPending    = "pending" // legacy
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// NormalizeStatus maps the legacy "pending" value to "todo" and rejects
// anything outside the known set.
func NormalizeStatus(s string) (string, bool) {
	switch s {
	case statusPending, "", StatusTodo:
		return StatusTodo, true
	case StatusInProgress, StatusCompleted:
		return s, true
	}
	return "", false
}

type Assignment struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Title          string `gorm:"not null"`
	Description    string
	Subject        string     `gorm:"default:General"`
	Deadline       *time.Time // nil = no deadline
	EstimatedHours float64
	Status         string `gorm:"default:todo"`
	Urgency        string `gorm:"default:low"` // derived, recomputed on every save
	Priority       string `gorm:"default:normal"`
	CompletedAt    *time.Time
}
