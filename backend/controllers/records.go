package controllers

import (
	"studytrack/backend/analytics"
	"studytrack/backend/models"
	"time"

	"gorm.io/gorm"
)

// sessionRecords загружает все сессии пользователя и отдает их в виде,
// который принимает пакет analytics.
func sessionRecords(db *gorm.DB, userID uint) ([]analytics.SessionRecord, error) {
	var sessions []models.StudySession
	if err := db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return toRecords(sessions), nil
}

// sessionRecordsSince ограничивает выборку датами >= from.
func sessionRecordsSince(db *gorm.DB, userID uint, from time.Time) ([]analytics.SessionRecord, error) {
	var sessions []models.StudySession
	if err := db.Where("user_id = ? AND date >= ?", userID, from).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return toRecords(sessions), nil
}

func toRecords(sessions []models.StudySession) []analytics.SessionRecord {
	records := make([]analytics.SessionRecord, len(sessions))
	for i, s := range sessions {
		records[i] = analytics.SessionRecord{
			UserID:  s.UserID,
			Subject: s.Subject,
			Minutes: s.Duration,
			Date:    s.Date,
		}
	}
	return records
}

// startOfMonth возвращает начало календарного месяца момента t.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
