package controllers

import (
	"studytrack/backend/analytics"
	"studytrack/backend/config"
	"studytrack/backend/models"
	"studytrack/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Cfg: cfg, Now: time.Now}
}

// GetDashboard godoc
// @Summary Dashboard data
// @Description Returns greeting, today's total, streaks, chart buckets,
// @Description subject breakdown and the assignment calendar in one payload
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, dc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := dc.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Все сессии пользователя: нужны стрику, разбивке по предметам и
	// шестимесячному графику. Недельный и месячный графики берут из того
	// же набора свои окна.
	records, err := sessionRecords(dc.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch study sessions")
	}

	dates := analytics.DistinctDates(records)

	// Открытые задания для календаря
	var open []models.Assignment
	if err := dc.DB.Where("user_id = ? AND status <> ?", userID, models.StatusCompleted).
		Order("deadline").
		Find(&open).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch assignments")
	}

	calendar := make([]fiber.Map, 0, len(open))
	for _, a := range open {
		var deadline interface{}
		if a.Deadline != nil {
			deadline = a.Deadline.Format(time.RFC3339)
		}
		calendar = append(calendar, fiber.Map{
			"title":    a.Title,
			"subject":  a.Subject,
			"deadline": deadline,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"greeting":             analytics.Greeting(now),
		"quote":                analytics.QuoteOfTheDay(now),
		"today_total":          analytics.TodayTotal(records, today),
		"monthly_total_hours":  analytics.MonthTotalHours(records, now),
		"streak":               analytics.CurrentStreak(dates, today),
		"highest_streak":       analytics.HighestStreak(dates),
		"weekly_chart":         analytics.WeeklyData(records, today),
		"monthly_chart":        analytics.MonthlyData(records, today),
		"six_month_chart":      analytics.LastSixMonths(records, now),
		"subject_breakdown":    analytics.SubjectBreakdown(records),
		"calendar_assignments": calendar,
	})
}
