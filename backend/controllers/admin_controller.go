package controllers

import (
	"studytrack/backend/analytics"
	"studytrack/backend/config"
	"studytrack/backend/models"
	"studytrack/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminController обслуживает консоль модерации и отчётов: входящие
// обращения, корректировка учебных сессий, рейтинги и сводный отчёт по
// всем пользователям.
type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg, Now: time.Now}
}

// Inbox godoc
// @Summary Support inbox
// @Description Paginated list of support messages, optionally only
// @Description unresolved ones
// @Tags admin
// @Produce json
// @Param page query int false "Page number"
// @Param unresolved query bool false "Only unresolved messages"
// @Success 200 {object} utils.PaginatedResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/messages [get]
func (adc *AdminController) Inbox(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	const pageSize = 20

	query := adc.DB.Model(&models.SupportMessage{})
	if c.QueryBool("unresolved") {
		query = query.Where("is_resolved = ?", false)
	}

	var total int64
	query.Count(&total)

	var messages []models.SupportMessage
	if err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch messages")
	}

	return utils.Paginate(c, messages, total, page, pageSize)
}

// UnresolvedCount — счётчик для бейджа в боковой панели.
func (adc *AdminController) UnresolvedCount(c *fiber.Ctx) error {
	var count int64
	if err := adc.DB.Model(&models.SupportMessage{}).
		Where("is_resolved = ?", false).
		Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"unresolved_count": count})
}

type RespondRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
	Resolve  bool   `json:"resolve"`
}

// Respond записывает ответ администратора и помечает сообщение прочитанным.
func (adc *AdminController) Respond(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	var input RespondRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	var message models.SupportMessage
	if err := adc.DB.First(&message, id).Error; err != nil {
		return utils.NotFound(c, "Message not found")
	}

	now := adc.Now()
	message.AdminResponse = input.Response
	message.RespondedAt = &now
	message.IsRead = true
	if input.Resolve {
		message.IsResolved = true
	}

	if err := adc.DB.Save(&message).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update message")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": message})
}

// Resolve закрывает обращение без текстового ответа.
func (adc *AdminController) Resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	result := adc.DB.Model(&models.SupportMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_resolved": true, "is_read": true})
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to update message")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Message not found")
	}

	return utils.NoContent(c)
}

// ApproveFeedback помечает отзыв одобренным для показа на странице входа.
func (adc *AdminController) ApproveFeedback(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	var message models.SupportMessage
	if err := adc.DB.First(&message, id).Error; err != nil {
		return utils.NotFound(c, "Message not found")
	}
	if message.MessageType != models.MessageFeedback {
		return utils.BadRequest(c, "Only feedback messages can be approved")
	}

	message.IsApprovedFeedback = true
	message.IsRead = true
	if err := adc.DB.Save(&message).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update message")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": message})
}

// ApplyTimeCorrection применяет запрошенную корректировку длительности к
// учебной сессии и закрывает обращение. Единственный путь изменения
// StudySession после создания.
func (adc *AdminController) ApplyTimeCorrection(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	var message models.SupportMessage
	if err := adc.DB.First(&message, id).Error; err != nil {
		return utils.NotFound(c, "Message not found")
	}
	if message.MessageType != models.MessageTimeCorrection ||
		message.StudySessionID == nil || message.RequestedDuration == nil {
		return utils.BadRequest(c, "Message is not a time correction request")
	}

	now := adc.Now()
	if err := adc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.StudySession{}).
			Where("id = ?", *message.StudySessionID).
			Update("duration", *message.RequestedDuration).Error; err != nil {
			return err
		}
		message.IsResolved = true
		message.IsRead = true
		message.RespondedAt = &now
		return tx.Save(&message).Error
	}); err != nil {
		return utils.InternalServerError(c, "Failed to apply correction")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"session_id": *message.StudySessionID,
		"duration":   *message.RequestedDuration,
	})
}

// ListSessions — список всех учебных сессий для модерации, с фильтром по
// пользователю.
func (adc *AdminController) ListSessions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	const pageSize = 50

	query := adc.DB.Model(&models.StudySession{})
	if userID := c.QueryInt("user"); userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var sessions []models.StudySession
	if err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch sessions")
	}

	return utils.Paginate(c, sessions, total, page, pageSize)
}

type CorrectSessionRequest struct {
	Subject  string `json:"subject" validate:"omitempty,max=100"`
	Duration *int   `json:"duration" validate:"omitempty,gt=0"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// CorrectSession — прямая административная правка сессии.
func (adc *AdminController) CorrectSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	var input CorrectSessionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	var session models.StudySession
	if err := adc.DB.First(&session, id).Error; err != nil {
		return utils.NotFound(c, "Study session not found")
	}

	if input.Subject != "" {
		session.Subject = input.Subject
	}
	if input.Duration != nil {
		session.Duration = *input.Duration
	}
	if input.Date != "" {
		date, err := time.Parse(time.DateOnly, input.Date)
		if err != nil {
			return utils.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		}
		session.Date = date
	}

	if err := adc.DB.Save(&session).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update session")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"session": session})
}

// DeleteSession удаляет сессию (административное действие).
func (adc *AdminController) DeleteSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid session ID")
	}

	result := adc.DB.Delete(&models.StudySession{}, id)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete session")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Study session not found")
	}

	return utils.NoContent(c)
}

// standings перечисляет пользователей по возрастанию ID (вторичный ключ
// рейтинга) и собирает их месячные минуты и текущий стрик.
func (adc *AdminController) standings(now time.Time) ([]analytics.Standing, error) {
	var users []models.User
	if err := adc.DB.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := startOfMonth(now)

	standings := make([]analytics.Standing, 0, len(users))
	for _, user := range users {
		records, err := sessionRecords(adc.DB, user.ID)
		if err != nil {
			return nil, err
		}

		minutes := 0
		for _, r := range records {
			if !r.Date.Before(monthStart) {
				minutes += r.Minutes
			}
		}

		streak := analytics.CurrentStreak(analytics.DistinctDates(records), today)
		standings = append(standings, analytics.NewStanding(user.ID, user.Username, minutes, streak))
	}
	return standings, nil
}

// Leaderboard godoc
// @Summary User leaderboard
// @Description Rankings by study minutes this month and by current streak.
// @Description "top" variants drop zero entries, "all" variants keep them.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/leaderboard [get]
func (adc *AdminController) Leaderboard(c *fiber.Ctx) error {
	standings, err := adc.standings(adc.Now())
	if err != nil {
		return utils.InternalServerError(c, "Failed to build leaderboard")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"top_by_time":    analytics.RankByMinutes(standings, true),
		"all_by_time":    analytics.RankByMinutes(standings, false),
		"top_by_streak":  analytics.RankByStreak(standings, true),
		"all_by_streak":  analytics.RankByStreak(standings, false),
	})
}

// BulkReport godoc
// @Summary All-users activity report
// @Description Sequential scan over every user: monthly totals, streaks and
// @Description subject breakdown, stamped with a report ID
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/report [get]
func (adc *AdminController) BulkReport(c *fiber.Ctx) error {
	var users []models.User
	if err := adc.DB.Order("id").Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch users")
	}

	now := adc.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	entries := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		records, err := sessionRecords(adc.DB, user.ID)
		if err != nil {
			return utils.InternalServerError(c, "Failed to fetch sessions")
		}
		dates := analytics.DistinctDates(records)

		entries = append(entries, fiber.Map{
			"user_id":             user.ID,
			"username":            user.Username,
			"monthly_total_hours": analytics.MonthTotalHours(records, now),
			"current_streak":      analytics.CurrentStreak(dates, today),
			"highest_streak":      analytics.HighestStreak(dates),
			"subject_breakdown":   analytics.SubjectBreakdown(records),
			"weekly_chart":        analytics.WeeklyData(records, today),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"report_id":    uuid.NewString(),
		"generated_at": now.Format(time.RFC3339),
		"users":        entries,
	})
}
