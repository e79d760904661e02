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

type StudyController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time // injectable clock
}

func NewStudyController(db *gorm.DB, cfg *config.Config) *StudyController {
	return &StudyController{DB: db, Cfg: cfg, Now: time.Now}
}

type SaveSessionRequest struct {
	Subject  string `json:"subject" validate:"required,max=100"`
	Duration int    `json:"duration" validate:"required,gt=0"` // minutes
}

// SaveSession godoc
// @Summary Save a study session
// @Description Records a finished study session for today
// @Tags study
// @Accept json
// @Produce json
// @Param input body SaveSessionRequest true "Session data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study/save [post]
func (sc *StudyController) SaveSession(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input SaveSessionRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	now := sc.Now()
	session := models.StudySession{
		UserID:   userID,
		Subject:  input.Subject,
		Duration: input.Duration,
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := sc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "Failed to save study session")
	}

	return utils.Created(c, fiber.Map{
		"session_id": session.ID,
		"message":    "Study session saved successfully!",
	})
}

// GetSubjects возвращает список предметов пользователя для выпадающего
// списка на странице таймера.
func (sc *StudyController) GetSubjects(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var subjects []string
	if err := sc.DB.Model(&models.StudySession{}).
		Where("user_id = ?", userID).
		Distinct("subject").
		Order("subject").
		Pluck("subject", &subjects).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch subjects")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"subjects": subjects})
}

// GetTodayTotal godoc
// @Summary Today's study time
// @Tags study
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study/today [get]
func (sc *StudyController) GetTodayTotal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := sc.Now()
	records, err := sessionRecordsSince(sc.DB, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch sessions")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"today_total": analytics.TodayTotal(records, now),
	})
}
