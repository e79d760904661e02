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

type AssignmentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewAssignmentsController(db *gorm.DB, cfg *config.Config) *AssignmentsController {
	return &AssignmentsController{DB: db, Cfg: cfg, Now: time.Now}
}

type AssignmentRequest struct {
	Title          string  `json:"title" validate:"required,max=200"`
	Description    string  `json:"description" validate:"max=2000"`
	Subject        string  `json:"subject" validate:"max=100"`
	Deadline       string  `json:"deadline"` // RFC3339 or "2006-01-02T15:04", empty = none
	EstimatedHours float64 `json:"estimated_hours" validate:"gte=0"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority" validate:"omitempty,oneof=low normal high"`
}

func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	// Форма присылает "2006-01-02T15:04", API-клиенты — RFC3339.
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid deadline format")
}

// applyDerived пересчитывает urgency и estimated_hours перед каждым
// сохранением. Urgency — чистая функция дедлайна и текущего момента,
// прежнее сохранённое значение всегда перезаписывается.
func (asc *AssignmentsController) applyDerived(a *models.Assignment, providedHours float64, now time.Time) {
	a.Urgency = analytics.ClassifyUrgency(a.Deadline, now)
	a.EstimatedHours = analytics.FillEstimatedHours(providedHours, a.Deadline, now)
}

func (asc *AssignmentsController) payload(a models.Assignment, now time.Time) fiber.Map {
	m := fiber.Map{
		"id":              a.ID,
		"title":           a.Title,
		"description":     a.Description,
		"subject":         a.Subject,
		"estimated_hours": a.EstimatedHours,
		"status":          a.Status,
		"urgency":         a.Urgency,
		"priority":        a.Priority,
		"created_at":      a.CreatedAt,
	}
	if a.Deadline != nil {
		m["deadline"] = a.Deadline.Format(time.RFC3339)
	}
	if days, ok := analytics.DaysRemaining(a.Deadline, now); ok {
		m["days_remaining"] = days
	}
	if hours, ok := analytics.HoursRemaining(a.Deadline, now); ok {
		m["hours_remaining"] = hours
	}
	if a.CompletedAt != nil {
		m["completed_at"] = a.CompletedAt.Format(time.RFC3339)
	}
	return m
}

// GetAssignments godoc
// @Summary List assignments
// @Description Open assignments (treemap payload) plus the five most
// @Description recently completed ones
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments [get]
func (asc *AssignmentsController) GetAssignments(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	now := asc.Now()

	var open []models.Assignment
	if err := asc.DB.Where("user_id = ? AND status <> ?", userID, models.StatusCompleted).
		Order("deadline").
		Find(&open).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch assignments")
	}

	var completed []models.Assignment
	asc.DB.Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Order("completed_at DESC").
		Limit(5).
		Find(&completed)

	openData := make([]fiber.Map, 0, len(open))
	for _, a := range open {
		openData = append(openData, asc.payload(a, now))
	}
	completedData := make([]fiber.Map, 0, len(completed))
	for _, a := range completed {
		completedData = append(completedData, asc.payload(a, now))
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"pending":   openData,
		"completed": completedData,
	})
}

// AddAssignment godoc
// @Summary Add an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param input body AssignmentRequest true "Assignment data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments [post]
func (asc *AssignmentsController) AddAssignment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input AssignmentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	status, ok := models.NormalizeStatus(input.Status)
	if !ok {
		return utils.BadRequest(c, "Unknown status")
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return utils.BadRequest(c, "Invalid deadline format")
	}

	now := asc.Now()
	assignment := models.Assignment{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Subject:     input.Subject,
		Deadline:    deadline,
		Status:      status,
		Priority:    input.Priority,
	}
	if assignment.Subject == "" {
		assignment.Subject = "General"
	}
	if assignment.Priority == "" {
		assignment.Priority = models.PriorityNormal
	}
	asc.applyDerived(&assignment, input.EstimatedHours, now)

	if err := asc.DB.Create(&assignment).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create assignment")
	}

	return utils.Created(c, fiber.Map{"assignment": asc.payload(assignment, now)})
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param input body AssignmentRequest true "Assignment data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments/{id} [put]
func (asc *AssignmentsController) UpdateAssignment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	var assignment models.Assignment
	if err := asc.DB.Where("id = ? AND user_id = ?", id, userID).First(&assignment).Error; err != nil {
		return utils.NotFound(c, "Assignment not found")
	}

	var input AssignmentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	status, ok := models.NormalizeStatus(input.Status)
	if !ok {
		return utils.BadRequest(c, "Unknown status")
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return utils.BadRequest(c, "Invalid deadline format")
	}

	now := asc.Now()
	assignment.Title = input.Title
	assignment.Description = input.Description
	if input.Subject != "" {
		assignment.Subject = input.Subject
	}
	assignment.Deadline = deadline
	assignment.Status = status
	if input.Priority != "" {
		assignment.Priority = input.Priority
	}
	asc.applyDerived(&assignment, input.EstimatedHours, now)

	if err := asc.DB.Save(&assignment).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update assignment")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"assignment": asc.payload(assignment, now)})
}

// CompleteAssignment godoc
// @Summary Mark assignment as completed
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments/{id}/complete [post]
func (asc *AssignmentsController) CompleteAssignment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	var assignment models.Assignment
	if err := asc.DB.Where("id = ? AND user_id = ?", id, userID).First(&assignment).Error; err != nil {
		return utils.NotFound(c, "Assignment not found")
	}

	now := asc.Now()
	assignment.Status = models.StatusCompleted
	assignment.CompletedAt = &now
	// Сохранение пересчитывает urgency и для завершённых заданий
	asc.applyDerived(&assignment, assignment.EstimatedHours, now)

	if err := asc.DB.Save(&assignment).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update assignment")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"completed_at": now.Format(time.RFC3339)})
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 204 "No Content"
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assignments/{id} [delete]
func (asc *AssignmentsController) DeleteAssignment(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	result := asc.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Assignment{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete assignment")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Assignment not found")
	}

	return utils.NoContent(c)
}

// GetAllCompleted возвращает полный список завершённых заданий для
// раскрытия "see more" на странице заданий.
func (asc *AssignmentsController) GetAllCompleted(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, asc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var completed []models.Assignment
	if err := asc.DB.Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Order("completed_at DESC").
		Find(&completed).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch assignments")
	}

	data := make([]fiber.Map, 0, len(completed))
	for _, a := range completed {
		completedAt := ""
		if a.CompletedAt != nil {
			completedAt = a.CompletedAt.Format("Jan 02, 2006")
		}
		data = append(data, fiber.Map{
			"id":           a.ID,
			"title":        a.Title,
			"subject":      a.Subject,
			"completed_at": completedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"completed": data})
}
