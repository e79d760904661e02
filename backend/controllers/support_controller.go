package controllers

import (
	"studytrack/backend/config"
	"studytrack/backend/models"
	"studytrack/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupportController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewSupportController(db *gorm.DB, cfg *config.Config) *SupportController {
	return &SupportController{DB: db, Cfg: cfg}
}

type SendMessageRequest struct {
	MessageType       string `json:"message_type" validate:"omitempty,oneof=general time_correction bug_report feedback"`
	Subject           string `json:"subject" validate:"required,max=200"`
	Content           string `json:"content" validate:"required,max=2000"`
	StudySessionID    *uint  `json:"study_session_id"`
	RequestedDuration *int   `json:"requested_duration" validate:"omitempty,gt=0"`
}

// SendMessage godoc
// @Summary Send a message to the administrators
// @Description General questions, bug reports, feedback, or a request to
// @Description correct the duration of a recorded study session
// @Tags support
// @Accept json
// @Produce json
// @Param input body SendMessageRequest true "Message data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /support/messages [post]
func (spc *SupportController) SendMessage(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, spc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input SendMessageRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if input.MessageType == "" {
		input.MessageType = models.MessageGeneral
	}

	// Запрос корректировки времени обязан ссылаться на свою сессию
	if input.MessageType == models.MessageTimeCorrection {
		if input.StudySessionID == nil || input.RequestedDuration == nil {
			return utils.BadRequest(c, "Time correction requires a session and a requested duration")
		}
		var session models.StudySession
		if err := spc.DB.Where("id = ? AND user_id = ?", *input.StudySessionID, userID).
			First(&session).Error; err != nil {
			return utils.NotFound(c, "Study session not found")
		}
	}

	message := models.SupportMessage{
		SenderID:          userID,
		MessageType:       input.MessageType,
		Subject:           input.Subject,
		Content:           input.Content,
		StudySessionID:    input.StudySessionID,
		RequestedDuration: input.RequestedDuration,
	}
	if err := spc.DB.Create(&message).Error; err != nil {
		return utils.InternalServerError(c, "Failed to send message")
	}

	return utils.Created(c, fiber.Map{"message_id": message.ID})
}

// MyMessages возвращает обращения пользователя вместе с ответами.
func (spc *SupportController) MyMessages(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, spc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var messages []models.SupportMessage
	if err := spc.DB.Where("sender_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch messages")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"messages": messages})
}

// ApprovedFeedback — одобренные отзывы для страницы входа. Единственный
// публичный маршрут поддержки, токен не требуется.
func (spc *SupportController) ApprovedFeedback(c *fiber.Ctx) error {
	type feedbackEntry struct {
		Username string `json:"username"`
		Content  string `json:"content"`
	}

	var feedback []feedbackEntry
	if err := spc.DB.Model(&models.SupportMessage{}).
		Select("users.username, support_messages.content").
		Joins("JOIN users ON users.id = support_messages.sender_id").
		Where("support_messages.message_type = ? AND support_messages.is_approved_feedback = ?",
			models.MessageFeedback, true).
		Order("support_messages.created_at DESC").
		Limit(10).
		Scan(&feedback).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch feedback")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"feedback": feedback})
}
