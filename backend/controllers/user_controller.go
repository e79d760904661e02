package controllers

import (
	"studytrack/backend/analytics"
	"studytrack/backend/config"
	"studytrack/backend/models"
	"studytrack/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg, Now: time.Now}
}

type UpdateUserRequest struct {
	Username    string `json:"username" example:"john_doe" minLength:"3" maxLength:"20"`
	Email       string `json:"email" example:"user@example.com" format:"email"`
	OldPassword string `json:"old_password" example:"oldPassword123" minLength:"8"`
	NewPassword string `json:"new_password" example:"newPassword123" minLength:"8"`
	Group       string `json:"group" example:"students"`
	University  string `json:"university" example:"Stanford University"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data with study totals
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	// Сводка активности для шапки профиля
	now := uc.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	records, err := sessionRecords(uc.DB, userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch study sessions")
	}
	dates := analytics.DistinctDates(records)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":                  user.ID,
		"username":            user.Username,
		"email":               user.Email,
		"role":                user.Role,
		"group":               user.Group,
		"university":          user.University,
		"created_at":          user.CreatedAt,
		"current_streak":      analytics.CurrentStreak(dates, today),
		"highest_streak":      analytics.HighestStreak(dates),
		"monthly_total_hours": analytics.MonthTotalHours(records, now),
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates authenticated user's profile data
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile update data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	// Обновление имени пользователя
	if input.Username != "" && input.Username != user.Username {
		// Проверяем, не занято ли имя
		var existingUser models.User
		if err := uc.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Username already taken")
			}
		}
		user.Username = input.Username
	}

	// Обновление email
	if input.Email != "" && input.Email != user.Email {
		// Проверяем, не занят ли email
		var existingUser models.User
		if err := uc.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Email already taken")
			}
		}
		user.Email = input.Email
	}

	// Смена пароля требует старый пароль
	if input.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.BadRequest(c, "Old password is incorrect")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashed)
	}

	if input.Group != "" {
		user.Group = input.Group
	}
	if input.University != "" {
		user.University = input.University
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"group":      user.Group,
		"university": user.University,
	})
}
