package controllers

import (
	"errors"
	"strings"
	"studytrack/backend/config"
	"studytrack/backend/models"
	"studytrack/backend/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotesController struct {
	DB  *gorm.DB
	Cfg *config.Config
	Now func() time.Time
}

func NewNotesController(db *gorm.DB, cfg *config.Config) *NotesController {
	return &NotesController{DB: db, Cfg: cfg, Now: time.Now}
}

type CreateFolderRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateNoteRequest struct {
	FolderID *uint  `json:"folder_id"`
	Title    string `json:"title" validate:"max=200"`
	Content  string `json:"content" validate:"required,max=2000"`
}

type QuickNoteRequest struct {
	Subject  string `json:"subject" validate:"required,max=100"`
	Content  string `json:"content" validate:"required,max=2000"`
	Duration *int   `json:"duration"` // minutes of the finished session
}

// GetNotes lists the user's folders and the notes of the selected folder
// (или заметки без папки, если папка не выбрана).
func (nc *NotesController) GetNotes(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var folders []models.SubjectFolder
	if err := nc.DB.Where("user_id = ?", userID).Order("name").Find(&folders).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch folders")
	}

	query := nc.DB.Where("user_id = ?", userID)
	if folderID := c.QueryInt("folder"); folderID > 0 {
		var folder models.SubjectFolder
		if err := nc.DB.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
			return utils.NotFound(c, "Folder not found")
		}
		query = query.Where("folder_id = ?", folderID)
	} else {
		query = query.Where("folder_id IS NULL")
	}

	// Закреплённые заметки первыми, свежезакреплённые выше
	var notes []models.QuickNote
	if err := query.Order("is_pinned DESC, pinned_at DESC NULLS LAST, created_at DESC").
		Find(&notes).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch notes")
	}

	folderData := make([]fiber.Map, 0, len(folders))
	for _, f := range folders {
		var count int64
		nc.DB.Model(&models.QuickNote{}).Where("folder_id = ?", f.ID).Count(&count)
		folderData = append(folderData, fiber.Map{
			"id":         f.ID,
			"name":       f.Name,
			"note_count": count,
			"created_at": f.CreatedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"folders": folderData,
		"notes":   notes,
	})
}

// CreateFolder godoc
// @Summary Create a subject folder
// @Tags notes
// @Accept json
// @Produce json
// @Param input body CreateFolderRequest true "Folder data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /folders [post]
func (nc *NotesController) CreateFolder(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateFolderRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Name = strings.TrimSpace(input.Name)
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	// Имя папки уникально в пределах пользователя
	var existing models.SubjectFolder
	if err := nc.DB.Where("user_id = ? AND name = ?", userID, input.Name).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "A folder with this name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	folder := models.SubjectFolder{UserID: userID, Name: input.Name}
	if err := nc.DB.Create(&folder).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create folder")
	}

	return utils.Created(c, fiber.Map{
		"folder_id":   folder.ID,
		"folder_name": folder.Name,
	})
}

// DeleteFolder удаляет папку и каскадно все её заметки.
func (nc *NotesController) DeleteFolder(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid folder ID")
	}

	var folder models.SubjectFolder
	if err := nc.DB.Where("id = ? AND user_id = ?", id, userID).First(&folder).Error; err != nil {
		return utils.NotFound(c, "Folder not found")
	}

	// Select(clause.Associations) не нужен: каскад задан на уровне схемы,
	// но заметки чистим явно, чтобы не зависеть от настроек БД.
	if err := nc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ?", folder.ID).Delete(&models.QuickNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&folder).Error
	}); err != nil {
		return utils.InternalServerError(c, "Failed to delete folder")
	}

	return utils.NoContent(c)
}

// CreateNote godoc
// @Summary Create a note in a folder
// @Tags notes
// @Accept json
// @Produce json
// @Param input body CreateNoteRequest true "Note data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes [post]
func (nc *NotesController) CreateNote(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateNoteRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.Content = strings.TrimSpace(input.Content)
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	subject := "General"
	if input.FolderID != nil {
		var folder models.SubjectFolder
		if err := nc.DB.Where("id = ? AND user_id = ?", *input.FolderID, userID).First(&folder).Error; err != nil {
			return utils.NotFound(c, "Folder not found")
		}
		subject = folder.Name
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = "Untitled Note"
	}

	note := models.QuickNote{
		UserID:   userID,
		FolderID: input.FolderID,
		Subject:  subject,
		Title:    title,
		Content:  input.Content,
	}
	if err := nc.DB.Create(&note).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create note")
	}

	return utils.Created(c, fiber.Map{
		"note_id":      note.ID,
		"note_title":   note.Title,
		"note_content": note.Content,
		"created_at":   note.CreatedAt.Format("Jan 02, 2006 at 3:04 PM"),
	})
}

// SaveQuickNote сохраняет заметку сразу после учебной сессии.
func (nc *NotesController) SaveQuickNote(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input QuickNoteRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	note := models.QuickNote{
		UserID:        userID,
		Subject:       input.Subject,
		Title:         "Untitled Note",
		Content:       input.Content,
		StudyDuration: input.Duration,
	}
	if err := nc.DB.Create(&note).Error; err != nil {
		return utils.InternalServerError(c, "Failed to save note")
	}

	return utils.Created(c, fiber.Map{"note_id": note.ID})
}

// PinNote переключает закрепление заметки.
func (nc *NotesController) PinNote(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid note ID")
	}

	var note models.QuickNote
	if err := nc.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error; err != nil {
		return utils.NotFound(c, "Note not found")
	}

	if note.IsPinned {
		note.IsPinned = false
		note.PinnedAt = nil
	} else {
		now := nc.Now()
		note.IsPinned = true
		note.PinnedAt = &now
	}

	if err := nc.DB.Save(&note).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update note")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"is_pinned": note.IsPinned})
}

// DeleteNote удаляет заметку пользователя.
func (nc *NotesController) DeleteNote(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, nc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid note ID")
	}

	result := nc.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.QuickNote{})
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete note")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Note not found")
	}

	return utils.NoContent(c)
}
