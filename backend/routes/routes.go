package routes

import (
	"studytrack/backend/config"
	"studytrack/backend/controllers"
	"studytrack/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Dashboard
	dashboardController := controllers.NewDashboardController(db, cfg)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Study routes
	studyController := controllers.NewStudyController(db, cfg)
	study := app.Group("/api/study", authMiddleware)
	study.Post("/save", studyController.SaveSession)
	study.Get("/subjects", studyController.GetSubjects)
	study.Get("/today", studyController.GetTodayTotal)

	// Assignments routes
	assignmentsController := controllers.NewAssignmentsController(db, cfg)
	assignments := app.Group("/api/assignments", authMiddleware)
	assignments.Get("/", assignmentsController.GetAssignments)
	assignments.Post("/", assignmentsController.AddAssignment)
	assignments.Get("/completed/all", assignmentsController.GetAllCompleted)
	assignments.Put("/:id", assignmentsController.UpdateAssignment)
	assignments.Post("/:id/complete", assignmentsController.CompleteAssignment)
	assignments.Delete("/:id", assignmentsController.DeleteAssignment)

	// Notes and folders
	notesController := controllers.NewNotesController(db, cfg)
	notes := app.Group("/api/notes", authMiddleware)
	notes.Get("/", notesController.GetNotes)
	notes.Post("/", notesController.CreateNote)
	notes.Post("/quick", notesController.SaveQuickNote)
	notes.Post("/:id/pin", notesController.PinNote)
	notes.Delete("/:id", notesController.DeleteNote)
	app.Post("/api/folders", authMiddleware, notesController.CreateFolder)
	app.Delete("/api/folders/:id", authMiddleware, notesController.DeleteFolder)

	// Support messages
	supportController := controllers.NewSupportController(db, cfg)
	app.Get("/api/feedback/approved", supportController.ApprovedFeedback) // login page, no auth
	support := app.Group("/api/support", authMiddleware)
	support.Post("/messages", supportController.SendMessage)
	support.Get("/messages", supportController.MyMessages)

	// Admin console
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/messages", adminController.Inbox)
	admin.Get("/messages/unresolved-count", adminController.UnresolvedCount)
	admin.Post("/messages/:id/respond", adminController.Respond)
	admin.Post("/messages/:id/resolve", adminController.Resolve)
	admin.Post("/messages/:id/approve-feedback", adminController.ApproveFeedback)
	admin.Post("/messages/:id/apply-correction", adminController.ApplyTimeCorrection)
	admin.Get("/sessions", adminController.ListSessions)
	admin.Put("/sessions/:id", adminController.CorrectSession)
	admin.Delete("/sessions/:id", adminController.DeleteSession)
	admin.Get("/leaderboard", adminController.Leaderboard)
	admin.Get("/report", adminController.BulkReport)
}
