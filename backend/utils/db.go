package utils

import (
	"fmt"
	"studytrack/backend/config"
	"studytrack/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с Postgres и выполняет миграции моделей.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.LoginHistory{},
		&models.StudySession{},
		&models.Assignment{},
		&models.SubjectFolder{},
		&models.QuickNote{},
		&models.SupportMessage{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
