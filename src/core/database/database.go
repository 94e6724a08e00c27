package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/okaydivyansh/ecell-quiz/src/core/config"
	"github.com/okaydivyansh/ecell-quiz/src/core/models"
)

// Connect opens the Postgres connection and migrates the schema. Error
// translation is enabled so unique constraint violations surface as
// gorm.ErrDuplicatedKey; the unique index on users.username created here is
// the authoritative guard against duplicate registrations.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.Score{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database successfully connected!")
	return db, nil
}
