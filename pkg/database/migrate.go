package database

import (
	"fmt"
	"time"

	"github.com/Eursukkul/eventclub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Migrate creates or updates the events, registrations and announcements tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Event{}, &models.Registration{}, &models.Announcement{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
