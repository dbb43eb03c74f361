package repository

import (
	"context"

	"github.com/Eursukkul/eventclub/internal/models"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	FindAllWithEvent(ctx context.Context) ([]models.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *models.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// FindAllWithEvent returns the feed newest first; Event is nil for general
// announcements.
func (r *announcementRepository) FindAllWithEvent(ctx context.Context) ([]models.Announcement, error) {
	var items []models.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Order("posted_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
