package repository

import (
	"context"

	"github.com/Eursukkul/eventclub/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns events with the most recent date first.
func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("date DESC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes the event together with its registrations and detaches its
// announcements, which stay in the feed as general announcements. It reports
// whether an event row was removed.
func (r *eventRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Announcement{}).
			Where("event_id = ?", id).
			Update("event_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})

	return deleted, err
}
