package repository

import (
	"context"

	"github.com/Eursukkul/eventclub/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	FindByID(ctx context.Context, id uint) (*models.Registration, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.Registration, error)
	FindByEmailWithEvent(ctx context.Context, email string) ([]models.Registration, error)
	UpdateStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.Registration, error) {
	var regs []models.Registration
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// FindByEmailWithEvent inner-joins each registration with its event, so only
// registrations whose event still exists are returned.
func (r *registrationRepository) FindByEmailWithEvent(ctx context.Context, email string) ([]models.Registration, error) {
	var regs []models.Registration
	if err := r.db.WithContext(ctx).
		InnerJoins("Event").
		Where("registrations.email = ?", email).
		Order("registrations.created_at DESC, registrations.id DESC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// UpdateStatus overwrites the status and returns the stored row. A missing id
// yields gorm.ErrRecordNotFound rather than a silent no-op.
func (r *registrationRepository) UpdateStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Registration{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}
