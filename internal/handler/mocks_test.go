package handler

import (
	"context"

	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/validation"
	"github.com/labstack/echo/v4"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

// --- Mock EventService ---

type mockEventService struct {
	createFn func(ctx context.Context, event *models.Event) error
	getFn    func(ctx context.Context, id uint) (*models.Event, error)
	listFn   func(ctx context.Context) ([]models.Event, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockEventService) CreateEvent(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock RegistrationService ---

type mockRegistrationService struct {
	createFn       func(ctx context.Context, eventID uint, name, email string) (*models.Registration, error)
	updateStatusFn func(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error)
	getFn          func(ctx context.Context, id uint) (*models.Registration, error)
	byEmailFn      func(ctx context.Context, email string) ([]models.Registration, error)
	byEventFn      func(ctx context.Context, eventID uint) ([]models.Registration, error)
}

func (m *mockRegistrationService) CreateRegistration(ctx context.Context, eventID uint, name, email string) (*models.Registration, error) {
	return m.createFn(ctx, eventID, name, email)
}
func (m *mockRegistrationService) UpdateRegistrationStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error) {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockRegistrationService) GetRegistration(ctx context.Context, id uint) (*models.Registration, error) {
	return m.getFn(ctx, id)
}
func (m *mockRegistrationService) GetRegistrationsByEmail(ctx context.Context, email string) ([]models.Registration, error) {
	return m.byEmailFn(ctx, email)
}
func (m *mockRegistrationService) GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]models.Registration, error) {
	return m.byEventFn(ctx, eventID)
}

// --- Mock AnnouncementService ---

type mockAnnouncementService struct {
	createFn func(ctx context.Context, a *models.Announcement) error
	listFn   func(ctx context.Context) ([]models.Announcement, error)
}

func (m *mockAnnouncementService) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	return m.createFn(ctx, a)
}
func (m *mockAnnouncementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return m.listFn(ctx)
}
