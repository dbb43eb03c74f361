package service

import (
	"context"
	"sync"
	"time"

	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/notification"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn   func(ctx context.Context, event *models.Event) error
	findByIDFn func(ctx context.Context, id uint) (*models.Event, error)
	findAllFn  func(ctx context.Context) ([]models.Event, error)
	deleteFn   func(ctx context.Context, id uint) (bool, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Event, error) {
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock RegistrationRepository ---

type mockRegistrationRepo struct {
	createFn        func(ctx context.Context, reg *models.Registration) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Registration, error)
	findByEventIDFn func(ctx context.Context, eventID uint) ([]models.Registration, error)
	findByEmailFn   func(ctx context.Context, email string) ([]models.Registration, error)
	updateStatusFn  func(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error)
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	return m.createFn(ctx, reg)
}
func (m *mockRegistrationRepo) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRegistrationRepo) FindByEventID(ctx context.Context, eventID uint) ([]models.Registration, error) {
	return m.findByEventIDFn(ctx, eventID)
}
func (m *mockRegistrationRepo) FindByEmailWithEvent(ctx context.Context, email string) ([]models.Registration, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error) {
	return m.updateStatusFn(ctx, id, status)
}

// --- Mock AnnouncementRepository ---

type mockAnnouncementRepo struct {
	createFn  func(ctx context.Context, a *models.Announcement) error
	findAllFn func(ctx context.Context) ([]models.Announcement, error)
}

func (m *mockAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	return m.createFn(ctx, a)
}
func (m *mockAnnouncementRepo) FindAllWithEvent(ctx context.Context) ([]models.Announcement, error) {
	return m.findAllFn(ctx)
}

// --- Collaborators ---

type mockConfirmations struct {
	sent    []notification.Payload
	ctxErrs []error
}

func (m *mockConfirmations) SendConfirmation(ctx context.Context, p notification.Payload) {
	m.sent = append(m.sent, p)
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
}

type scheduledReminder struct {
	payload notification.Payload
	at      time.Time
}

type mockScheduler struct {
	scheduled []scheduledReminder
	err       error
}

func (m *mockScheduler) Schedule(_ context.Context, p notification.Payload, at time.Time) error {
	m.scheduled = append(m.scheduled, scheduledReminder{payload: p, at: at})
	return m.err
}

type mockPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (m *mockPublisher) Publish(_ context.Context, key string, _ any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return m.err
}
