package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/notification"
	"github.com/Eursukkul/eventclub/internal/repository"
	"github.com/Eursukkul/eventclub/internal/scheduler"
	"github.com/Eursukkul/eventclub/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultReminderDelay = 60 * time.Minute
	minNameLen           = 2
)

type RegistrationService interface {
	CreateRegistration(ctx context.Context, eventID uint, name, email string) (*models.Registration, error)
	UpdateRegistrationStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error)
	GetRegistration(ctx context.Context, id uint) (*models.Registration, error)
	GetRegistrationsByEmail(ctx context.Context, email string) ([]models.Registration, error)
	GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]models.Registration, error)
}

type RegistrationServiceDeps struct {
	Registrations repository.RegistrationRepository
	Events        repository.EventRepository
	Notifier      ConfirmationSender
	Scheduler     scheduler.Scheduler
	Publisher     EventPublisher
	Clock         clock.Clock
	Validator     *validation.Validator
	Logger        *zap.Logger

	ReminderDelay     time.Duration
	StrictTransitions bool
}

type registrationService struct {
	regRepo   repository.RegistrationRepository
	eventRepo repository.EventRepository
	notifier  ConfirmationSender
	scheduler scheduler.Scheduler
	publisher EventPublisher
	clock     clock.Clock
	validator *validation.Validator
	logger    *zap.Logger

	reminderDelay time.Duration
	strict        bool
}

func NewRegistrationService(d RegistrationServiceDeps) RegistrationService {
	s := &registrationService{
		regRepo:       d.Registrations,
		eventRepo:     d.Events,
		notifier:      d.Notifier,
		scheduler:     d.Scheduler,
		publisher:     d.Publisher,
		clock:         d.Clock,
		validator:     d.Validator,
		logger:        d.Logger,
		reminderDelay: d.ReminderDelay,
		strict:        d.StrictTransitions,
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	if s.validator == nil {
		s.validator = validation.New()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	s.logger = s.logger.Named("registration_service")
	if s.reminderDelay <= 0 {
		s.reminderDelay = DefaultReminderDelay
	}
	return s
}

// CreateRegistration stores a pending registration, sends the confirmation
// and schedules one reminder. Notification and scheduling failures are
// logged and do not fail the call.
func (s *registrationService) CreateRegistration(ctx context.Context, eventID uint, name, email string) (*models.Registration, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case eventID == 0:
		return nil, validation.NewError("eventId", "eventId is required")
	case name == "":
		return nil, validation.NewError("name", "name is required")
	case len([]rune(name)) < minNameLen:
		return nil, validation.NewError("name", fmt.Sprintf("name must be at least %d characters", minNameLen))
	case email == "":
		return nil, validation.NewError("email", "email is required")
	case !s.validator.IsEmail(email):
		return nil, validation.NewError("email", "invalid email address")
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup event %d: %w", eventID, err)
	}

	reg := &models.Registration{
		EventID:   eventID,
		Name:      name,
		Email:     email,
		Status:    models.StatusPending,
		CreatedAt: s.clock.Now(),
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	payload := notification.Payload{
		RegistrationID: reg.ID,
		Name:           reg.Name,
		Email:          reg.Email,
		EventTitle:     event.Title,
		EventDate:      event.Date,
		EventLocation:  event.Location,
	}

	// The registration is committed; a client disconnect must not cut the
	// follow-up work short.
	bg := context.WithoutCancel(ctx)

	if s.notifier != nil {
		s.notifier.SendConfirmation(bg, payload)
	}
	if s.scheduler != nil {
		if err := s.scheduler.Schedule(bg, payload, reg.CreatedAt.Add(s.reminderDelay)); err != nil {
			s.logger.Error("schedule reminder", zap.Uint("registration_id", reg.ID), zap.Error(err))
		}
	}
	publish(bg, s.publisher, s.logger, KeyRegistrationCreated, reg)

	return reg, nil
}

func (s *registrationService) UpdateRegistrationStatus(ctx context.Context, id uint, status models.RegistrationStatus) (*models.Registration, error) {
	if !status.Valid() {
		return nil, validation.NewError("status", "status must be one of: pending, confirmed, rejected")
	}

	if s.strict {
		current, err := s.GetRegistration(ctx, id)
		if err != nil {
			return nil, err
		}
		if !models.CanTransition(current.Status, status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, status)
		}
	}

	reg, err := s.regRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update registration %d: %w", id, err)
	}

	publish(ctx, s.publisher, s.logger, KeyRegistrationStatusUpdated, reg)
	return reg, nil
}

func (s *registrationService) GetRegistration(ctx context.Context, id uint) (*models.Registration, error) {
	reg, err := s.regRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get registration %d: %w", id, err)
	}
	return reg, nil
}

// GetRegistrationsByEmail matches email exactly; each result carries its Event.
func (s *registrationService) GetRegistrationsByEmail(ctx context.Context, email string) ([]models.Registration, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validation.NewError("email", "email is required")
	}
	regs, err := s.regRepo.FindByEmailWithEvent(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("registrations by email: %w", err)
	}
	return regs, nil
}

func (s *registrationService) GetRegistrationsByEvent(ctx context.Context, eventID uint) ([]models.Registration, error) {
	regs, err := s.regRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("registrations by event %d: %w", eventID, err)
	}
	return regs, nil
}
