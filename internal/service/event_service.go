package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/repository"
	"github.com/Eursukkul/eventclub/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const minDescriptionLen = 10

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	repo      repository.EventRepository
	publisher EventPublisher
	logger    *zap.Logger
}

func NewEventService(repo repository.EventRepository, publisher EventPublisher, logger *zap.Logger) EventService {
	return &eventService{repo: repo, publisher: publisher, logger: logger.Named("event_service")}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	event.Description = strings.TrimSpace(event.Description)
	event.Location = strings.TrimSpace(event.Location)

	switch {
	case event.Title == "":
		return validation.NewError("title", "title is required")
	case event.Description == "":
		return validation.NewError("description", "description is required")
	case len([]rune(event.Description)) < minDescriptionLen:
		return validation.NewError("description", fmt.Sprintf("description must be at least %d characters", minDescriptionLen))
	case event.Date.IsZero():
		return validation.NewError("date", "date is required")
	case event.Location == "":
		return validation.NewError("location", "location is required")
	}
	event.Date = event.Date.UTC()

	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	publish(ctx, s.publisher, s.logger, KeyEventCreated, event)
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes the event with its registrations. Unknown ids succeed.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	if deleted {
		publish(ctx, s.publisher, s.logger, KeyEventDeleted, map[string]uint{"id": id})
	}
	return nil
}
