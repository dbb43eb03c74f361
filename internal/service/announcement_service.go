package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/models"
	"github.com/Eursukkul/eventclub/internal/repository"
	"github.com/Eursukkul/eventclub/internal/validation"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, a *models.Announcement) error
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
}

type announcementService struct {
	repo      repository.AnnouncementRepository
	eventRepo repository.EventRepository
	clock     clock.Clock
	publisher EventPublisher
	logger    *zap.Logger
}

func NewAnnouncementService(
	repo repository.AnnouncementRepository,
	eventRepo repository.EventRepository,
	c clock.Clock,
	publisher EventPublisher,
	logger *zap.Logger,
) AnnouncementService {
	return &announcementService{
		repo:      repo,
		eventRepo: eventRepo,
		clock:     c,
		publisher: publisher,
		logger:    logger.Named("announcement_service"),
	}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Message = strings.TrimSpace(a.Message)
	if a.Title == "" {
		return validation.NewError("title", "title is required")
	}
	if a.Message == "" {
		return validation.NewError("message", "message is required")
	}

	var event *models.Event
	if a.EventID != nil {
		var err error
		event, err = s.eventRepo.FindByID(ctx, *a.EventID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup event %d: %w", *a.EventID, err)
		}
	}

	a.PostedAt = s.clock.Now()
	if err := s.repo.Create(ctx, a); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	a.Event = event

	publish(ctx, s.publisher, s.logger, KeyAnnouncementCreated, a)
	return nil
}

func (s *announcementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.repo.FindAllWithEvent(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}
