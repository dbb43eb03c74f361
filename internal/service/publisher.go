package service

import (
	"context"

	"github.com/Eursukkul/eventclub/internal/notification"
	"go.uber.org/zap"
)

// Routing keys for domain events.
const (
	KeyEventCreated              = "event.created"
	KeyEventDeleted              = "event.deleted"
	KeyRegistrationCreated       = "registration.created"
	KeyRegistrationStatusUpdated = "registration.status_updated"
	KeyAnnouncementCreated       = "announcement.created"
)

// EventPublisher emits domain events. A nil publisher disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, p notification.Payload)
}

func publish(ctx context.Context, pub EventPublisher, logger *zap.Logger, key string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, key, payload); err != nil {
		logger.Warn("publish domain event", zap.String("routing_key", key), zap.Error(err))
	}
}
