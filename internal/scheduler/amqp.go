package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/notification"
)

type DelayedPublisher interface {
	PublishDelayed(ctx context.Context, payload any, delay time.Duration) error
}

// AMQP hands reminders to the broker's delay queue so they survive restarts.
// Delivery happens in consumer.ReminderConsumer once the delay has elapsed.
type AMQP struct {
	publisher DelayedPublisher
	clock     clock.Clock
}

func NewAMQP(publisher DelayedPublisher, c clock.Clock) *AMQP {
	return &AMQP{publisher: publisher, clock: c}
}

func (s *AMQP) Schedule(ctx context.Context, p notification.Payload, at time.Time) error {
	if err := s.publisher.PublishDelayed(ctx, p, delayUntil(s.clock.Now(), at)); err != nil {
		return fmt.Errorf("schedule reminder %d: %w", p.RegistrationID, err)
	}
	return nil
}
