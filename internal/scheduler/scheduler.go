// Package scheduler defers reminder delivery to a point in time.
package scheduler

import (
	"context"
	"time"

	"github.com/Eursukkul/eventclub/internal/notification"
)

// Scheduler arranges for one reminder to be delivered at (or shortly after)
// the given instant. Each call schedules exactly one delivery.
type Scheduler interface {
	Schedule(ctx context.Context, p notification.Payload, at time.Time) error
}

// ReminderFunc delivers a due reminder.
type ReminderFunc func(ctx context.Context, p notification.Payload)

func delayUntil(now, at time.Time) time.Duration {
	if d := at.Sub(now); d > 0 {
		return d
	}
	return 0
}
