package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/notification"
	"go.uber.org/zap"
)

// Timer keeps scheduled reminders in process memory. Nothing is persisted:
// reminders still pending when the process exits are dropped.
type Timer struct {
	clock   clock.Clock
	fire    ReminderFunc
	logger  *zap.Logger
	pending atomic.Int64
}

func NewTimer(c clock.Clock, fire ReminderFunc, logger *zap.Logger) *Timer {
	return &Timer{clock: c, fire: fire, logger: logger.Named("scheduler")}
}

func (t *Timer) Schedule(_ context.Context, p notification.Payload, at time.Time) error {
	delay := delayUntil(t.clock.Now(), at)
	t.pending.Add(1)

	t.clock.AfterFunc(delay, func() {
		defer t.pending.Add(-1)
		t.fire(context.Background(), p)
	})

	t.logger.Debug("reminder scheduled",
		zap.Uint("registration_id", p.RegistrationID),
		zap.Duration("delay", delay),
	)
	return nil
}

// Pending returns the number of reminders scheduled but not yet delivered.
func (t *Timer) Pending() int64 {
	return t.pending.Load()
}
