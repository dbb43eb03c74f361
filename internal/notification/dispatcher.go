package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Dispatcher struct {
	notifier Notifier
	renderer *Renderer
	logger   *zap.Logger
}

func NewDispatcher(notifier Notifier, renderer *Renderer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, renderer: renderer, logger: logger.Named("notification")}
}

// SendConfirmation delivers the immediate confirmation. Failures are logged.
func (d *Dispatcher) SendConfirmation(ctx context.Context, p Payload) {
	d.dispatch(ctx, "confirmation", p, d.renderer.Confirmation)
}

// SendReminder delivers the follow-up reminder. Failures are logged.
func (d *Dispatcher) SendReminder(ctx context.Context, p Payload) {
	d.dispatch(ctx, "reminder", p, d.renderer.Reminder)
}

func (d *Dispatcher) dispatch(ctx context.Context, kind string, p Payload, render func(Payload) (Message, error)) {
	fields := []zap.Field{
		zap.String("kind", kind),
		zap.Uint("registration_id", p.RegistrationID),
		zap.String("to", p.Email),
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification panicked", append(fields, zap.Any("panic", r))...)
		}
	}()

	msg, err := render(p)
	if err != nil {
		d.logger.Error("render notification", append(fields, zap.Error(err))...)
		return
	}
	if err := d.notifier.Send(ctx, msg); err != nil {
		d.logger.Warn("send notification", append(fields, zap.Error(fmt.Errorf("%s: %w", kind, err)))...)
		return
	}
	d.logger.Info("notification sent", fields...)
}
