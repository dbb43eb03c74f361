package consumer

import (
	"context"
	"encoding/json"

	"github.com/Eursukkul/eventclub/internal/notification"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type ReminderSender interface {
	SendReminder(ctx context.Context, p notification.Payload)
}

// ReminderConsumer delivers reminders whose broker-side delay has elapsed.
type ReminderConsumer struct {
	sender ReminderSender
	logger *zap.Logger
}

func NewReminderConsumer(sender ReminderSender, logger *zap.Logger) *ReminderConsumer {
	return &ReminderConsumer{sender: sender, logger: logger.Named("reminder_consumer")}
}

// Start drains msgs in a background goroutine until the channel closes.
func (rc *ReminderConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go rc.Run(ctx, msgs)
}

func (rc *ReminderConsumer) Run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			rc.logger.Info("context done, stopping consumer")
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logger.Info("channel closed, stopping consumer")
				return
			}
			rc.handleMessage(ctx, msg)
		}
	}
}

func (rc *ReminderConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	var p notification.Payload
	if err := json.Unmarshal(msg.Body, &p); err != nil {
		rc.logger.Error("failed to unmarshal reminder",
			zap.String("message_id", msg.MessageId),
			zap.Error(err),
		)
		msg.Nack(false, false)
		return
	}

	// Delivery failures are logged by the sender; the message is done either way.
	rc.sender.SendReminder(ctx, p)
	msg.Ack(false)

	rc.logger.Debug("reminder delivered", zap.Uint("registration_id", p.RegistrationID))
}
