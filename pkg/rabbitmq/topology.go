package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "eventclub"
	ExchangeKind = "topic"

	// Reminders wait in DelayQueue until their per-message expiration and
	// are then dead-lettered to ExchangeName with ReminderDueKey.
	DelayQueue     = "eventclub.reminders.delay"
	ReminderQueue  = "eventclub.reminders"
	ReminderDueKey = "registration.reminder.due"
)

func dial(url string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := declareTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	if _, err := ch.QueueDeclare(DelayQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    ExchangeName,
		"x-dead-letter-routing-key": ReminderDueKey,
	}); err != nil {
		return fmt.Errorf("rabbitmq delay queue declare: %w", err)
	}

	q, err := ch.QueueDeclare(ReminderQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	if err := ch.QueueBind(q.Name, ReminderDueKey, ExchangeName, false, nil); err != nil {
		return fmt.Errorf("rabbitmq queue bind: %w", err)
	}
	return nil
}
