package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger

	mu sync.Mutex
}

func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	conn, ch, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, logger: logger.Named("rabbitmq")}, nil
}

// Publish sends payload as JSON to the topic exchange under routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := newMessage(payload)
	if err != nil {
		return err
	}
	if err := p.publish(ctx, ExchangeName, routingKey, msg); err != nil {
		return err
	}

	p.logger.Debug("published",
		zap.String("exchange", ExchangeName),
		zap.String("routing_key", routingKey),
		zap.String("message_id", msg.MessageId),
	)
	return nil
}

// PublishDelayed parks payload in the delay queue; it reaches ReminderQueue
// once delay has elapsed. The delay queue is FIFO, so delays are expected
// to be uniform.
func (p *Publisher) PublishDelayed(ctx context.Context, payload any, delay time.Duration) error {
	msg, err := newMessage(payload)
	if err != nil {
		return err
	}
	msg.DeliveryMode = amqp.Persistent
	msg.Expiration = strconv.FormatInt(delay.Milliseconds(), 10)

	if err := p.publish(ctx, "", DelayQueue, msg); err != nil {
		return err
	}

	p.logger.Debug("published delayed",
		zap.String("queue", DelayQueue),
		zap.Duration("delay", delay),
		zap.String("message_id", msg.MessageId),
	)
	return nil
}

func (p *Publisher) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func newMessage(payload any) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal payload: %w", err)
	}
	return amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Body:        body,
	}, nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
