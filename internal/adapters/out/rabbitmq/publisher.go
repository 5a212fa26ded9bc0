// Package rabbitmq delivers outbox messages to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"kitchenpos/internal/core/ports"
)

var (
	ErrPublishNacked    = errors.New("broker rejected the message")
	ErrConnectionClosed = errors.New("rabbitmq connection is closed")
	ErrConfirmsClosed   = errors.New("rabbitmq confirmation channel is closed")
)

const (
	contentTypeJSON = "application/json"
	// confirms of publishes that timed out wait here until the next Publish drains them
	confirmBuffer = 64
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
	Close() error
}

// Publisher implements ports.MessageBus. Each message is routed by its event
// name and Publish waits for the broker confirm, so a message is only
// reported as sent once RabbitMQ has taken responsibility for it.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	acks     <-chan amqp.Confirmation
	exchange string

	// one publish at a time, so the sequence number read before publishing is ours
	mu sync.Mutex
}

var _ ports.MessageBus = (*Publisher)(nil)

// Dial connects to the broker, declares a durable topic exchange and puts the
// channel into confirm mode.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("rabbitmq exchange is required")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	p := newPublisher(ch, acks, exchange)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, acks <-chan amqp.Confirmation, exchange string) *Publisher {
	return &Publisher{ch: ch, acks: acks, exchange: exchange}
}

// Publish sends the message as a persistent JSON delivery and waits for the
// broker to ack it. Confirms left over from earlier publishes that gave up
// waiting are skipped by delivery tag.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tag := p.ch.GetNextPublishSeqNo()
	err := p.ch.PublishWithContext(ctx, p.exchange, message.EventName, false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    message.ID.String(),
		Type:         message.EventName,
		Timestamp:    message.OccurredAt,
		Body:         message.Payload,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", message.EventName, err)
	}

	for {
		select {
		case conf, ok := <-p.acks:
			if !ok {
				return ErrConfirmsClosed
			}
			if conf.DeliveryTag < tag {
				continue
			}
			if !conf.Ack {
				return fmt.Errorf("publish %s: %w", message.EventName, ErrPublishNacked)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Ping reports whether the connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return ErrConnectionClosed
	}
	return nil
}

func (p *Publisher) Close() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
