// Package rabbitmq publishes outbox messages to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"fmt"

	"foodorder/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeType = "topic"

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher routes each message by its event name, e.g. "order.placed",
// so consumers can bind to "order.*" or to a single event.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// Dial connects and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,     // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	err := p.ch.PublishWithContext(ctx,
		p.exchange,    // exchange
		message.Topic, // routing key
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.EventID.String(),
			Timestamp:    message.CreatedAt.UTC(),
			Type:         message.Topic,
			Headers:      amqp.Table{"aggregate_id": message.Key},
			Body:         message.Payload,
		},
	)
	if err != nil {
		return fmt.Errorf("rabbitmq publish %s: %w", message.EventID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

var _ ports.EventPublisher = (*Publisher)(nil)
