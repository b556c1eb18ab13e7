// Package kafka publishes outbox messages to Kafka.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodorder/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Header carrying the domain event name, since all order events share one topic.
const EventNameHeader = "event-name"

// batchTimeout bounds how long the writer waits for more messages before flushing.
// kafka-go defaults to one second.
const batchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes every order event to a single topic keyed by order id,
// so events of one order stay in one partition and keep their order.
type Publisher struct {
	writer messageWriter
}

// NewPublisher connects to the comma separated list of brokers.
func NewPublisher(brokersCSV, topic string) (*Publisher, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers in %q", brokersCSV)
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}

	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}), nil
}

func newPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	if err := p.writer.WriteMessages(ctx, toKafkaMessage(message)); err != nil {
		return fmt.Errorf("kafka publish %s: %w", message.EventID, err)
	}
	return nil
}

// PublishBatch sends all messages in a single WriteMessages call.
func (p *Publisher) PublishBatch(ctx context.Context, messages []ports.OutboxMessage) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, message := range messages {
		batch = append(batch, toKafkaMessage(message))
	}

	err := p.writer.WriteMessages(ctx, batch...)
	if err == nil {
		return len(messages), nil
	}

	var writeErrs kafka.WriteErrors
	if !errors.As(err, &writeErrs) {
		return 0, fmt.Errorf("kafka publish batch: %w", err)
	}
	delivered := 0
	for delivered < len(writeErrs) && writeErrs[delivered] == nil {
		delivered++
	}
	if delivered >= len(messages) || delivered >= len(writeErrs) {
		return min(delivered, len(messages)), fmt.Errorf("kafka publish batch: %w", err)
	}
	return delivered, fmt.Errorf("kafka publish %s: %w", messages[delivered].EventID, writeErrs[delivered])
}

func toKafkaMessage(message ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  message.CreatedAt.UTC(),
		Headers: []kafka.Header{
			{Key: EventNameHeader, Value: []byte(message.Topic)},
			{Key: "event-id", Value: []byte(message.EventID.String())},
		},
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

var (
	_ ports.EventPublisher = (*Publisher)(nil)
	_ ports.BatchPublisher = (*Publisher)(nil)
)
