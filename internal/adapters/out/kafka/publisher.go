// Package kafka publishes outbox messages to Kafka.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seomarket/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// EventIDHeader carries the outbox event id so consumers can drop duplicates.
// Delivery is at least once: a relay that crashes after publishing and before
// marking the batch sent publishes it again.
const EventIDHeader = "event-id"

var ErrNoBrokers = errors.New("kafka: no brokers configured")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers []string

	// AllowAutoTopicCreation lets the broker create missing topics. Meant for
	// local setups and tests.
	AllowAutoTopicCreation bool

	WriteTimeout time.Duration
}

// Publisher implements ports.EventPublisher. The topic comes from each
// message; the key selects the partition, so messages sharing a key stay in
// order.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}

	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: cfg.AllowAutoTopicCreation,
		WriteTimeout:           writeTimeout,
	}), nil
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

// Publish writes the batch synchronously. An error means some messages may
// not have been written and the whole batch should be retried.
func (p *Publisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(msgs))
	for _, msg := range msgs {
		batch = append(batch, toKafkaMessage(msg))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(msg ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Topic: msg.Topic,
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.CreatedAt.UTC(),
		Headers: []kafka.Header{
			{Key: EventIDHeader, Value: []byte(msg.EventID)},
		},
	}
}

// ParseBrokers splits a comma separated broker list and drops empty entries.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
