package ports

import "context"

// EventPublisher delivers outbox messages to the message broker. Publish either
// delivers every message or returns an error; the relay retries the whole batch.
type EventPublisher interface {
	Publish(ctx context.Context, msgs ...OutboxMessage) error
}
