package ports

import (
	"context"
	"time"
)

// OutboxMessage is an integration event waiting to be published. It is written in
// the same transaction as the state change it describes.
type OutboxMessage struct {
	ID        int64
	EventID   string
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository is the transactional outbox.
type OutboxRepository interface {
	Add(ctx context.Context, msg OutboxMessage) error

	// FetchPending returns up to limit unsent messages in insertion order and
	// locks them so concurrent relays skip them.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkSent(ctx context.Context, ids []int64, sentAt time.Time) error
}
