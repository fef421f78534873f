package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seomarket/internal/core/ports"
	"seomarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository. Writers insert in the
// transaction of the change they describe; the relay drains pending rows with
// FOR UPDATE SKIP LOCKED so several relays never publish the same row at once.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{
		db: db,
	}
}

func (r *GormOutboxRepository) Add(ctx context.Context, msg ports.OutboxMessage) error {
	eventID, err := uuid.Parse(msg.EventID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("eventId", err)
	}
	if msg.Topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}
	if !json.Valid(msg.Payload) {
		return errs.NewValueIsInvalidErrorWithCause("payload", fmt.Errorf("%d bytes are not valid JSON", len(msg.Payload)))
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	dto := fromPort(msg, eventID)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending must run inside a transaction for the row locks to matter.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return []ports.OutboxMessage{}, nil
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msgs = append(msgs, toPort(dto))
	}
	return msgs, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []int64, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("sent_at", sentAt.UTC()).Error
}
