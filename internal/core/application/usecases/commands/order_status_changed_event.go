package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/core/ports"
)

// OrderStatusChangedEvent is the integration event published for every status
// change. Consumers (notification fan-out, reporting) read it from the broker.
type OrderStatusChangedEvent struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	FileURL       string    `json:"fileUrl,omitempty"`
	ChangedBy     string    `json:"changedBy"`
	ChangedByRole string    `json:"changedByRole"`
	ChangedAt     time.Time `json:"changedAt"`
}

// newOrderStatusChangedMessage wraps the domain event into an outbox message
// keyed by order id, so a partitioned topic keeps one order's events in order.
func newOrderStatusChangedMessage(
	topic string,
	event order.StatusChanged,
	changedBy kernel.UUID,
	changedByRole role.Role,
) (ports.OutboxMessage, error) {
	eventID := kernel.NewUUID().String()
	payload, err := json.Marshal(OrderStatusChangedEvent{
		EventID:       eventID,
		OrderID:       event.OrderID.String(),
		From:          event.From.String(),
		To:            event.To.String(),
		FileURL:       event.FileURL,
		ChangedBy:     changedBy.String(),
		ChangedByRole: changedByRole.String(),
		ChangedAt:     event.At,
	})
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("marshal order status changed event: %w", err)
	}

	return ports.OutboxMessage{
		EventID:   eventID,
		Topic:     topic,
		Key:       event.OrderID.String(),
		Payload:   payload,
		CreatedAt: event.At,
	}, nil
}
