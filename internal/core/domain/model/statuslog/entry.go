// Package statuslog records who moved an order to which status and when.
package statuslog

import (
	"errors"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one line of an order's status history. Entries are append-only.
type Entry struct {
	id            kernel.UUID
	orderID       kernel.UUID
	from          order.Status
	to            order.Status
	changedBy     kernel.UUID
	changedByRole role.Role
	fileURL       string
	changedAt     time.Time

	isConstructed bool
}

// NewEntry records event as performed by changedBy acting as changedByRole.
func NewEntry(event order.StatusChanged, changedBy kernel.UUID, changedByRole role.Role) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), event, changedBy, changedByRole)
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(id kernel.UUID, event order.StatusChanged, changedBy kernel.UUID, changedByRole role.Role) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		requireID("orderId", event.OrderID),
		event.From.Validate(),
		event.To.Validate(),
		requireID("changedBy", changedBy),
		changedByRole.Validate(),
		requireTime(event.At),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		orderID:       event.OrderID,
		from:          event.From,
		to:            event.To,
		changedBy:     changedBy,
		changedByRole: changedByRole,
		fileURL:       event.FileURL,
		changedAt:     event.At.UTC(),
		isConstructed: true,
	}, nil
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requireTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	return nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID          { return e.id }
func (e *Entry) OrderID() kernel.UUID     { return e.orderID }
func (e *Entry) From() order.Status       { return e.from }
func (e *Entry) To() order.Status         { return e.to }
func (e *Entry) ChangedBy() kernel.UUID   { return e.changedBy }
func (e *Entry) ChangedByRole() role.Role { return e.changedByRole }
func (e *Entry) FileURL() string          { return e.fileURL }
func (e *Entry) ChangedAt() time.Time     { return e.changedAt }
