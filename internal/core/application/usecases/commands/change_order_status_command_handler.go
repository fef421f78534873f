package commands

import (
	"context"
	"time"

	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/statuslog"
	"seomarket/internal/core/domain/services"
)

// ChangeOrderStatusResult is what the requester may do next: the status the order
// is now in and every status their role may request.
type ChangeOrderStatusResult struct {
	Status          order.Status
	AllowedStatuses []order.Status
}

// ChangeOrderStatusCommandHandler moves orders through their lifecycle.
//
// Inside one transaction it locks the order row, asks OrderStatusAuthority
// about the persisted status, applies the change, writes the status log entry
// and the outbox message, and stores the order with a version check. A
// concurrent writer therefore either waits for the row lock or fails with
// errs.ErrVersionConflict; it never acts on a stale status.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, "order.status.changed", observer)
//	cmd, _ := NewChangeOrderStatusCommand(requester, orderID, order.ConfirmedByTeamLeader, "")
//
//	result, err := handler.Handle(ctx, cmd)
//	var forbidden *errs.TransitionIsForbiddenError
//	switch {
//	case errors.As(err, &forbidden):
//	    // show forbidden.AllowedStatuses to the user
//	case errors.Is(err, errs.ErrVersionConflict):
//	    // reload and retry
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	authority  services.OrderStatusAuthority
	observer   TransitionObserver
	topic      string
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler wires the handler. topic is the broker topic
// the outbox messages are addressed to; a nil observer is replaced by a no-op.
func NewChangeOrderStatusCommandHandler(
	uowFactory StatusUoWFactory,
	topic string,
	observer TransitionObserver,
) ChangeOrderStatusCommandHandler {
	if observer == nil {
		observer = nopTransitionObserver{}
	}

	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		authority:  services.NewOrderStatusAuthority(),
		observer:   observer,
		topic:      topic,
		now:        time.Now,
	}
}

// Handle applies the transition or returns:
//   - errs.ErrObjectNotFound if the order does not exist or was deleted
//   - *errs.TransitionIsForbiddenError if the role may not make this move now
//   - errs.ErrVersionConflict if the order changed underneath
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	requester := cmd.Requester()
	current := o.Status()
	permission := h.authority.CheckPermission(requester.Role(), current, cmd.Status())
	h.observer.ObserveTransition(requester.Role(), current, cmd.Status(), permission.Granted)
	if !permission.Granted {
		return ChangeOrderStatusResult{}, h.authority.Authorize(requester.Role(), current, cmd.Status())
	}

	event, err := o.ChangeStatus(cmd.Status(), cmd.FileURL(), h.now())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	entry, err := statuslog.NewEntry(event, requester.UserID(), requester.Role())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}
	if err = uow.StatusLogRepository().Add(ctx, entry); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	msg, err := newOrderStatusChangedMessage(h.topic, event, requester.UserID(), requester.Role())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}
	if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		Status:          o.Status(),
		AllowedStatuses: permission.AllowedStatuses,
	}, nil
}
