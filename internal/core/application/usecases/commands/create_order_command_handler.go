package commands

import (
	"context"
	"time"

	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders. Only roles that may create
// orders get past it; the order is owned by the requester.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the requester's role, builds the order at SEOER_ORDER and
// persists it in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requester := cmd.Requester()
	if !requester.Role().CanCreateOrders() {
		return errs.NewActionIsForbiddenError(requester.Role().String(), "create orders")
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.DomainID(), cmd.TeamID(), requester.UserID(), cmd.Price(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
