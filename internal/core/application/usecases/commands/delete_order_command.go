package commands

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand soft-deletes an order. Deleted orders disappear from every
// query but their rows and status history stay in the database.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	requester role.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(requester role.Requester, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(requester.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		requester: requester,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Requester() role.Requester {
	return c.requester
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
