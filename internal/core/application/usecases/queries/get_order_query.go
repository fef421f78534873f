package queries

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order as seen by the requester.
type GetOrderQuery struct {
	requester role.Requester
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(requester role.Requester, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		requester.Validate(),
		requireOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		requester: requester,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Requester() role.Requester {
	return q.requester
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func requireOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return nil
}
