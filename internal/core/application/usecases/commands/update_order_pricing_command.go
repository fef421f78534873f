package commands

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

var ErrUpdateOrderPricingCommandIsNotConstructed = errors.New(
	"UpdateOrderPricingCommand must be created via NewUpdateOrderPricingCommand constructor",
)

// UpdateOrderPricingCommand replaces price, discount and price adjustment of an
// order. It is independent of the order status.
type UpdateOrderPricingCommand struct { //nolint:recvcheck //using for validation
	requester       role.Requester
	orderID         kernel.UUID
	price           kernel.Money
	discount        kernel.Money
	priceAdjustment kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateOrderPricingCommand(
	requester role.Requester,
	orderID kernel.UUID,
	price, discount, priceAdjustment kernel.Money,
) (UpdateOrderPricingCommand, error) {
	cmd := UpdateOrderPricingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setOrderID(orderID),
		requireMoney("price", price),
		requireMoney("discount", discount),
		requireMoney("priceAdjustment", priceAdjustment),
	); err != nil {
		return UpdateOrderPricingCommand{}, err
	}

	cmd.price = price
	cmd.discount = discount
	cmd.priceAdjustment = priceAdjustment
	return cmd, nil
}

func (c UpdateOrderPricingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPricingCommandIsNotConstructed)
}

func (c UpdateOrderPricingCommand) Requester() role.Requester {
	return c.requester
}

func (c UpdateOrderPricingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderPricingCommand) Price() kernel.Money {
	return c.price
}

func (c UpdateOrderPricingCommand) Discount() kernel.Money {
	return c.discount
}

func (c UpdateOrderPricingCommand) PriceAdjustment() kernel.Money {
	return c.priceAdjustment
}

func (c *UpdateOrderPricingCommand) setRequester(requester role.Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.requester = requester
	return nil
}

func (c *UpdateOrderPricingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func requireMoney(name string, m kernel.Money) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
