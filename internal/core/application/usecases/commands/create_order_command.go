package commands

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a domain on
// behalf of a team. The order starts at SEOER_ORDER.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(requester, orderID, domainID, teamID, price)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requester role.Requester
	orderID   kernel.UUID
	domainID  kernel.UUID
	teamID    kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field and joins the errors.
func NewCreateOrderCommand(
	requester role.Requester,
	orderID, domainID, teamID kernel.UUID,
	price kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setOrderID(orderID),
		cmd.setDomainID(domainID),
		cmd.setTeamID(teamID),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Requester() role.Requester {
	return c.requester
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) DomainID() kernel.UUID {
	return c.domainID
}

func (c CreateOrderCommand) TeamID() kernel.UUID {
	return c.teamID
}

func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateOrderCommand) setRequester(requester role.Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.requester = requester
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDomainID(domainID kernel.UUID) error {
	if err := domainID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("domainId", err)
	}
	c.domainID = domainID
	return nil
}

func (c *CreateOrderCommand) setTeamID(teamID kernel.UUID) error {
	if err := teamID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("teamId", err)
	}
	c.teamID = teamID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	c.price = price
	return nil
}
