package commands

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks to move an order to a target status, optionally
// attaching a file (e.g. the partner's completion report).
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	requester role.Requester
	orderID   kernel.UUID
	status    order.Status
	fileURL   string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	requester role.Requester,
	orderID kernel.UUID,
	status order.Status,
	fileURL string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequester(requester),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setFileURL(fileURL),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Requester() role.Requester {
	return c.requester
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// FileURL returns the attached file reference, empty when none.
func (c ChangeOrderStatusCommand) FileURL() string {
	return c.fileURL
}

func (c *ChangeOrderStatusCommand) setRequester(requester role.Requester) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	c.requester = requester
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ChangeOrderStatusCommand) setFileURL(fileURL string) error {
	if len(fileURL) > order.MaxFileURLLength {
		return errs.NewValueIsOutOfRangeError("fileUrl length", len(fileURL), 0, order.MaxFileURLLength)
	}
	c.fileURL = fileURL
	return nil
}
