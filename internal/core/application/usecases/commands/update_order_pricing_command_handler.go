package commands

import (
	"context"

	"seomarket/internal/pkg/errs"
)

// UpdateOrderPricingCommandHandler lets management edit the money of an order.
// The status engine is not consulted; only the role's pricing capability is.
type UpdateOrderPricingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderPricingCommandHandler(uowFactory OrderUoWFactory) UpdateOrderPricingCommandHandler {
	return UpdateOrderPricingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderPricingCommandHandler) Handle(ctx context.Context, cmd UpdateOrderPricingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requesterRole := cmd.Requester().Role()
	if !requesterRole.CanManagePricing() {
		return errs.NewActionIsForbiddenError(requesterRole.String(), "change order pricing")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdatePricing(cmd.Price(), cmd.Discount(), cmd.PriceAdjustment()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
