package queries

import (
	"context"

	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/services"
)

// StatusOption is a status as the UI shows it.
type StatusOption struct {
	Status order.Status
	Code   string
	Label  string
}

// NewStatusOptions maps statuses to their codes and labels, keeping the order.
func NewStatusOptions(statuses []order.Status) []StatusOption {
	options := make([]StatusOption, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, StatusOption{
			Status: s,
			Code:   s.String(),
			Label:  s.Label(),
		})
	}
	return options
}

// GetAllowedOrderStatusesQueryHandler answers from the static rule table and
// never touches storage.
type GetAllowedOrderStatusesQueryHandler struct {
	authority services.OrderStatusAuthority
}

func NewGetAllowedOrderStatusesQueryHandler() GetAllowedOrderStatusesQueryHandler {
	return GetAllowedOrderStatusesQueryHandler{
		authority: services.NewOrderStatusAuthority(),
	}
}

func (h GetAllowedOrderStatusesQueryHandler) Handle(
	_ context.Context,
	query GetAllowedOrderStatusesQuery,
) ([]StatusOption, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return NewStatusOptions(h.authority.AllowedStatuses(query.Role())), nil
}
