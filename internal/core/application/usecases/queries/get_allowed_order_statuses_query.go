// Package queries contains read-only use cases. Handlers that need storage read
// it directly through GORM raw SQL instead of loading aggregates.
package queries

import (
	"errors"

	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/guard"
)

var ErrGetAllowedOrderStatusesQueryIsNotConstructed = errors.New(
	"GetAllowedOrderStatusesQuery must be created via NewGetAllowedOrderStatusesQuery constructor",
)

// GetAllowedOrderStatusesQuery asks which statuses a role may ever request. The
// UI uses the answer to build its status picker.
type GetAllowedOrderStatusesQuery struct {
	role role.Role

	guard guard.ConstructorGuard
}

func NewGetAllowedOrderStatusesQuery(r role.Role) (GetAllowedOrderStatusesQuery, error) {
	if err := r.Validate(); err != nil {
		return GetAllowedOrderStatusesQuery{}, err
	}

	return GetAllowedOrderStatusesQuery{
		role:  r,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetAllowedOrderStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedOrderStatusesQueryIsNotConstructed)
}

func (q GetAllowedOrderStatusesQuery) Role() role.Role {
	return q.role
}
