package queries

import (
	"errors"

	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

const (
	DefaultActiveOrdersLimit = 100
	MaxActiveOrdersLimit     = 1000
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists orders that are neither deleted nor in a terminal
// status, oldest first.
type GetActiveOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery uses DefaultActiveOrdersLimit when limit is zero.
func NewGetActiveOrdersQuery(limit int) (GetActiveOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultActiveOrdersLimit
	}
	if limit < 1 || limit > MaxActiveOrdersLimit {
		return GetActiveOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxActiveOrdersLimit)
	}

	return GetActiveOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Limit() int {
	return q.limit
}
