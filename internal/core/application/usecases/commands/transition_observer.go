package commands

import (
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
)

// TransitionObserver is told about every authority decision the status handler
// makes. The metrics package implements it.
type TransitionObserver interface {
	ObserveTransition(r role.Role, from, to order.Status, granted bool)
}

type nopTransitionObserver struct{}

func (nopTransitionObserver) ObserveTransition(role.Role, order.Status, order.Status, bool) {}
