package services

import (
	"slices"

	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"
	"seomarket/internal/pkg/errs"
)

// Permission is the answer of OrderStatusAuthority for one requested transition.
//
// AllowedStatuses is the set of statuses the role may ever request, independent of
// the current status. It is empty when the target is outside that set, and it is
// meant for the UI, not for access control.
type Permission struct {
	Granted         bool
	AllowedStatuses []order.Status
}

// edge lists the current statuses from which a target may be reached.
type edge struct {
	from    []order.Status
	fromAny bool
}

// allows reports whether current is a valid status the edge starts from.
func (e edge) allows(current order.Status) bool {
	if e.fromAny {
		return current.Validate() == nil
	}
	return slices.Contains(e.from, current)
}

// transitionRule is the rule of one role: the targets it may request and, per
// target, the statuses the order must currently be in.
type transitionRule struct {
	targets []order.Status
	edges   map[order.Status]edge
}

func (r transitionRule) isAllowed(target, current order.Status) bool {
	e, ok := r.edges[target]
	return ok && e.allows(current)
}

var (
	partnerRule = transitionRule{
		targets: []order.Status{order.ConfirmedByPartner, order.CompletedByPartner},
		edges: map[order.Status]edge{
			order.ConfirmedByPartner: {from: []order.Status{order.ConfirmedByTeamLeader}},
			order.CompletedByPartner: {from: []order.Status{order.ConfirmedByPartner}},
		},
	}

	// Shared by TEAM_LEADER and VICE_TEAM_LEADER. Confirm and reject may
	// alternate any number of times.
	teamLeadershipRule = transitionRule{
		targets: []order.Status{order.ConfirmedByTeamLeader, order.RejectedByTeamLeader},
		edges: map[order.Status]edge{
			order.ConfirmedByTeamLeader: {from: []order.Status{order.SeoerOrder, order.RejectedByTeamLeader}},
			order.RejectedByTeamLeader:  {from: []order.Status{order.SeoerOrder, order.ConfirmedByTeamLeader}},
		},
	}

	seoerRule = transitionRule{
		targets: []order.Status{order.SeoerOrder, order.CancelledBySeoer, order.ConfirmedCompletionBySeoer},
		edges: map[order.Status]edge{
			order.SeoerOrder:                 {from: []order.Status{order.CancelledBySeoer}},
			order.CancelledBySeoer:           {from: []order.Status{order.SeoerOrder, order.ConfirmedByTeamLeader}},
			order.ConfirmedCompletionBySeoer: {from: []order.Status{order.CompletedByPartner}},
		},
	}

	// Shared by MANAGER and ASSISTANT. Cancellation is allowed from every valid
	// status, terminal ones included.
	managementRule = transitionRule{
		targets: []order.Status{order.PaymentApprovedByManager, order.PaidByManager, order.CancelledByManager},
		edges: map[order.Status]edge{
			order.PaymentApprovedByManager: {from: []order.Status{order.ConfirmedCompletionBySeoer, order.CompletedByPartner}},
			order.PaidByManager:            {from: []order.Status{order.PaymentApprovedByManager}},
			order.CancelledByManager:       {fromAny: true},
		},
	}
)

// ruleFor returns the transition rule of r. SuperAdmin bypasses rules and
// DomainBuyer has none, so both report false, as does any invalid role.
func ruleFor(r role.Role) (transitionRule, bool) {
	switch r {
	case role.Partner:
		return partnerRule, true
	case role.TeamLeader, role.ViceTeamLeader:
		return teamLeadershipRule, true
	case role.Seoer:
		return seoerRule, true
	case role.Manager, role.Assistant:
		return managementRule, true
	case role.SuperAdmin, role.DomainBuyer, role.Unknown:
		return transitionRule{}, false
	default:
		return transitionRule{}, false
	}
}

// OrderStatusAuthority decides whether a role may move an order from its current
// status to a target status.
//
// The authority is a pure function over a static rule table: it holds no state,
// performs no I/O and never fails. An unknown role or status is answered with a
// denial and an empty allowed set. The zero value is ready to use and safe for
// concurrent use.
//
// Example:
//
//	authority := services.NewOrderStatusAuthority()
//	p := authority.CheckPermission(role.TeamLeader, order.SeoerOrder, order.ConfirmedByTeamLeader)
//	// p.Granted == true
//	// p.AllowedStatuses == [CONFIRMED_BY_TEAM_LEADER REJECTED_BY_TEAM_LEADER]
type OrderStatusAuthority struct{}

func NewOrderStatusAuthority() OrderStatusAuthority {
	return OrderStatusAuthority{}
}

// CheckPermission reports whether r may move an order at current to target.
//
//  1. SuperAdmin is granted everything and gets all statuses back.
//  2. A role without a rule, or a target outside the role's set, is denied with
//     an empty allowed set.
//  3. Otherwise the rule's edge for target decides, and the role's full set is
//     returned either way.
func (OrderStatusAuthority) CheckPermission(r role.Role, current, target order.Status) Permission {
	if r == role.SuperAdmin {
		return Permission{Granted: true, AllowedStatuses: order.AllStatuses()}
	}

	rule, ok := ruleFor(r)
	if !ok || !slices.Contains(rule.targets, target) {
		return Permission{Granted: false, AllowedStatuses: []order.Status{}}
	}

	return Permission{
		Granted:         rule.isAllowed(target, current),
		AllowedStatuses: slices.Clone(rule.targets),
	}
}

// AllowedStatuses returns every status r may ever request, regardless of where an
// order currently is. Used by the UI to build status pickers.
func (OrderStatusAuthority) AllowedStatuses(r role.Role) []order.Status {
	if r == role.SuperAdmin {
		return order.AllStatuses()
	}

	rule, ok := ruleFor(r)
	if !ok {
		return []order.Status{}
	}
	return slices.Clone(rule.targets)
}

// Authorize is CheckPermission for callers that want an error. A denial is
// returned as *errs.TransitionIsForbiddenError naming the role, the attempted
// move and the statuses the role may request.
func (a OrderStatusAuthority) Authorize(r role.Role, current, target order.Status) error {
	p := a.CheckPermission(r, current, target)
	if p.Granted {
		return nil
	}

	allowed := a.AllowedStatuses(r)
	return errs.NewTransitionIsForbiddenError(r.String(), current.String(), target.String(), order.StatusStrings(allowed))
}
