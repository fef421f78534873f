package role

import (
	"fmt"

	"seomarket/internal/pkg/errs"
)

// Role is the authority level of a requester. The set is closed: a value outside
// the constants below is invalid and String reports it as "UNKNOWN".
type Role int

const (
	// Unknown catches uninitialized Role values.
	Unknown Role = iota
	SuperAdmin
	Manager
	Assistant
	TeamLeader
	ViceTeamLeader
	Partner
	Seoer
	// DomainBuyer works with the domain catalogue only and has no order transitions.
	DomainBuyer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:        "UNKNOWN",
		SuperAdmin:     "SUPER_ADMIN",
		Manager:        "MANAGER",
		Assistant:      "ASSISTANT",
		TeamLeader:     "TEAM_LEADER",
		ViceTeamLeader: "VICE_TEAM_LEADER",
		Partner:        "PARTNER",
		Seoer:          "SEOER",
		DomainBuyer:    "DOMAIN_BUYER",
	}
}

// All returns every valid role in declaration order.
func All() []Role {
	return []Role{SuperAdmin, Manager, Assistant, TeamLeader, ViceTeamLeader, Partner, Seoer, DomainBuyer}
}

// ParseRole converts the wire form ("TEAM_LEADER") into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range All() {
		if getRoleStrings()[r] == s {
			return r, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

// Validate rejects Unknown and out-of-range values.
func (r Role) Validate() error {
	if r <= Unknown || r > DomainBuyer {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire form of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanCreateOrders reports whether the role may place a new order.
func (r Role) CanCreateOrders() bool {
	switch r {
	case SuperAdmin, Manager, Assistant, Seoer:
		return true
	default:
		return false
	}
}

// CanManagePricing reports whether the role may change price, discount and
// price adjustment. Pricing is not tied to the order status.
func (r Role) CanManagePricing() bool {
	switch r {
	case SuperAdmin, Manager, Assistant:
		return true
	default:
		return false
	}
}

// CanDeleteOrders reports whether the role may soft-delete orders.
func (r Role) CanDeleteOrders() bool {
	switch r {
	case SuperAdmin, Manager, Assistant:
		return true
	default:
		return false
	}
}
