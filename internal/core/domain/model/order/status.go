package order

import (
	"fmt"

	"seomarket/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
//
// Lifecycle:
//
//	SeoerOrder ──┬──> ConfirmedByTeamLeader <──┐
//	             │            │   ^            │
//	             │            v   │            │
//	             └──> RejectedByTeamLeader ────┘
//	                          │
//	ConfirmedByTeamLeader ──> ConfirmedByPartner ──> CompletedByPartner
//	                                                        │
//	    ConfirmedCompletionBySeoer <────────────────────────┤
//	               │                                        │
//	               └──> PaymentApprovedByManager <──────────┘
//	                             │
//	                             └──> PaidByManager
//
//	CancelledBySeoer   <── SeoerOrder | ConfirmedByTeamLeader
//	CancelledByManager <── any status
//
// Which role may take which edge is decided by services.OrderStatusAuthority;
// Status itself only knows the set of values and their names.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// SeoerOrder is the initial status: a SEOer placed the order.
	SeoerOrder

	// ConfirmedByTeamLeader means the SEOer's team leadership approved the order.
	ConfirmedByTeamLeader

	// RejectedByTeamLeader means team leadership turned the order down.
	// Team leadership may still confirm it later.
	RejectedByTeamLeader

	// ConfirmedByPartner means the partner accepted the work.
	ConfirmedByPartner

	// CompletedByPartner means the partner reports the work as done.
	CompletedByPartner

	// ConfirmedCompletionBySeoer means the SEOer accepted the delivered work.
	ConfirmedCompletionBySeoer

	// PaymentApprovedByManager means management approved the payout.
	PaymentApprovedByManager

	// PaidByManager means the partner was paid. Terminal by convention.
	PaidByManager

	// CancelledBySeoer means the SEOer withdrew the order. Terminal by convention,
	// although the SEOer may reopen it as SeoerOrder.
	CancelledBySeoer

	// CancelledByManager means management cancelled the order. Terminal by convention.
	CancelledByManager
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                    "UNKNOWN",
		SeoerOrder:                 "SEOER_ORDER",
		ConfirmedByTeamLeader:      "CONFIRMED_BY_TEAM_LEADER",
		RejectedByTeamLeader:       "REJECTED_BY_TEAM_LEADER",
		ConfirmedByPartner:         "CONFIRMED_BY_PARTNER",
		CompletedByPartner:         "COMPLETED_BY_PARTNER",
		ConfirmedCompletionBySeoer: "CONFIRMED_COMPLETION_BY_SEOER",
		PaymentApprovedByManager:   "PAYMENT_APPROVED_BY_MANAGER",
		PaidByManager:              "PAID_BY_MANAGER",
		CancelledBySeoer:           "CANCELLED_BY_SEOER",
		CancelledByManager:         "CANCELLED_BY_MANAGER",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		SeoerOrder:                 "Ordered by SEOer",
		ConfirmedByTeamLeader:      "Confirmed by team leader",
		RejectedByTeamLeader:       "Rejected by team leader",
		ConfirmedByPartner:         "Confirmed by partner",
		CompletedByPartner:         "Completed by partner",
		ConfirmedCompletionBySeoer: "Completion confirmed by SEOer",
		PaymentApprovedByManager:   "Payment approved by manager",
		PaidByManager:              "Paid by manager",
		CancelledBySeoer:           "Cancelled by SEOer",
		CancelledByManager:         "Cancelled by manager",
	}
}

// AllStatuses returns every valid status in lifecycle order. The result is a
// fresh slice on each call.
func AllStatuses() []Status {
	return []Status{
		SeoerOrder,
		ConfirmedByTeamLeader,
		RejectedByTeamLeader,
		ConfirmedByPartner,
		CompletedByPartner,
		ConfirmedCompletionBySeoer,
		PaymentApprovedByManager,
		PaidByManager,
		CancelledBySeoer,
		CancelledByManager,
	}
}

// ParseStatus converts the wire form ("CONFIRMED_BY_PARTNER") into a Status.
//
// Returns:
//   - the matching Status and nil
//   - Unknown and a ValueIsInvalidError for any other input, including "UNKNOWN"
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if getStatusStrings()[status] == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the Status is one of AllStatuses.
// Unknown (0) and any other values are invalid.
//
// Statuses coming from the database or the API are validated before use.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the human-readable name shown in the UI, or "Unknown" for
// invalid values.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether the lifecycle conventionally ends at this status.
//
// The transition authority does not consult it: a manager may still cancel a
// paid order and a SEOer may reopen an order they cancelled. Queries use it to
// tell active orders from finished ones.
func (s Status) IsTerminal() bool {
	return s == PaidByManager || s == CancelledBySeoer || s == CancelledByManager
}

// StatusStrings maps statuses to their wire form, preserving order.
func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
