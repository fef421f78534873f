// Package order holds the Order aggregate of the marketplace and its status
// enumeration.
//
// An order is placed by a SEOer for a domain, confirmed or rejected by team
// leadership, fulfilled by a partner and finally paid out or cancelled by
// management. The package knows the statuses and keeps the aggregate's own
// values consistent (identifiers, pricing bounds, timestamps). It does not know
// which role may take which step; that table lives in services.OrderStatusAuthority.
package order
