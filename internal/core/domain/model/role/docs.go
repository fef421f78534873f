// Package role defines the closed set of requester roles of the marketplace and
// the capabilities that do not depend on an order's status (creating, pricing and
// deleting orders). Status transitions are decided by services.OrderStatusAuthority.
package role
