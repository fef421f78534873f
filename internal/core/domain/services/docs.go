// Package services holds domain services: business rules that belong to no single
// aggregate.
//
// OrderStatusAuthority owns the role-gated transition table of the order
// lifecycle. It answers "may role R move an order from status C to status T?"
// from a static table and reports which statuses R may request at all.
package services
