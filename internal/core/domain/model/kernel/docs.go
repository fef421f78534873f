// Package kernel provides the value objects shared by the marketplace domain model.
//
// The package includes:
//   - UUID: identifier of orders, teams, domains and users
//   - Money: a two-decimal monetary amount backed by shopspring/decimal
//
// Both types are immutable, their zero values are invalid, and Validate reports
// whether a value went through one of its constructors.
package kernel
