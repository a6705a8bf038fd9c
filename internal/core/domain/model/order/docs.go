// Package order provides the Order entity and its status enumeration.
//
// An Order is plain data: identity, soft-delete flag, number, date, customer name,
// total and status, plus an optional resolved reference to the one Shipment it owns.
// The reference is an object in memory and a foreign key in the store; the
// persistence adapters own that translation.
//
// Key business rules (enforced by the domain services, not by the struct):
//   - number is unique among active orders
//   - customer name is required, total is never negative
//   - a new order starts in status NEW
package order
