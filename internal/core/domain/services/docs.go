// Package services provides the domain rules that span orders and shipments.
//
// The package includes:
//   - FulfillmentPolicy: field validation for both entities and the cross-entity
//     rules for linking a shipment to an order, checking ownership before a safe
//     delete and keeping dispatch dates after order dates
//
// Entities stay plain data; every rule that decides whether an order or shipment
// may be written lives here and is applied by the command handlers before any
// store access.
package services
