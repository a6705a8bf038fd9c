// Package shipment provides the Shipment entity and the closed enumerations that
// describe it: carrier, shipment type and shipment status.
//
// A Shipment keeps the identity of the order that owns it as a plain foreign-key
// value (OrderID), never as an object reference. Zero means the shipment is not
// owned by any order.
//
// Key business rules (enforced by the domain services):
//   - tracking code is required and unique among active shipments
//   - cost is positive
//   - estimated arrival never precedes the dispatch date
//   - dispatch never precedes the owning order's date
package shipment
