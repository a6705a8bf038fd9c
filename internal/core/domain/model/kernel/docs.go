// Package kernel provides the domain primitives shared by orders and shipments.
//
// The package includes:
//   - ID: the store-assigned integer identity of a record; zero and negative values
//     are never valid targets
//   - Date helpers: calendar dates normalised to UTC midnight with a single text form
//   - Record: the soft-delete capability both entities expose
//
// Entities are plain data. The rules that relate fields to each other live in the
// domain services package; the primitives here only know how to validate themselves.
package kernel
