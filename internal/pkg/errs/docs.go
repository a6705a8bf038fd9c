// Package errs provides standardized error types for the orderdesk application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types grouped into the categories callers
// react to:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//     and IntegrityViolationError all match ErrValidation
//   - Uniqueness: AlreadyExistsError, for a value that is already held by an active record
//   - Absence: ObjectNotFoundError, for an identity with no active record behind it
//   - Integrity: IntegrityViolationError, for an operation that would break the
//     ownership link between an order and its shipment
//   - Store: StoreError, for persistence failures wrapped with operation context
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Classification is done with errors.Is against the sentinels:
//
//	switch {
//	case errors.Is(err, errs.ErrAlreadyExists):
//	    // ask for another order number
//	case errors.Is(err, errs.ErrValidation):
//	    // report the offending field
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // nothing to show
//	}
package errs
