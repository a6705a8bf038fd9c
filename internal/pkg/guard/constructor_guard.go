// Package guard provides the constructor guard embedded by command and query objects
// so that zero-value instances are rejected before a handler acts on them.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the guarded
// object was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor. Commands and
// queries embed it so handlers can refuse a struct literal that skipped input
// validation.
//
// Example usage:
//
//	var ErrDeleteOrderCommandIsNotConstructed = errors.New(
//	    "DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
//	)
//
//	type DeleteOrderCommand struct {
//	    orderID kernel.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewDeleteOrderCommand(orderID kernel.ID) (DeleteOrderCommand, error) {
//	    if err := orderID.Validate("orderId"); err != nil {
//	        return DeleteOrderCommand{}, err
//	    }
//	    return DeleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c DeleteOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created by NewConstructorGuard.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
