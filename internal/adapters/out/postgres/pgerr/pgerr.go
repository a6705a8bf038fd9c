// Package pgerr translates PostgreSQL failures into the application's error taxonomy.
// Unique and foreign-key violations become uniqueness or integrity errors; anything
// else is wrapped in errs.StoreError with the operation context.
package pgerr

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Constraint names created by the schema migration.
const (
	OrdersNumberActive      = "ux_orders_number_active"
	OrdersShipmentActive    = "ux_orders_shipment_active"
	ShipmentsTrackingActive = "ux_shipments_tracking_active"
	ShipmentsOrderActive    = "ux_shipments_order_active"
	OrdersShipmentFK        = "fk_orders_shipment"
	ShipmentsOrderFK        = "fk_shipments_order"
)

type uniqueRule struct {
	entity    string
	param     string
	integrity bool
}

var uniqueRules = map[string]uniqueRule{
	OrdersNumberActive:      {entity: "order", param: "number"},
	ShipmentsTrackingActive: {entity: "shipment", param: "tracking"},
	OrdersShipmentActive:    {entity: "order", param: "shipment", integrity: true},
	ShipmentsOrderActive:    {entity: "shipment", param: "order", integrity: true},
}

// Context describes the failed call. Fields holds the values written by the call,
// keyed by the parameter names used in uniqueness errors ("number", "tracking", ...).
type Context struct {
	Op     string
	Entity string
	ID     any
	Fields map[string]any
}

// Translate maps err to the error callers should see. It returns nil for nil.
//
// Example:
//
//	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
//	    return pgerr.Translate(err, pgerr.Context{
//	        Op: "add", Entity: "order", Fields: map[string]any{"number": dto.Number},
//	    })
//	}
func Translate(err error, c Context) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			if rule, ok := uniqueRules[pgErr.ConstraintName]; ok {
				value := c.Fields[rule.param]
				if rule.integrity {
					return errs.NewIntegrityViolationErrorWithCause(
						fmt.Sprintf("%s %v is already linked", rule.param, value), err)
				}
				return errs.NewAlreadyExistsErrorWithCause(rule.entity, rule.param, value, err)
			}
		case foreignKeyViolation:
			return errs.NewIntegrityViolationErrorWithCause(
				fmt.Sprintf("%s references a missing record (%s)", c.Entity, pgErr.ConstraintName), err)
		}
	}

	if c.ID != nil {
		return errs.NewStoreErrorWithID(c.Op, c.Entity, c.ID, err)
	}
	return errs.NewStoreError(c.Op, c.Entity, err)
}
