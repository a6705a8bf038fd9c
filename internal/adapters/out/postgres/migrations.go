package postgres

import (
	"context"
	"fmt"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/pgerr"
	"orderdesk/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	name string
	ddl  string
}

// The two tables reference each other, so the constraints are added once both exist.
var foreignKeys = []foreignKey{
	{
		name: pgerr.OrdersShipmentFK,
		ddl: "ALTER TABLE orders ADD CONSTRAINT " + pgerr.OrdersShipmentFK +
			" FOREIGN KEY (shipment_id) REFERENCES shipments(id)",
	},
	{
		name: pgerr.ShipmentsOrderFK,
		ddl: "ALTER TABLE shipments ADD CONSTRAINT " + pgerr.ShipmentsOrderFK +
			" FOREIGN KEY (order_id) REFERENCES orders(id)",
	},
}

// Migrate creates or updates the orders and shipments tables, their partial unique
// indexes and the foreign keys between them. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	for _, fk := range foreignKeys {
		var count int64
		if err := db.Raw("SELECT count(*) FROM pg_constraint WHERE conname = ?", fk.name).Scan(&count).Error; err != nil {
			return fmt.Errorf("inspect constraint %s: %w", fk.name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Exec(fk.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
