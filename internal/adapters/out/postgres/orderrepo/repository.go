package orderrepo

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/adapters/out/postgres/pgerr"
	"orderdesk/internal/adapters/out/postgres/shipmentrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "order"

var updatableColumns = []string{
	"number", "order_date", "customer_name", "total", "status", "shipment_id",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written records.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// Add inserts a new order and copies the generated identity back onto it.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	dto := fromDomain(o)
	dto.ID = 0
	dto.Deleted = false
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, r.failure("add", nil, o))
	}

	o.ID = kernel.ID(dto.ID)
	o.Deleted = false
	r.tracker.TrackAggregate(o.ID, o)
	return nil
}

// Update saves an existing active order, including its shipment reference.
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	dto := fromDomain(o)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(activeOnly).
		Where("id = ?", dto.ID).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, r.failure("update", o.ID, o))
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", o.ID)
	}

	r.tracker.TrackAggregate(o.ID, o)
	return nil
}

// SoftDelete flags an active order as deleted. The referenced shipment is untouched.
func (r *GormOrderRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(activeOnly).
		Where("id = ?", id.Int64()).
		Update("deleted", true)
	if result.Error != nil {
		return pgerr.Translate(result.Error, pgerr.Context{Op: "soft delete", Entity: entity, ID: id})
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	r.tracker.TrackAggregate(id, nil)
	return nil
}

// Get retrieves an active order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.first(ctx, r.db.Scopes(activeOnly).Where("id = ?", id.Int64()), "get", "orderId", id)
}

// GetIncludingDeleted retrieves an order by ID whatever its deleted flag.
func (r *GormOrderRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.first(ctx, r.db.Where("id = ?", id.Int64()), "get including deleted", "orderId", id)
}

// List retrieves every active order ordered by identity.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db.Scopes(activeOnly), "list")
}

// FindByNumber retrieves the active order with exactly this number.
func (r *GormOrderRepository) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	return r.first(ctx, r.db.Scopes(activeOnly).Where("number = ?", number), "find by number", "number", number)
}

// FindByCustomerName retrieves active orders whose customer name contains fragment,
// ignoring case. LIKE wildcards in fragment match literally.
func (r *GormOrderRepository) FindByCustomerName(ctx context.Context, fragment string) ([]*order.Order, error) {
	pattern := "%" + likeEscaper.Replace(fragment) + "%"
	return r.find(ctx, r.db.Scopes(activeOnly).Where("customer_name ILIKE ?", pattern), "find by customer")
}

// FindByShipment retrieves the active order that references the shipment.
func (r *GormOrderRepository) FindByShipment(ctx context.Context, shipmentID kernel.ID) (*order.Order, error) {
	return r.first(ctx,
		r.db.Scopes(activeOnly).Where("shipment_id = ?", shipmentID.Int64()),
		"find by shipment", "shipmentId", shipmentID)
}

func (r *GormOrderRepository) first(ctx context.Context, query *gorm.DB, op, param string, key any) (*order.Order, error) {
	var dto OrderDTO
	if err := query.WithContext(ctx).Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, pgerr.Translate(err, pgerr.Context{Op: op, Entity: entity, ID: key})
	}

	orders, err := r.hydrate(ctx, []OrderDTO{dto})
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

func (r *GormOrderRepository) find(ctx context.Context, query *gorm.DB, op string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, pgerr.Context{Op: op, Entity: entity})
	}

	return r.hydrate(ctx, dtos)
}

// hydrate resolves the shipment references of the rows with one secondary lookup.
func (r *GormOrderRepository) hydrate(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	ids := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ShipmentID != nil {
			ids = append(ids, *dto.ShipmentID)
		}
	}

	shipments, err := shipmentrepo.LoadByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto, shipments)
		if mapErr != nil {
			return nil, errs.NewStoreErrorWithID("map", entity, dto.ID, mapErr)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) failure(op string, id any, o *order.Order) pgerr.Context {
	return pgerr.Context{
		Op:     op,
		Entity: entity,
		ID:     id,
		Fields: map[string]any{"number": o.Number, "shipment": o.ShipmentID()},
	}
}
