package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"orderdesk/internal/adapters/out/postgres/pgerr"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/shipment"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

const entity = "shipment"

var updatableColumns = []string{
	"tracking", "carrier", "shipment_type", "cost",
	"dispatch_date", "estimated_arrival", "status", "order_id",
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written records.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// Add inserts a new shipment and copies the generated identity back onto it.
func (r *GormShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	dto := fromDomain(s)
	dto.ID = 0
	dto.Deleted = false
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, r.failure("add", nil, s))
	}

	s.ID = kernel.ID(dto.ID)
	s.Deleted = false
	r.tracker.TrackAggregate(s.ID, s)
	return nil
}

// Update writes every column of an active shipment, including a cleared owner.
func (r *GormShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	dto := fromDomain(s)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Scopes(activeOnly).
		Where("id = ?", dto.ID).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, r.failure("update", s.ID, s))
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", s.ID)
	}

	r.tracker.TrackAggregate(s.ID, s)
	return nil
}

// SoftDelete flags an active shipment as deleted.
func (r *GormShipmentRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Scopes(activeOnly).
		Where("id = ?", id.Int64()).
		Update("deleted", true)
	if result.Error != nil {
		return pgerr.Translate(result.Error, pgerr.Context{Op: "soft delete", Entity: entity, ID: id})
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", id)
	}

	r.tracker.TrackAggregate(id, nil)
	return nil
}

// ClearOwner sets order_id to NULL on the shipment row, deleted or not.
func (r *GormShipmentRepository) ClearOwner(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id.Int64()).
		Update("order_id", gorm.Expr("NULL"))
	if result.Error != nil {
		return pgerr.Translate(result.Error, pgerr.Context{Op: "clear owner", Entity: entity, ID: id})
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipmentId", id)
	}

	r.tracker.TrackAggregate(id, nil)
	return nil
}

// Restore clears the deleted flag. Restoring an active shipment succeeds unchanged; a
// tracking code taken over by another active shipment meanwhile fails with
// errs.AlreadyExistsError.
func (r *GormShipmentRepository) Restore(ctx context.Context, id kernel.ID) error {
	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).Where("id = ?", id.Int64()).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("shipmentId", id)
		}
		return pgerr.Translate(err, pgerr.Context{Op: "restore", Entity: entity, ID: id})
	}

	if !dto.Deleted {
		return nil
	}

	err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", id.Int64()).
		Update("deleted", false).Error
	if err != nil {
		return pgerr.Translate(err, pgerr.Context{
			Op: "restore", Entity: entity, ID: id, Fields: map[string]any{"tracking": dto.Tracking},
		})
	}

	r.tracker.TrackAggregate(id, nil)
	return nil
}

// Get retrieves an active shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.first(ctx, r.db.Scopes(activeOnly), "get", id)
}

// GetIncludingDeleted retrieves a shipment by ID whatever its deleted flag.
func (r *GormShipmentRepository) GetIncludingDeleted(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.first(ctx, r.db, "get including deleted", id)
}

// List retrieves every active shipment ordered by identity.
func (r *GormShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Scopes(activeOnly).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, pgerr.Context{Op: "list", Entity: entity})
	}

	return toDomainList(dtos)
}

// FindByTracking retrieves the active shipment holding the tracking code.
func (r *GormShipmentRepository) FindByTracking(ctx context.Context, tracking string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	err := r.db.WithContext(ctx).Scopes(activeOnly).Where("tracking = ?", tracking).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tracking", tracking)
		}
		return nil, pgerr.Translate(err, pgerr.Context{Op: "find by tracking", Entity: entity})
	}

	return ToDomain(dto)
}

// ListOverdue retrieves active shipments not yet delivered whose estimated arrival is
// before asOf, oldest first.
func (r *GormShipmentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Scopes(activeOnly).
		Where("status <> ? AND estimated_arrival < ?", shipment.Delivered.String(), kernel.DateOf(asOf)).
		Order("estimated_arrival, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, pgerr.Context{Op: "list overdue", Entity: entity})
	}

	return toDomainList(dtos)
}

// LoadByIDs reads the shipments with the given identities whatever their deleted
// flag. Order reads use it to resolve shipment references.
func LoadByIDs(ctx context.Context, db *gorm.DB, ids []int64) (map[int64]*shipment.Shipment, error) {
	loaded := make(map[int64]*shipment.Shipment, len(ids))
	if len(ids) == 0 {
		return loaded, nil
	}

	var dtos []ShipmentDTO
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, pgerr.Context{Op: "resolve references", Entity: entity})
	}

	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, errs.NewStoreErrorWithID("map", entity, dto.ID, err)
		}
		loaded[dto.ID] = s
	}
	return loaded, nil
}

func (r *GormShipmentRepository) first(ctx context.Context, db *gorm.DB, op string, id kernel.ID) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id)
		}
		return nil, pgerr.Translate(err, pgerr.Context{Op: op, Entity: entity, ID: id})
	}

	s, err := ToDomain(dto)
	if err != nil {
		return nil, errs.NewStoreErrorWithID("map", entity, id, err)
	}
	return s, nil
}

func (r *GormShipmentRepository) failure(op string, id any, s *shipment.Shipment) pgerr.Context {
	return pgerr.Context{
		Op:     op,
		Entity: entity,
		ID:     id,
		Fields: map[string]any{"tracking": s.Tracking, "order": s.OrderID},
	}
}

func toDomainList(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := ToDomain(dto)
		if err != nil {
			return nil, errs.NewStoreErrorWithID("map", entity, dto.ID, err)
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}
