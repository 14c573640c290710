package services

import (
	"context"

	"gorm.io/gorm"

	"resell-dashboard/model"
)

var shipmentColumns = newColumnSet(
	"id", "sale_id", "status", "tracking_number", "carrier", "dispatch_deadline",
	"shipped_date", "delivered_date", "notes", "created_at", "updated_at",
)

type ShipmentFilter struct {
	Status model.ShipmentStatus
	Limit  int
}

type ShipmentService struct {
	store
}

func preloadSale(columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload("Sale", func(db *gorm.DB) *gorm.DB {
			return db.Select(append([]string{"id"}, columns...))
		})
	}
}

// List returns shipments newest first with their sale's order id and item name.
func (s *ShipmentService) List(ctx context.Context, f ShipmentFilter) ([]model.Shipment, error) {
	return s.Find(ctx, ListOptions{
		Filters: []Filter{Eq("status", f.Status)},
		Order:   []Order{Desc("created_at")},
		Limit:   f.Limit,
	})
}

// Find runs an arbitrary filtered read with the sale expanded.
func (s *ShipmentService) Find(ctx context.Context, opts ListOptions) ([]model.Shipment, error) {
	return list[model.Shipment](ctx, s.store, opts, preloadSale("order_id", "item_name"))
}

// Pending returns shipments still awaiting dispatch, earliest deadline first
// and undated ones last.
func (s *ShipmentService) Pending(ctx context.Context) ([]model.Shipment, error) {
	return list[model.Shipment](ctx, s.store, ListOptions{
		Filters: []Filter{In("status", model.PendingShipmentStatuses...)},
		Order:   []Order{Asc("dispatch_deadline").WithNulls(NullsLast)},
		Limit:   MaxLimit,
	}, preloadSale("order_id", "item_name", "buyer_name"))
}

// CountPending counts shipments still awaiting dispatch.
func (s *ShipmentService) CountPending(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Shipment{}, In("status", model.PendingShipmentStatuses...))
}

func (s *ShipmentService) GetByID(ctx context.Context, id string) (*model.Shipment, error) {
	return getByID[model.Shipment](ctx, s.store, id)
}

// Create inserts a shipment. New shipments wait for a label unless told otherwise.
func (s *ShipmentService) Create(ctx context.Context, shipment *model.Shipment) error {
	if shipment.Status == "" {
		shipment.Status = model.ShipmentPendingLabel
	}
	shipment.Sale = nil
	return s.create(ctx, shipment)
}

func (s *ShipmentService) Update(ctx context.Context, id string, fields Fields) (*model.Shipment, error) {
	if err := s.update(ctx, &model.Shipment{}, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, &model.Shipment{}, id)
}
