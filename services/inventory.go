package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"resell-dashboard/db"
	"resell-dashboard/model"
	"resell-dashboard/pkg/monitoring"
)

const brandScanLimit = 1000

var inventoryColumns = newColumnSet(
	"id", "sku", "item_name", "category", "size", "condition", "brand", "platforms",
	"listing_status", "purchase_price", "fees_estimate", "shipping_paid_by", "shipping_cost",
	"sale_price", "profit", "roi_percent", "date_purchased", "date_listed", "date_sold",
	"storage_location", "notes", "created_at", "updated_at",
)

// InventoryFilter narrows the inventory list. Zero values mean "any".
type InventoryFilter struct {
	Status model.ListingStatus
	Brand  string
	Limit  int
}

type InventoryService struct {
	store
}

// List returns items newest first.
func (s *InventoryService) List(ctx context.Context, f InventoryFilter) ([]model.InventoryItem, error) {
	return list[model.InventoryItem](ctx, s.store, ListOptions{
		Filters: []Filter{Eq("listing_status", f.Status), Eq("brand", f.Brand)},
		Order:   []Order{Desc("created_at")},
		Limit:   f.Limit,
	})
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (*model.InventoryItem, error) {
	return getByID[model.InventoryItem](ctx, s.store, id)
}

// GetBySKU returns the item with the given SKU, or ErrNotFound.
func (s *InventoryService) GetBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	return s.getBySKU(ctx, s.store, sku)
}

func (s *InventoryService) getBySKU(ctx context.Context, st store, sku string) (*model.InventoryItem, error) {
	defer st.observe("get", time.Now())

	var item model.InventoryItem
	err := st.db.WithContext(ctx).Where("sku = ?", strings.TrimSpace(sku)).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, st.fail("get", err)
	}
	return &item, nil
}

// Create inserts a new item after checking its SKU is free. Profit and ROI
// are derived when a sale price is present.
func (s *InventoryService) Create(ctx context.Context, item *model.InventoryItem) error {
	item.SKU = strings.TrimSpace(item.SKU)
	if item.SKU == "" {
		return errors.New("sku is required")
	}

	_, err := s.GetBySKU(ctx, item.SKU)
	switch {
	case err == nil:
		return ErrDuplicateSKU
	case !errors.Is(err, ErrNotFound):
		return err
	}

	if item.ListingStatus == "" {
		item.ListingStatus = model.ListingDraft
	}
	if item.ShippingPaidBy == "" {
		item.ShippingPaidBy = model.PaidByBuyer
	}
	if item.Platforms == nil {
		item.Platforms = model.StringSet{}
	}
	applyItemProfit(item)

	defer s.observe("create", time.Now())
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return ErrDuplicateSKU
		}
		return s.fail("create", err)
	}
	monitoring.RecordInventoryCreated()
	return nil
}

// Update merges fields into the item. When the update carries a sale price,
// profit and ROI are recomputed from the merged values; a cleared sale price
// clears both.
func (s *InventoryService) Update(ctx context.Context, id string, fields Fields) (*model.InventoryItem, error) {
	if err := s.updateFields(ctx, s.store, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *InventoryService) updateFields(ctx context.Context, st store, id string, fields Fields) error {
	merged := make(Fields, len(fields)+2)
	for k, v := range fields {
		merged[k] = v
	}

	sp, ok := merged["sale_price"].(decimal.NullDecimal)
	switch {
	case ok && !sp.Valid:
		merged["profit"] = decimal.NullDecimal{}
		merged["roi_percent"] = decimal.NullDecimal{}
	case ok:
		current, err := getByID[model.InventoryItem](ctx, st, id)
		if err != nil {
			return err
		}
		item := *current
		mergePricing(&item, merged)
		applyItemProfit(&item)
		merged["profit"] = item.Profit
		merged["roi_percent"] = item.ROIPercent
	}
	return st.update(ctx, &model.InventoryItem{}, id, merged)
}

// mergePricing overlays the pricing columns present in fields onto item.
func mergePricing(item *model.InventoryItem, fields Fields) {
	if v, ok := fields["purchase_price"].(decimal.Decimal); ok {
		item.PurchasePrice = v
	}
	if v, ok := fields["fees_estimate"].(decimal.Decimal); ok {
		item.FeesEstimate = v
	}
	if v, ok := fields["shipping_cost"].(decimal.Decimal); ok {
		item.ShippingCost = v
	}
	if v, ok := fields["shipping_paid_by"].(model.ShippingPayer); ok {
		item.ShippingPaidBy = v
	}
	if v, ok := fields["sale_price"].(decimal.NullDecimal); ok {
		item.SalePrice = v
	}
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, &model.InventoryItem{}, id)
}

// Stats counts items per listing status.
func (s *InventoryService) Stats(ctx context.Context) (model.InventoryStats, error) {
	counts, err := s.countBy(ctx, &model.InventoryItem{}, "listing_status")
	if err != nil {
		return model.InventoryStats{}, err
	}

	stats := model.InventoryStats{
		Draft:    counts[string(model.ListingDraft)],
		Listed:   counts[string(model.ListingListed)],
		Sold:     counts[string(model.ListingSold)],
		Archived: counts[string(model.ListingArchived)],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// Brands returns the distinct non-empty brands among the newest items, sorted.
func (s *InventoryService) Brands(ctx context.Context) ([]string, error) {
	defer s.observe("list", time.Now())

	var raw []string
	err := s.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("brand IS NOT NULL").
		Order("created_at DESC").
		Limit(brandScanLimit).
		Pluck("brand", &raw).Error
	if err != nil {
		return []string{}, s.fail("list", err)
	}

	brands := model.NewStringSet(raw...).Sorted()
	if brands == nil {
		brands = []string{}
	}
	return brands, nil
}
