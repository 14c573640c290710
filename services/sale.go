package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"resell-dashboard/model"
	"resell-dashboard/pkg/monitoring"
	"resell-dashboard/utils"
)

const DefaultStatsDays = 30

var saleColumns = newColumnSet(
	"id", "order_id", "platform", "item_name", "sale_price", "platform_fees",
	"payment_processing_fees", "shipping_cost", "buyer_paid_shipping", "net_profit",
	"date_sold", "buyer_name", "payout_status", "inventory_id", "notes",
	"created_at", "updated_at",
)

var netProfitInputs = []string{
	"sale_price", "platform_fees", "payment_processing_fees", "shipping_cost", "buyer_paid_shipping",
}

type SaleFilter struct {
	Platform string
	Limit    int
}

type SaleService struct {
	store
	inventory *InventoryService
}

// List returns sales most recent first.
func (s *SaleService) List(ctx context.Context, f SaleFilter) ([]model.Sale, error) {
	return list[model.Sale](ctx, s.store, ListOptions{
		Filters: []Filter{Eq("platform", f.Platform)},
		Order:   []Order{Desc("date_sold"), Desc("created_at")},
		Limit:   f.Limit,
	})
}

func (s *SaleService) GetByID(ctx context.Context, id string) (*model.Sale, error) {
	return getByID[model.Sale](ctx, s.store, id)
}

// GetByOrderID returns the newest sale with the given platform order id.
func (s *SaleService) GetByOrderID(ctx context.Context, orderID string) (*model.Sale, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrNotFound
	}
	rows, err := list[model.Sale](ctx, s.store, ListOptions{
		Filters: []Filter{Eq("order_id", orderID)},
		Order:   []Order{Desc("created_at")},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Create records a sale and, when inventorySKU names an existing item, links
// it and marks the item sold in the same transaction. The linked item is
// returned; it is nil when no SKU was given or none matched.
func (s *SaleService) Create(ctx context.Context, sale *model.Sale, inventorySKU string) (*model.InventoryItem, error) {
	sale.NetProfit = NetProfit(sale.SalePrice, sale.PlatformFees, sale.PaymentProcessingFees, sale.ShippingCost, sale.BuyerPaidShipping)
	if sale.PayoutStatus == "" {
		sale.PayoutStatus = model.PayoutPending
	}
	if sale.DateSold.IsZero() {
		sale.DateSold = utils.Today()
	} else {
		sale.DateSold = utils.TruncateDay(sale.DateSold)
	}

	var linked *model.InventoryItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sales := s.store.with(tx)
		items := s.inventory.store.with(tx)

		if inventorySKU != "" {
			item, err := s.inventory.getBySKU(ctx, items, inventorySKU)
			switch {
			case err == nil:
				linked = item
				sale.InventoryID = &item.ID
			case !errors.Is(err, ErrNotFound):
				return err
			}
		}

		if err := sales.create(ctx, sale); err != nil {
			return err
		}
		if linked == nil {
			return nil
		}

		soldOn := sale.DateSold
		return s.inventory.updateFields(ctx, items, linked.ID, Fields{
			"listing_status": model.ListingSold,
			"date_sold":      &soldOn,
			"sale_price":     decimal.NewNullDecimal(sale.SalePrice),
		})
	})
	if err != nil {
		sale.InventoryID = nil
		return nil, err
	}

	monitoring.RecordSale(sale.Platform)
	return linked, nil
}

// Update merges fields into the sale and recomputes net profit when any of
// its inputs changed.
func (s *SaleService) Update(ctx context.Context, id string, fields Fields) (*model.Sale, error) {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}

	if touchesAny(merged, netProfitInputs) {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		sale := *current
		if v, ok := merged["sale_price"].(decimal.Decimal); ok {
			sale.SalePrice = v
		}
		if v, ok := merged["platform_fees"].(decimal.Decimal); ok {
			sale.PlatformFees = v
		}
		if v, ok := merged["payment_processing_fees"].(decimal.Decimal); ok {
			sale.PaymentProcessingFees = v
		}
		if v, ok := merged["shipping_cost"].(decimal.Decimal); ok {
			sale.ShippingCost = v
		}
		if v, ok := merged["buyer_paid_shipping"].(bool); ok {
			sale.BuyerPaidShipping = v
		}
		merged["net_profit"] = NetProfit(sale.SalePrice, sale.PlatformFees, sale.PaymentProcessingFees, sale.ShippingCost, sale.BuyerPaidShipping)
	}

	if err := s.update(ctx, &model.Sale{}, id, merged); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, &model.Sale{}, id)
}

type salesTotals struct {
	TotalSales  int64           `gorm:"column:total_sales"`
	TotalProfit decimal.Decimal `gorm:"column:total_profit"`
}

// Stats summarises sales dated within the last days days.
func (s *SaleService) Stats(ctx context.Context, days int) (model.SalesStats, error) {
	if days <= 0 {
		days = DefaultStatsDays
	}
	stats := model.SalesStats{TotalProfit: decimal.Zero, ByPlatform: map[string]int64{}, Days: days}
	since := Gte("date_sold", utils.Today().AddDate(0, 0, -days))

	where, err := whereScope(s.columns, []Filter{since})
	if err != nil {
		return stats, err
	}

	start := time.Now()
	var totals salesTotals
	err = s.db.WithContext(ctx).Model(&model.Sale{}).
		Scopes(where).
		Select("COUNT(*) AS total_sales, COALESCE(SUM(net_profit), 0) AS total_profit").
		Scan(&totals).Error
	s.observe("aggregate", start)
	if err != nil {
		return stats, s.fail("aggregate", err)
	}

	byPlatform, err := s.countBy(ctx, &model.Sale{}, "platform", since)
	if err != nil {
		return stats, err
	}

	stats.TotalSales = totals.TotalSales
	stats.TotalProfit = totals.TotalProfit.Round(2)
	stats.ByPlatform = byPlatform
	return stats, nil
}

func touchesAny(fields Fields, columns []string) bool {
	for _, c := range columns {
		if _, ok := fields[c]; ok {
			return true
		}
	}
	return false
}
