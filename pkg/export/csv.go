// Package export writes inventory and sales as CSV downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

// MaxRows caps a single export.
const MaxRows = 10000

const ContentType = "text/csv"

var inventoryHeader = []string{
	"sku", "item_name", "category", "size", "condition", "brand", "listing_status",
	"purchase_price", "sale_price", "profit", "date_purchased", "date_listed",
	"date_sold", "storage_location", "notes",
}

var salesHeader = []string{
	"order_id", "platform", "item_name", "sale_price", "platform_fees",
	"payment_processing_fees", "shipping_cost", "net_profit", "date_sold",
	"payout_status", "buyer_name",
}

// InventoryFileName 库存导出文件名, e.g. inventory_export_20240131.csv
func InventoryFileName(now time.Time) string {
	return fmt.Sprintf("inventory_export_%s.csv", now.Format(utils.FileDateFormat))
}

// SalesFileName 销售导出文件名
func SalesFileName(now time.Time) string {
	return fmt.Sprintf("sales_export_%s.csv", now.Format(utils.FileDateFormat))
}

// WriteInventory writes the header and one row per item.
func WriteInventory(w io.Writer, items []model.InventoryItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(inventoryHeader); err != nil {
		return err
	}
	for _, item := range items {
		row := []string{
			item.SKU,
			item.ItemName,
			item.Category,
			item.Size,
			item.Condition,
			item.Brand,
			string(item.ListingStatus),
			amount(item.PurchasePrice),
			nullAmount(item.SalePrice),
			nullAmount(item.Profit),
			utils.FormatDate(item.DatePurchased),
			utils.FormatDate(item.DateListed),
			utils.FormatDate(item.DateSold),
			item.StorageLocation,
			item.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSales writes the header and one row per sale.
func WriteSales(w io.Writer, sales []model.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(salesHeader); err != nil {
		return err
	}
	for _, sale := range sales {
		row := []string{
			sale.OrderID,
			sale.Platform,
			sale.ItemName,
			amount(sale.SalePrice),
			amount(sale.PlatformFees),
			amount(sale.PaymentProcessingFees),
			amount(sale.ShippingCost),
			amount(sale.NetProfit),
			utils.FormatDate(&sale.DateSold),
			string(sale.PayoutStatus),
			sale.BuyerName,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nullAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return amount(d.Decimal)
}
