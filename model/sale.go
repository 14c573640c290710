package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending PayoutStatus = "Pending"
	PayoutPaid    PayoutStatus = "Paid"
	PayoutOnHold  PayoutStatus = "On Hold"
)

var PayoutStatuses = []PayoutStatus{PayoutPending, PayoutPaid, PayoutOnHold}

// Platforms offered by the forms. Stored values are free text.
var Platforms = []string{"Vinted", "eBay", "Depop"}

// Sale is an order received on one of the platforms.
type Sale struct {
	Record
	OrderID               string          `json:"order_id" gorm:"column:order_id;size:128;index"`
	Platform              string          `json:"platform" gorm:"column:platform;size:32;index"`
	ItemName              string          `json:"item_name" gorm:"column:item_name"`
	SalePrice             decimal.Decimal `json:"sale_price" gorm:"column:sale_price;type:numeric(12,2);not null"`
	PlatformFees          decimal.Decimal `json:"platform_fees" gorm:"column:platform_fees;type:numeric(12,2);not null"`
	PaymentProcessingFees decimal.Decimal `json:"payment_processing_fees" gorm:"column:payment_processing_fees;type:numeric(12,2);not null"`
	ShippingCost          decimal.Decimal `json:"shipping_cost" gorm:"column:shipping_cost;type:numeric(12,2);not null"`
	BuyerPaidShipping     bool            `json:"buyer_paid_shipping" gorm:"column:buyer_paid_shipping"`
	NetProfit             decimal.Decimal `json:"net_profit" gorm:"column:net_profit;type:numeric(12,2);not null"`
	DateSold              time.Time       `json:"date_sold" gorm:"column:date_sold;type:date;index"`
	BuyerName             string          `json:"buyer_name" gorm:"column:buyer_name"`
	PayoutStatus          PayoutStatus    `json:"payout_status" gorm:"column:payout_status;size:16"`
	InventoryID           *string         `json:"inventory_id" gorm:"column:inventory_id;size:36;index"`
	Notes                 string          `json:"notes" gorm:"column:notes;type:text"`
}

func (Sale) TableName() string {
	return "sales"
}

// SalesStats summarises sales over a trailing window of days.
type SalesStats struct {
	TotalSales  int64            `json:"total_sales"`
	TotalProfit decimal.Decimal  `json:"total_profit"`
	ByPlatform  map[string]int64 `json:"by_platform"`
	Days        int              `json:"days"`
}
