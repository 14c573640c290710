package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatus string

const (
	ListingDraft    ListingStatus = "Draft"
	ListingListed   ListingStatus = "Listed"
	ListingSold     ListingStatus = "Sold"
	ListingArchived ListingStatus = "Archived"
)

// ListingStatuses is the display order used by filters and stats.
var ListingStatuses = []ListingStatus{ListingDraft, ListingListed, ListingSold, ListingArchived}

func (s ListingStatus) Valid() bool {
	for _, v := range ListingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ShippingPayer says who bears the outbound shipping cost.
type ShippingPayer string

const (
	PaidByBuyer  ShippingPayer = "Buyer"
	PaidBySeller ShippingPayer = "Seller"
)

// InventoryItem is a single physical item held for resale.
type InventoryItem struct {
	Record
	SKU             string              `json:"sku" gorm:"column:sku;size:64;uniqueIndex;not null"`
	ItemName        string              `json:"item_name" gorm:"column:item_name"`
	Category        string              `json:"category" gorm:"column:category"`
	Size            string              `json:"size" gorm:"column:size"`
	Condition       string              `json:"condition" gorm:"column:condition"`
	Brand           string              `json:"brand" gorm:"column:brand;index"`
	Platforms       StringSet           `json:"platforms" gorm:"column:platforms;type:text"`
	ListingStatus   ListingStatus       `json:"listing_status" gorm:"column:listing_status;size:16;index"`
	PurchasePrice   decimal.Decimal     `json:"purchase_price" gorm:"column:purchase_price;type:numeric(12,2);not null"`
	FeesEstimate    decimal.Decimal     `json:"fees_estimate" gorm:"column:fees_estimate;type:numeric(12,2);not null"`
	ShippingPaidBy  ShippingPayer       `json:"shipping_paid_by" gorm:"column:shipping_paid_by;size:8"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost" gorm:"column:shipping_cost;type:numeric(12,2);not null"`
	SalePrice       decimal.NullDecimal `json:"sale_price" gorm:"column:sale_price;type:numeric(12,2)"`
	Profit          decimal.NullDecimal `json:"profit" gorm:"column:profit;type:numeric(12,2)"`
	ROIPercent      decimal.NullDecimal `json:"roi_percent" gorm:"column:roi_percent;type:numeric(10,2)"`
	DatePurchased   *time.Time          `json:"date_purchased" gorm:"column:date_purchased;type:date"`
	DateListed      *time.Time          `json:"date_listed" gorm:"column:date_listed;type:date"`
	DateSold        *time.Time          `json:"date_sold" gorm:"column:date_sold;type:date"`
	StorageLocation string              `json:"storage_location" gorm:"column:storage_location"`
	Notes           string              `json:"notes" gorm:"column:notes;type:text"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}

// InventoryStats counts items per listing status.
type InventoryStats struct {
	Total    int64 `json:"total"`
	Draft    int64 `json:"draft"`
	Listed   int64 `json:"listed"`
	Sold     int64 `json:"sold"`
	Archived int64 `json:"archived"`
}
