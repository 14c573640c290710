package inout

import (
	"strings"

	"resell-dashboard/model"
	"resell-dashboard/services"
)

// InventoryListReq 库存列表筛选
type InventoryListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=Draft Listed Sold Archived"`
	Brand  string `form:"brand"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

func (r InventoryListReq) Filter() services.InventoryFilter {
	return services.InventoryFilter{
		Status: model.ListingStatus(r.Status),
		Brand:  strings.TrimSpace(r.Brand),
		Limit:  r.Limit,
	}
}

// InventoryFields are the fields shared by the add and edit forms.
type InventoryFields struct {
	ItemName        string   `form:"item_name" binding:"required,max=255"`
	Category        string   `form:"category" binding:"max=100"`
	Size            string   `form:"size" binding:"max=50"`
	Condition       string   `form:"condition" binding:"max=50"`
	Brand           string   `form:"brand" binding:"max=100"`
	Platforms       []string `form:"platforms"`
	ListingStatus   string   `form:"listing_status" binding:"omitempty,oneof=Draft Listed Sold Archived"`
	PurchasePrice   string   `form:"purchase_price" binding:"omitempty,numeric"`
	FeesEstimate    string   `form:"fees_estimate" binding:"omitempty,numeric"`
	ShippingPaidBy  string   `form:"shipping_paid_by" binding:"omitempty,oneof=Buyer Seller"`
	ShippingCost    string   `form:"shipping_cost" binding:"omitempty,numeric"`
	SalePrice       string   `form:"sale_price" binding:"omitempty,numeric"`
	DatePurchased   string   `form:"date_purchased" binding:"omitempty,datetime=2006-01-02"`
	StorageLocation string   `form:"storage_location" binding:"max=255"`
	Notes           string   `form:"notes"`
}

// AddInventoryReq 新增库存
type AddInventoryReq struct {
	SKU string `form:"sku" binding:"required,max=64"`
	InventoryFields
}

// ToModel converts the form into a new item. Blank amounts are zero.
func (r AddInventoryReq) ToModel() (*model.InventoryItem, error) {
	var p parser
	item := &model.InventoryItem{
		SKU:             strings.TrimSpace(r.SKU),
		ItemName:        strings.TrimSpace(r.ItemName),
		Category:        r.Category,
		Size:            r.Size,
		Condition:       r.Condition,
		Brand:           strings.TrimSpace(r.Brand),
		Platforms:       model.NewStringSet(r.Platforms...),
		ListingStatus:   model.ListingStatus(r.ListingStatus),
		PurchasePrice:   p.money("purchase_price", r.PurchasePrice),
		FeesEstimate:    p.money("fees_estimate", r.FeesEstimate),
		ShippingPaidBy:  model.ShippingPayer(r.ShippingPaidBy),
		ShippingCost:    p.money("shipping_cost", r.ShippingCost),
		SalePrice:       p.optionalMoney("sale_price", r.SalePrice),
		DatePurchased:   p.date("date_purchased", r.DatePurchased),
		StorageLocation: r.StorageLocation,
		Notes:           r.Notes,
	}
	if item.ListingStatus == "" {
		item.ListingStatus = model.ListingDraft
	}
	if item.ShippingPaidBy == "" {
		item.ShippingPaidBy = model.PaidByBuyer
	}
	if p.err != nil {
		return nil, p.err
	}
	return item, nil
}

// EditInventoryReq 编辑库存
type EditInventoryReq struct {
	InventoryFields
	DateListed string `form:"date_listed" binding:"omitempty,datetime=2006-01-02"`
	DateSold   string `form:"date_sold" binding:"omitempty,datetime=2006-01-02"`
}

// ToFields converts the edit form into a partial update.
func (r EditInventoryReq) ToFields() (services.Fields, error) {
	var p parser
	fields := services.Fields{
		"item_name":        strings.TrimSpace(r.ItemName),
		"category":         r.Category,
		"size":             r.Size,
		"condition":        r.Condition,
		"brand":            strings.TrimSpace(r.Brand),
		"platforms":        model.NewStringSet(r.Platforms...),
		"purchase_price":   p.money("purchase_price", r.PurchasePrice),
		"fees_estimate":    p.money("fees_estimate", r.FeesEstimate),
		"shipping_cost":    p.money("shipping_cost", r.ShippingCost),
		"sale_price":       p.optionalMoney("sale_price", r.SalePrice),
		"date_purchased":   p.date("date_purchased", r.DatePurchased),
		"date_listed":      p.date("date_listed", r.DateListed),
		"date_sold":        p.date("date_sold", r.DateSold),
		"storage_location": r.StorageLocation,
		"notes":            r.Notes,
	}
	if r.ListingStatus != "" {
		fields["listing_status"] = model.ListingStatus(r.ListingStatus)
	}
	if r.ShippingPaidBy != "" {
		fields["shipping_paid_by"] = model.ShippingPayer(r.ShippingPaidBy)
	}
	if p.err != nil {
		return nil, p.err
	}
	return fields, nil
}
