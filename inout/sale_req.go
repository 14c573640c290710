package inout

import (
	"strings"

	"resell-dashboard/model"
	"resell-dashboard/services"
	"resell-dashboard/utils"
)

// SaleListReq 销售列表筛选
type SaleListReq struct {
	Platform string `form:"platform"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

func (r SaleListReq) Filter() services.SaleFilter {
	return services.SaleFilter{Platform: strings.TrimSpace(r.Platform), Limit: r.Limit}
}

// SaleFields are shared by the add and edit forms.
type SaleFields struct {
	OrderID               string `form:"order_id" binding:"required,max=128"`
	Platform              string `form:"platform" binding:"required,max=32"`
	ItemName              string `form:"item_name" binding:"max=255"`
	SalePrice             string `form:"sale_price" binding:"required,numeric"`
	PlatformFees          string `form:"platform_fees" binding:"omitempty,numeric"`
	PaymentProcessingFees string `form:"payment_processing_fees" binding:"omitempty,numeric"`
	ShippingCost          string `form:"shipping_cost" binding:"omitempty,numeric"`
	BuyerPaidShipping     string `form:"buyer_paid_shipping"`
	DateSold              string `form:"date_sold" binding:"required,datetime=2006-01-02"`
	BuyerName             string `form:"buyer_name" binding:"max=255"`
	PayoutStatus          string `form:"payout_status" binding:"omitempty,oneof=Pending Paid 'On Hold'"`
	Notes                 string `form:"notes"`
}

// AddSaleReq 新增销售
type AddSaleReq struct {
	SaleFields
	InventorySKU string `form:"inventory_sku" binding:"max=64"`
}

// ToModel converts the form into a sale. Net profit is derived by the service.
func (r AddSaleReq) ToModel() (*model.Sale, error) {
	var p parser
	sale := &model.Sale{
		OrderID:               strings.TrimSpace(r.OrderID),
		Platform:              strings.TrimSpace(r.Platform),
		ItemName:              r.ItemName,
		SalePrice:             p.money("sale_price", r.SalePrice),
		PlatformFees:          p.money("platform_fees", r.PlatformFees),
		PaymentProcessingFees: p.money("payment_processing_fees", r.PaymentProcessingFees),
		ShippingCost:          p.money("shipping_cost", r.ShippingCost),
		BuyerPaidShipping:     checked(r.BuyerPaidShipping),
		BuyerName:             r.BuyerName,
		PayoutStatus:          model.PayoutStatus(r.PayoutStatus),
		Notes:                 r.Notes,
	}
	if sold := p.date("date_sold", r.DateSold); sold != nil {
		sale.DateSold = *sold
	} else {
		sale.DateSold = utils.Today()
	}
	if sale.PayoutStatus == "" {
		sale.PayoutStatus = model.PayoutPending
	}
	if p.err != nil {
		return nil, p.err
	}
	return sale, nil
}

// SKU is the inventory SKU to link, trimmed.
func (r AddSaleReq) SKU() string {
	return strings.TrimSpace(r.InventorySKU)
}

// EditSaleReq 编辑销售
type EditSaleReq struct {
	SaleFields
}

func (r EditSaleReq) ToFields() (services.Fields, error) {
	var p parser
	fields := services.Fields{
		"order_id":                strings.TrimSpace(r.OrderID),
		"platform":                strings.TrimSpace(r.Platform),
		"item_name":               r.ItemName,
		"sale_price":              p.money("sale_price", r.SalePrice),
		"platform_fees":           p.money("platform_fees", r.PlatformFees),
		"payment_processing_fees": p.money("payment_processing_fees", r.PaymentProcessingFees),
		"shipping_cost":           p.money("shipping_cost", r.ShippingCost),
		"buyer_paid_shipping":     checked(r.BuyerPaidShipping),
		"buyer_name":              r.BuyerName,
		"notes":                   r.Notes,
	}
	if sold := p.date("date_sold", r.DateSold); sold != nil {
		fields["date_sold"] = *sold
	}
	if r.PayoutStatus != "" {
		fields["payout_status"] = model.PayoutStatus(r.PayoutStatus)
	}
	if p.err != nil {
		return nil, p.err
	}
	return fields, nil
}
