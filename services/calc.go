package services

import (
	"github.com/shopspring/decimal"

	"resell-dashboard/model"
)

var hundred = decimal.NewFromInt(100)

// ItemProfit is sale price less purchase, fees and any shipping the seller bears.
func ItemProfit(salePrice, purchasePrice, fees, shippingCost decimal.Decimal, paidBy model.ShippingPayer) decimal.Decimal {
	profit := salePrice.Sub(purchasePrice).Sub(fees)
	if paidBy == model.PaidBySeller {
		profit = profit.Sub(shippingCost)
	}
	return profit
}

// ROIPercent is profit as a percentage of the purchase price. It is unset
// when nothing was paid for the item.
func ROIPercent(profit, purchasePrice decimal.Decimal) decimal.NullDecimal {
	if !purchasePrice.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(profit.Mul(hundred).Div(purchasePrice))
}

// NetProfit is what a sale earns after fees and any shipping the buyer did not pay.
func NetProfit(salePrice, platformFees, processingFees, shippingCost decimal.Decimal, buyerPaidShipping bool) decimal.Decimal {
	net := salePrice.Sub(platformFees).Sub(processingFees)
	if !buyerPaidShipping {
		net = net.Sub(shippingCost)
	}
	return net
}

// applyItemProfit recomputes profit and ROI when the item has a sale price.
func applyItemProfit(item *model.InventoryItem) {
	if !item.SalePrice.Valid {
		return
	}
	profit := ItemProfit(item.SalePrice.Decimal, item.PurchasePrice, item.FeesEstimate, item.ShippingCost, item.ShippingPaidBy)
	item.Profit = decimal.NewNullDecimal(profit)
	item.ROIPercent = ROIPercent(profit, item.PurchasePrice)
}
