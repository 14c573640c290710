package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"resell-dashboard/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestItemProfit(t *testing.T) {
	tests := []struct {
		name   string
		sale   string
		buy    string
		fees   string
		ship   string
		paidBy model.ShippingPayer
		want   string
	}{
		{"seller pays shipping", "20.00", "10.00", "1.00", "2.00", model.PaidBySeller, "7.00"},
		{"buyer pays shipping", "20.00", "10.00", "1.00", "2.00", model.PaidByBuyer, "9.00"},
		{"loss", "5.00", "10.00", "0.50", "3.00", model.PaidBySeller, "-8.50"},
		{"free item", "12.00", "0", "0", "0", model.PaidByBuyer, "12.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemProfit(dec(tt.sale), dec(tt.buy), dec(tt.fees), dec(tt.ship), tt.paidBy)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ItemProfit() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestROIPercent(t *testing.T) {
	roi := ROIPercent(dec("7"), dec("10"))
	if !roi.Valid || !roi.Decimal.Equal(dec("70")) {
		t.Errorf("ROIPercent(7, 10) = %v, want 70", roi)
	}
	if roi := ROIPercent(dec("12"), decimal.Zero); roi.Valid {
		t.Errorf("ROIPercent with zero purchase price = %v, want unset", roi)
	}
	if roi := ROIPercent(dec("1"), dec("-1")); roi.Valid {
		t.Errorf("ROIPercent with negative purchase price = %v, want unset", roi)
	}
}

func TestNetProfit(t *testing.T) {
	got := NetProfit(dec("30"), dec("3"), dec("1.20"), dec("4"), false)
	if !got.Equal(dec("21.80")) {
		t.Errorf("NetProfit seller shipping = %s, want 21.80", got)
	}
	got = NetProfit(dec("30"), dec("3"), dec("1.20"), dec("4"), true)
	if !got.Equal(dec("25.80")) {
		t.Errorf("NetProfit buyer shipping = %s, want 25.80", got)
	}
}

func TestApplyItemProfitWithoutSalePrice(t *testing.T) {
	item := &model.InventoryItem{PurchasePrice: dec("10")}
	applyItemProfit(item)
	if item.Profit.Valid || item.ROIPercent.Valid {
		t.Errorf("profit computed without a sale price: %+v", item)
	}
}
