package inout

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"resell-dashboard/model"
)

func init() {
	SetupValidator()
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestAddInventoryReqToModel(t *testing.T) {
	form := url.Values{
		"sku":              {" A1 "},
		"item_name":        {"Denim jacket"},
		"platforms":        {"Vinted", "eBay", "Vinted"},
		"purchase_price":   {"10.00"},
		"fees_estimate":    {"1.00"},
		"shipping_paid_by": {"Seller"},
		"shipping_cost":    {"2.00"},
		"sale_price":       {"20.00"},
		"date_purchased":   {"2024-02-01"},
	}
	var req AddInventoryReq
	if err := binding.Form.Bind(formRequest(form), &req); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	item, err := req.ToModel()
	if err != nil {
		t.Fatal(err)
	}
	if item.SKU != "A1" {
		t.Errorf("sku = %q", item.SKU)
	}
	if len(item.Platforms) != 2 {
		t.Errorf("platforms = %v", item.Platforms)
	}
	if !item.SalePrice.Valid || !item.SalePrice.Decimal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("sale price = %v", item.SalePrice)
	}
	if item.ListingStatus != model.ListingDraft {
		t.Errorf("listing status = %q, want Draft", item.ListingStatus)
	}
	if item.DatePurchased == nil || !item.DatePurchased.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date purchased = %v", item.DatePurchased)
	}
}

func TestAddInventoryReqBlankAmounts(t *testing.T) {
	req := AddInventoryReq{SKU: "B1", InventoryFields: InventoryFields{ItemName: "Scarf"}}
	item, err := req.ToModel()
	if err != nil {
		t.Fatal(err)
	}
	if !item.PurchasePrice.IsZero() || item.SalePrice.Valid || item.DatePurchased != nil {
		t.Errorf("blank fields not defaulted: %+v", item)
	}
	if item.ShippingPaidBy != model.PaidByBuyer {
		t.Errorf("shipping paid by = %q, want Buyer", item.ShippingPaidBy)
	}
}

func TestBindingValidation(t *testing.T) {
	tests := []struct {
		name    string
		obj     interface{}
		form    url.Values
		message string
	}{
		{"missing sku", &AddInventoryReq{}, url.Values{"item_name": {"x"}}, "sku is required"},
		{"bad price", &AddInventoryReq{}, url.Values{"sku": {"A"}, "item_name": {"x"}, "purchase_price": {"ten"}}, "purchase_price must be a number"},
		{"bad date", &AddTaskReq{}, url.Values{"title": {"t"}, "due_date": {"31/12/2024"}}, "due_date must be a date"},
		{"bad status", &UpdateShipmentReq{}, url.Values{"status": {"Lost"}}, "status must be one of"},
		{"bad payout", &AddSaleReq{}, url.Values{"order_id": {"1"}, "platform": {"eBay"}, "sale_price": {"5"}, "date_sold": {"2024-01-01"}, "payout_status": {"Later"}}, "payout_status must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Form.Bind(formRequest(tt.form), tt.obj)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if msg := ValidationMessage(err); !strings.Contains(msg, tt.message) {
				t.Errorf("message = %q, want it to contain %q", msg, tt.message)
			}
		})
	}
}

func TestStatusesWithSpacesValidate(t *testing.T) {
	var req UpdateShipmentReq
	if err := binding.Form.Bind(formRequest(url.Values{"status": {"Label Created"}}), &req); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	var sale AddSaleReq
	form := url.Values{"order_id": {"1"}, "platform": {"eBay"}, "sale_price": {"5"}, "date_sold": {"2024-01-01"}, "payout_status": {"On Hold"}}
	if err := binding.Form.Bind(formRequest(form), &sale); err != nil {
		t.Fatalf("Bind: %v", err)
	}
}

func TestAddSaleReqToModel(t *testing.T) {
	req := AddSaleReq{
		SaleFields: SaleFields{
			OrderID:           "ORD-1",
			Platform:          "Vinted",
			SalePrice:         "30",
			PlatformFees:      "3",
			BuyerPaidShipping: "on",
			DateSold:          "2024-03-09",
		},
		InventorySKU: " A1 ",
	}
	sale, err := req.ToModel()
	if err != nil {
		t.Fatal(err)
	}
	if !sale.BuyerPaidShipping || sale.PayoutStatus != model.PayoutPending {
		t.Errorf("sale = %+v", sale)
	}
	if req.SKU() != "A1" {
		t.Errorf("SKU() = %q", req.SKU())
	}
}

func TestUpdateShipmentReqOnlyWritesSuppliedDates(t *testing.T) {
	fields, err := UpdateShipmentReq{Status: "Shipped", ShippedDate: "2024-04-02"}.ToFields()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["shipped_date"]; !ok {
		t.Error("shipped_date missing")
	}
	if _, ok := fields["delivered_date"]; ok {
		t.Error("delivered_date written without a value")
	}
}

func TestUpdateTaskReq(t *testing.T) {
	fields, err := UpdateTaskReq{Status: "Done"}.ToFields()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["completed_date"]; ok {
		t.Error("completed_date set without a value")
	}
	fields, err = UpdateTaskReq{Status: "Done", CompletedDate: "2024-01-02"}.ToFields()
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := fields["completed_date"].(*time.Time); !ok || got.Day() != 2 {
		t.Errorf("completed_date = %v", fields["completed_date"])
	}
}

func TestUpdateSettingsReqSkipsBlank(t *testing.T) {
	values := UpdateSettingsReq{Currency: "EUR", EbayFeePercent: " ", AppName: "Shop"}.Values()
	if len(values) != 2 || values["currency"] != "EUR" || values["app_name"] != "Shop" {
		t.Errorf("Values() = %v", values)
	}
}
