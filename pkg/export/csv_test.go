package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"resell-dashboard/model"
)

func TestFileNames(t *testing.T) {
	now := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)
	if got := InventoryFileName(now); got != "inventory_export_20240131.csv" {
		t.Errorf("InventoryFileName = %q", got)
	}
	if got := SalesFileName(now); got != "sales_export_20240131.csv" {
		t.Errorf("SalesFileName = %q", got)
	}
}

func TestWriteInventory(t *testing.T) {
	purchased := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	items := []model.InventoryItem{{
		SKU:           "A1",
		ItemName:      "Denim, jacket",
		ListingStatus: model.ListingListed,
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewNullDecimal(decimal.NewFromInt(20)),
		Profit:        decimal.NewNullDecimal(decimal.RequireFromString("7")),
		DatePurchased: &purchased,
	}, {
		SKU:           "B2",
		PurchasePrice: decimal.Zero,
	}}

	var buf bytes.Buffer
	if err := WriteInventory(&buf, items); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(inventoryHeader, ",") {
		t.Errorf("header = %v", rows[0])
	}
	first := rows[1]
	if first[1] != "Denim, jacket" || first[7] != "10.00" || first[8] != "20.00" || first[9] != "7.00" || first[10] != "2024-02-01" {
		t.Errorf("first row = %v", first)
	}
	if second := rows[2]; second[8] != "" || second[9] != "" || second[10] != "" {
		t.Errorf("absent values should be blank: %v", second)
	}
}

func TestWriteSales(t *testing.T) {
	sales := []model.Sale{{
		OrderID:      "ORD-1",
		Platform:     "eBay",
		SalePrice:    decimal.NewFromInt(30),
		NetProfit:    decimal.RequireFromString("21.8"),
		DateSold:     time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		PayoutStatus: model.PayoutPaid,
	}}

	var buf bytes.Buffer
	if err := WriteSales(&buf, sales); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ORD-1", "eBay", "", "30.00", "0.00", "0.00", "0.00", "21.80", "2024-03-09", "Paid", ""}
	if strings.Join(rows[1], "|") != strings.Join(want, "|") {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
	if len(rows[0]) != len(salesHeader) {
		t.Errorf("header = %v", rows[0])
	}
}
