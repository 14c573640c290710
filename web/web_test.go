package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		currency string
		value    interface{}
		want     string
	}{
		{"GBP", decimal.RequireFromString("7"), "£7.00"},
		{"EUR", decimal.RequireFromString("-2.5"), "-€2.50"},
		{"SEK", decimal.RequireFromString("10"), "SEK 10.00"},
		{"GBP", decimal.NullDecimal{}, "-"},
		{"USD", decimal.NewNullDecimal(decimal.RequireFromString("1.234")), "$1.23"},
	}
	for _, tt := range tests {
		if got := Money(tt.currency, tt.value); got != tt.want {
			t.Errorf("Money(%q, %v) = %q, want %q", tt.currency, tt.value, got, tt.want)
		}
	}
}

func TestDateAndPercent(t *testing.T) {
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	if got := Date(day); got != "2024-05-06" {
		t.Errorf("Date(time) = %q", got)
	}
	if got := Date(&day); got != "2024-05-06" {
		t.Errorf("Date(*time) = %q", got)
	}
	var none *time.Time
	if got := Date(none); got != "" {
		t.Errorf("Date(nil) = %q", got)
	}
	if got := Percent(decimal.NewNullDecimal(decimal.NewFromInt(70))); got != "70.0%" {
		t.Errorf("Percent = %q", got)
	}
	if got := Percent(decimal.NullDecimal{}); got != "-" {
		t.Errorf("Percent(null) = %q", got)
	}
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"dashboard.html", "inventory.html", "inventory_form.html", "sales.html",
		"sales_form.html", "shipping.html", "returns.html", "returns_form.html",
		"tasks.html", "settings.html", "login.html", "error.html",
	} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s missing", name)
		}
	}

	var buf bytes.Buffer
	data := map[string]interface{}{"app_name": "Shop", "message": "boom", "current_year": 2024}
	if err := tmpl.ExecuteTemplate(&buf, "error.html", data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("boom")) {
		t.Errorf("error page = %s", buf.String())
	}
}
