// Package web holds the embedded HTML templates and their helper funcs.
package web

import (
	"embed"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"resell-dashboard/utils"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page together with the shared layout.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
}

// Funcs 模板函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":   Money,
		"amount":  Amount,
		"percent": Percent,
		"date":    Date,
		"symbol":  Symbol,
	}
}

// Symbol returns the display symbol for a currency code.
func Symbol(currency string) string {
	if s, ok := currencySymbols[currency]; ok {
		return s
	}
	if currency == "" {
		return ""
	}
	return currency + " "
}

// Money formats an amount with the currency symbol. Absent values render as "-".
func Money(currency string, v interface{}) string {
	s := Amount(v)
	if s == "" {
		return "-"
	}
	if s[0] == '-' {
		return "-" + Symbol(currency) + s[1:]
	}
	return Symbol(currency) + s
}

// Amount renders a value for display or a form input, blank when absent.
func Amount(v interface{}) string {
	switch d := v.(type) {
	case decimal.Decimal:
		return d.StringFixed(2)
	case decimal.NullDecimal:
		if !d.Valid {
			return ""
		}
		return d.Decimal.StringFixed(2)
	case *decimal.Decimal:
		if d == nil {
			return ""
		}
		return d.StringFixed(2)
	case int64:
		return decimal.NewFromInt(d).StringFixed(2)
	case int:
		return decimal.NewFromInt(int64(d)).StringFixed(2)
	}
	return ""
}

func Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return v.Decimal.StringFixed(1) + "%"
}

// Date renders time.Time or *time.Time as YYYY-MM-DD.
func Date(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return utils.FormatDate(&t)
	case *time.Time:
		return utils.FormatDate(t)
	}
	return ""
}
