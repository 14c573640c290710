package inout

import (
	"strings"

	"resell-dashboard/model"
)

// UpdateSettingsReq edits the settings page. Only non-empty fields are written.
type UpdateSettingsReq struct {
	Currency         string `form:"currency" binding:"omitempty,max=8"`
	VintedFeePercent string `form:"vinted_fee_percent" binding:"omitempty,numeric"`
	EbayFeePercent   string `form:"ebay_fee_percent" binding:"omitempty,numeric"`
	DepopFeePercent  string `form:"depop_fee_percent" binding:"omitempty,numeric"`
	PaypalFeePercent string `form:"paypal_fee_percent" binding:"omitempty,numeric"`
	AppName          string `form:"app_name" binding:"omitempty,max=100"`
}

// Values returns the submitted settings keyed by setting name.
func (r UpdateSettingsReq) Values() map[string]string {
	all := map[string]string{
		model.SettingCurrency:         r.Currency,
		model.SettingVintedFeePercent: r.VintedFeePercent,
		model.SettingEbayFeePercent:   r.EbayFeePercent,
		model.SettingDepopFeePercent:  r.DepopFeePercent,
		model.SettingPaypalFeePercent: r.PaypalFeePercent,
		model.SettingAppName:          r.AppName,
	}
	values := make(map[string]string, len(all))
	for key, v := range all {
		if v = strings.TrimSpace(v); v != "" {
			values[key] = v
		}
	}
	return values
}
