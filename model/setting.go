package model

import "time"

// Setting is a global key/value pair.
type Setting struct {
	Key       string    `json:"key" gorm:"column:key;primaryKey;size:64"`
	Value     string    `json:"value" gorm:"column:value;type:text"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys.
const (
	SettingCurrency         = "currency"
	SettingVintedFeePercent = "vinted_fee_percent"
	SettingEbayFeePercent   = "ebay_fee_percent"
	SettingDepopFeePercent  = "depop_fee_percent"
	SettingPaypalFeePercent = "paypal_fee_percent"
	SettingAppName          = "app_name"
	SettingAppVersion       = "app_version"
)

// Defaults used when a setting has never been written.
const (
	DefaultAppName    = "Reseller Dashboard"
	DefaultAppVersion = "2.0.0"
	DefaultCurrency   = "GBP"
)
