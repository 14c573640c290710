package pages

import "testing"

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                "/",
		"/inventory":      "/inventory",
		"/sales?limit=5":  "/sales?limit=5",
		"//evil.example":  "/",
		"/\\evil.example": "/",
		"https://x.test/": "/",
	}
	for in, want := range tests {
		if got := safeNext(in); got != want {
			t.Errorf("safeNext(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSettingOr(t *testing.T) {
	settings := map[string]string{"currency": "EUR", "app_name": ""}
	if got := settingOr(settings, "currency", "GBP"); got != "EUR" {
		t.Errorf("currency = %q", got)
	}
	if got := settingOr(settings, "app_name", "Reseller Dashboard"); got != "Reseller Dashboard" {
		t.Errorf("blank setting should fall back, got %q", got)
	}
}
