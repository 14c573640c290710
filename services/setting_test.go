package services

import (
	"errors"
	"testing"
)

func TestSettingsUpsert(t *testing.T) {
	svc := newTestService(t).Settings

	if _, err := svc.Get(ctx, "currency"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}
	if err := svc.Set(ctx, "currency", "GBP"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Set(ctx, "currency", "EUR"); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(ctx, "currency")
	if err != nil {
		t.Fatal(err)
	}
	if got != "EUR" {
		t.Errorf("currency = %q, want EUR", got)
	}
}

func TestSettingsSetMany(t *testing.T) {
	svc := newTestService(t).Settings

	err := svc.SetMany(ctx, map[string]string{
		"app_name":           "My Shop",
		"vinted_fee_percent": "5",
	})
	if err != nil {
		t.Fatal(err)
	}
	all, err := svc.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["app_name"] != "My Shop" || all["vinted_fee_percent"] != "5" {
		t.Errorf("All() = %v", all)
	}
}
