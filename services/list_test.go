package services

import (
	"errors"
	"testing"

	"resell-dashboard/model"
)

func TestEffectiveLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultLimit},
		{-4, DefaultLimit},
		{20, 20},
		{MaxLimit + 1, MaxLimit},
	}
	for _, tt := range tests {
		if got := (ListOptions{Limit: tt.in}).EffectiveLimit(); got != tt.want {
			t.Errorf("EffectiveLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	var nilStatus *model.TaskStatus
	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"blank string", Eq("brand", ""), true},
		{"blank named string", Eq("listing_status", model.ListingStatus("")), true},
		{"nil pointer", Eq("status", nilStatus), true},
		{"no values", In[string]("status"), true},
		{"value", Eq("brand", "Nike"), false},
		{"values", In("status", "a"), false},
	}
	for _, tt := range tests {
		if got := tt.f.empty(); got != tt.want {
			t.Errorf("%s: empty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScopeRejectsUnknownColumns(t *testing.T) {
	_, err := ListOptions{Filters: []Filter{Eq("password", "x")}}.scope(taskColumns)
	if !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("unknown filter column = %v", err)
	}
	_, err = ListOptions{Order: []Order{Desc("1; drop table tasks")}}.scope(taskColumns)
	if !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("unknown order column = %v", err)
	}
}
