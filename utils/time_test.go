package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNil bool
		wantErr bool
	}{
		{in: "", wantNil: true},
		{in: "   ", wantNil: true},
		{in: "2024-03-09", want: "2024-03-09"},
		{in: " 2024-12-31 ", want: "2024-12-31"},
		{in: "09/03/2024", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
		}
		if tt.wantNil {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil || FormatDate(got) != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %s", tt.in, got, tt.want)
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDate(%q) location = %v, want UTC", tt.in, got.Location())
		}
	}
}

func TestTruncateDay(t *testing.T) {
	in := time.Date(2024, 5, 17, 23, 59, 1, 5, time.UTC)
	got := TruncateDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 17 {
		t.Fatalf("TruncateDay(%v) = %v", in, got)
	}
	if FormatDate(nil) != "" {
		t.Fatal("FormatDate(nil) should be empty")
	}
}
