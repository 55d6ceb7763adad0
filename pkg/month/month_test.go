package month

import (
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		ym   YearMonth
		want string
	}{
		{"two digit month", YearMonth{2024, time.November}, "2024-11"},
		{"single digit month padded", YearMonth{2024, time.February}, "2024-02"},
		{"january", YearMonth{2025, time.January}, "2025-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ym.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantOk  bool
	}{
		{"regular date", "2024-11-05", "2024-11", true},
		{"leap day", "2024-02-29", "2024-02", true},
		{"invalid leap day", "2023-02-29", "", false},
		{"not a date", "not-a-date", "", false},
		{"empty", "", "", false},
		{"month out of range", "2024-13-01", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym, ok := FromDate(tt.date)
			if ok != tt.wantOk {
				t.Fatalf("FromDate(%q) ok = %v, want %v", tt.date, ok, tt.wantOk)
			}
			if ok && ym.Key() != tt.want {
				t.Errorf("FromDate(%q) = %s, want %s", tt.date, ym.Key(), tt.want)
			}
		})
	}
}

func TestFromKey(t *testing.T) {
	ym, ok := FromKey("2024-02")
	if !ok || ym.Year != 2024 || ym.Month != time.February {
		t.Errorf("FromKey(2024-02) = %v, %v", ym, ok)
	}
	if _, ok := FromKey("garbage"); ok {
		t.Error("FromKey(garbage) should not parse")
	}
}
