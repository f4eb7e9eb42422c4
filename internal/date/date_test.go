package date

import (
	"testing"
	"time"
)

func TestMinuteOfDay(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"7:05", 425, true},
		{"", 0, false},
		{"nine", 0, false},
		{"09", 0, false},
		{"09:xx", 0, false},
	}
	for _, tt := range tests {
		got, ok := MinuteOfDay(tt.in)
		if ok != tt.wantOK {
			t.Errorf("MinuteOfDay(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("MinuteOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatOverlap(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{60, "1h"},
		{90, "1h30min"},
		{30, "30min"},
		{0, ""},
		{-60, ""},
	}
	for _, tt := range tests {
		if got := FormatOverlap(tt.minutes); got != tt.want {
			t.Errorf("FormatOverlap(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTodayTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 45, 0, 0, time.UTC)
	if got := Today(now); got != "2026-08-30" {
		t.Errorf("Today() = %q, want 2026-08-30", got)
	}
	if got := Tomorrow(now); got != "2026-08-31" {
		t.Errorf("Tomorrow() = %q, want 2026-08-31", got)
	}
	// Month rollover.
	if got := Tomorrow(time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)); got != "2026-09-01" {
		t.Errorf("Tomorrow() = %q, want 2026-09-01", got)
	}
}

func TestParseClock(t *testing.T) {
	if _, err := ParseClock("25:00"); err == nil {
		t.Error("ParseClock(25:00) err = nil, want non-nil")
	}
	got, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock(09:30) err = %v, want nil", err)
	}
	if got != "09:30" {
		t.Errorf("ParseClock(09:30) = %q, want 09:30", got)
	}
}
