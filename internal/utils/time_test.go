package utils

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestGetTodayInTimezone(t *testing.T) {
	// 02:30 UTC on Jan 16 is still Jan 15 in New York.
	now := time.Date(2025, 1, 16, 2, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{"utc", "UTC", "2025-01-16", false},
		{"new york", "America/New_York", "2025-01-15", false},
		{"tokyo", "Asia/Tokyo", "2025-01-16", false},
		{"invalid", "Mars/Olympus_Mons", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTodayInTimezone(tt.timezone, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTodayInTimezone() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetTodayInTimezone() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadLocationLocal(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := LoadLocation(tz)
		if err != nil || loc != time.Local {
			t.Errorf("LoadLocation(%q) = %v, %v; want time.Local", tz, loc, err)
		}
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2025-01")
	if err != nil || year != 2025 || month != time.January {
		t.Errorf("ParseMonth() = %d, %v, %v", year, month, err)
	}
	if _, _, err := ParseMonth("January"); err == nil {
		t.Error("expected error for non YYYY-MM input")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2025, time.February)
	if first != "2025-02-01" || last != "2025-02-28" {
		t.Errorf("MonthRange() = %s, %s", first, last)
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("Europe/London") || !ValidateTimezone("Local") {
		t.Error("expected valid timezones")
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("expected invalid timezone")
	}
}
