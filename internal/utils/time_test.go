package utils

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	moment := time.Date(2025, 6, 11, 23, 59, 59, 0, time.UTC)
	if got := DateOf(moment); got != "2025-06-11" {
		t.Errorf("DateOf() = %q, want 2025-06-11", got)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-11")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}
	want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	if _, err := ParseDate("06/11/2025"); err == nil {
		t.Error("ParseDate(06/11/2025) succeeded, want error")
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2025-06-11", true},
		{"2025-02-29", false}, // not a leap year
		{"2024-02-29", true},
		{"2025-13-01", false},
		{"2025-6-1", false},
		{"", false},
		{"garbage", false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.valid {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.valid)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, %v; want Local, nil", loc, err)
	}

	loc, err = LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(Local) = %v, %v; want Local, nil", loc, err)
	}

	if _, err := LoadLocation("America/Chicago"); err != nil {
		t.Errorf("LoadLocation(America/Chicago) failed: %v", err)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Error("LoadLocation(Mars/Olympus) succeeded, want error")
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("") || !ValidateTimezone("Local") || !ValidateTimezone("UTC") {
		t.Error("ValidateTimezone rejected a valid zone")
	}
	if ValidateTimezone("Nowhere/Nothing") {
		t.Error("ValidateTimezone accepted an invalid zone")
	}
}
