package models

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantUnix  int64
	}{
		{
			name:      "RFC3339",
			raw:       "2025-06-11T15:30:00Z",
			wantValid: true,
			wantUnix:  time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name:      "RFC3339 with offset",
			raw:       "2025-06-11T15:30:00+02:00",
			wantValid: true,
			wantUnix:  time.Date(2025, 6, 11, 13, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name:      "RFC3339 with nanoseconds",
			raw:       "2025-06-11T15:30:00.123456789Z",
			wantValid: true,
			wantUnix:  time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC).Unix(),
		},
		{
			name:      "unix seconds",
			raw:       "1749655800",
			wantValid: true,
			wantUnix:  1749655800,
		},
		{
			name:      "seconds object",
			raw:       `{"seconds": 1749655800}`,
			wantValid: true,
			wantUnix:  1749655800,
		},
		{
			name:      "seconds object with nanoseconds",
			raw:       `{"seconds": 1749655800, "nanoseconds": 500000000}`,
			wantValid: true,
			wantUnix:  1749655800,
		},
		{
			name:      "empty string",
			raw:       "",
			wantValid: false,
		},
		{
			name:      "whitespace only",
			raw:       "   ",
			wantValid: false,
		},
		{
			name:      "garbage",
			raw:       "last tuesday",
			wantValid: false,
		},
		{
			name:      "object without seconds",
			raw:       `{"nanoseconds": 5}`,
			wantValid: false,
		},
		{
			name:      "malformed json object",
			raw:       `{"seconds": }`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ParseTimestamp(tt.raw)
			if ts.Valid() != tt.wantValid {
				t.Fatalf("ParseTimestamp(%q).Valid() = %v, want %v", tt.raw, ts.Valid(), tt.wantValid)
			}
			if !tt.wantValid {
				return
			}
			got, _ := ts.Time()
			if got.Unix() != tt.wantUnix {
				t.Errorf("ParseTimestamp(%q) = %v (unix %d), want unix %d", tt.raw, got, got.Unix(), tt.wantUnix)
			}
		})
	}
}

func TestParseTimestampDateOnly(t *testing.T) {
	ts := ParseTimestamp("2025-06-11")
	if !ts.Valid() {
		t.Fatal("ParseTimestamp(date-only) invalid, want valid")
	}
	got, _ := ts.Time()
	// Date-only values are interpreted in local time so staleness compares
	// against the household's calendar day.
	want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp(date-only) = %v, want %v", got, want)
	}
}

func TestTimestampString(t *testing.T) {
	if got := InvalidTimestamp().String(); got != "" {
		t.Errorf("InvalidTimestamp().String() = %q, want empty", got)
	}

	moment := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	if got := NewTimestamp(moment).String(); got != "2025-06-11T15:30:00Z" {
		t.Errorf("NewTimestamp().String() = %q, want RFC3339", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	moment := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	ts := ParseTimestamp(NewTimestamp(moment).String())
	got, ok := ts.Time()
	if !ok || !got.Equal(moment) {
		t.Errorf("round trip = %v (valid=%v), want %v", got, ok, moment)
	}
}
