package scoring

import (
	"reflect"
	"testing"
	"time"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

func TestCalculateStreak(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		expected int
	}{
		{
			name:     "no dates",
			dates:    nil,
			expected: 0,
		},
		{
			name:     "single completion today",
			dates:    []string{"2025-06-11"},
			expected: 1,
		},
		{
			name:     "single completion yesterday keeps streak alive",
			dates:    []string{"2025-06-10"},
			expected: 1,
		},
		{
			name:     "most recent two days ago breaks streak",
			dates:    []string{"2025-06-09"},
			expected: 0,
		},
		{
			name:     "three consecutive days ending today",
			dates:    []string{"2025-06-09", "2025-06-10", "2025-06-11"},
			expected: 3,
		},
		{
			name:     "three consecutive days ending yesterday",
			dates:    []string{"2025-06-08", "2025-06-09", "2025-06-10"},
			expected: 3,
		},
		{
			name:     "gap stops the walk",
			dates:    []string{"2025-06-11", "2025-06-10", "2025-06-08", "2025-06-07"},
			expected: 2,
		},
		{
			name:     "unsorted input",
			dates:    []string{"2025-06-09", "2025-06-11", "2025-06-10"},
			expected: 3,
		},
		{
			name:     "duplicates counted once",
			dates:    []string{"2025-06-11", "2025-06-11", "2025-06-10"},
			expected: 2,
		},
		{
			name:     "malformed dates ignored",
			dates:    []string{"2025-06-11", "not-a-date", "2025-06-10"},
			expected: 2,
		},
		{
			name:     "only malformed dates",
			dates:    []string{"garbage", ""},
			expected: 0,
		},
		{
			name:     "long run across month boundary",
			dates:    []string{"2025-06-11", "2025-06-10", "2025-06-09", "2025-06-08", "2025-06-07", "2025-06-06", "2025-06-05"},
			expected: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStreak(tt.dates, fixedNow)
			if got != tt.expected {
				t.Errorf("CalculateStreak(%v) = %d, want %d", tt.dates, got, tt.expected)
			}
		})
	}
}

func TestCalculateStreakMonthBoundary(t *testing.T) {
	// July 1st looking back across the June boundary
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	dates := []string{"2025-07-01", "2025-06-30", "2025-06-29"}
	if got := CalculateStreak(dates, now); got != 3 {
		t.Errorf("CalculateStreak across month boundary = %d, want 3", got)
	}
}

func TestSortDatesDescending(t *testing.T) {
	in := []string{"2025-06-09", "2025-06-11", "2025-06-10", "2025-06-09"}
	want := []string{"2025-06-11", "2025-06-10", "2025-06-09"}
	got := SortDatesDescending(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortDatesDescending(%v) = %v, want %v", in, got, want)
	}
}
