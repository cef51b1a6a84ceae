package scoring

import (
	"testing"
	"time"

	"github.com/hearthhq/hearth/internal/models"
)

var historyNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func TestPointsForDate(t *testing.T) {
	tests := []struct {
		name     string
		habits   []models.Habit
		date     string
		expected int
	}{
		{
			name:     "no habits",
			habits:   nil,
			date:     "2025-06-11",
			expected: 0,
		},
		{
			name: "date absent from history",
			habits: []models.Habit{
				incrementalHabit(2, []string{"2025-06-10"}),
			},
			date:     "2025-06-11",
			expected: 0,
		},
		{
			name: "zero count skips the habit",
			habits: []models.Habit{
				incrementalHabit(0, []string{"2025-06-11"}),
			},
			date:     "2025-06-11",
			expected: 0,
		},
		{
			name: "incremental scales with count",
			habits: []models.Habit{
				incrementalHabit(3, []string{"2025-06-11"}),
			},
			date:     "2025-06-11",
			expected: 30,
		},
		{
			name: "threshold at target contributes one unit",
			habits: []models.Habit{
				thresholdHabit(2, 2, []string{"2025-06-11"}),
			},
			date:     "2025-06-11",
			expected: 10,
		},
		{
			name: "threshold below target contributes nothing",
			habits: []models.Habit{
				thresholdHabit(3, 1, []string{"2025-06-11"}),
			},
			date:     "2025-06-11",
			expected: 0,
		},
		{
			name: "habits sum across the household",
			habits: []models.Habit{
				incrementalHabit(2, []string{"2025-06-11"}),
				thresholdHabit(1, 1, []string{"2025-06-11"}),
			},
			date:     "2025-06-11",
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsForDate(tt.habits, tt.date, historyNow)
			if got != tt.expected {
				t.Errorf("PointsForDate(%s) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestPointsForDateNegativeHabit(t *testing.T) {
	h := incrementalHabit(2, []string{"2025-06-11"})
	h.Type = models.HabitNegative

	if got := PointsForDate([]models.Habit{h}, "2025-06-11", historyNow); got != -20 {
		t.Errorf("PointsForDate(negative habit) = %d, want -20", got)
	}
}

func TestPointsForDateUsesCurrentStreakMultiplier(t *testing.T) {
	// Reconstruction values old days at the current multiplier: with a live
	// 3-day streak, the queried day is worth 1.5x even though the streak was
	// shorter back then.
	dates := []string{"2025-06-11", "2025-06-10", "2025-06-09"}
	h := incrementalHabit(1, dates)

	if got := PointsForDate([]models.Habit{h}, "2025-06-09", historyNow); got != 15 {
		t.Errorf("PointsForDate() = %d, want 15", got)
	}
}

func TestPointsForRange(t *testing.T) {
	tests := []struct {
		name       string
		habits     []models.Habit
		start, end string
		expected   int
	}{
		{
			name: "no completions in range",
			habits: []models.Habit{
				incrementalHabit(2, []string{"2025-06-01"}),
			},
			start:    "2025-06-10",
			end:      "2025-06-11",
			expected: 0,
		},
		{
			name: "one unit per completed day",
			habits: []models.Habit{
				incrementalHabit(3, []string{"2025-06-11", "2025-06-10", "2025-06-09"}),
			},
			start:    "2025-06-09",
			end:      "2025-06-11",
			expected: 45, // 3 days x 15 (live 3-day streak), count does not scale the range variant
		},
		{
			name: "range endpoints are inclusive",
			habits: []models.Habit{
				incrementalHabit(1, []string{"2025-06-11", "2025-06-09"}),
			},
			start:    "2025-06-09",
			end:      "2025-06-11",
			expected: 20, // the 06-09 completion broke the streak, so both days price at 1.0x
		},
		{
			name: "threshold habit contributes per day even below target",
			habits: []models.Habit{
				thresholdHabit(5, 1, []string{"2025-06-11"}),
			},
			start:    "2025-06-11",
			end:      "2025-06-11",
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsForRange(tt.habits, tt.start, tt.end, historyNow)
			if got != tt.expected {
				t.Errorf("PointsForRange(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestPointsForRangeNegativeHabit(t *testing.T) {
	h := incrementalHabit(1, []string{"2025-06-11", "2025-06-10"})
	h.Type = models.HabitNegative

	if got := PointsForRange([]models.Habit{h}, "2025-06-10", "2025-06-11", historyNow); got != -20 {
		t.Errorf("PointsForRange(negative habit) = %d, want -20", got)
	}
}
