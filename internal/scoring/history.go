package scoring

import (
	"time"

	"github.com/hearthhq/hearth/internal/models"
)

// Historical reconstruction recomputes points attributable to habits from
// their completion-date history alone, for installations that predate the
// submission ledger. It is approximate by design: per-day counts and streak
// values are not retained outside the ledger, so the habit's current count
// and current streak stand in for the historical ones. The ledger remains
// the auditable source of truth where it exists.

// PointsForDate returns the points attributable to the given calendar date
// across the supplied habits. A habit is skipped if the date is absent from
// its completion history, or if its current count is 0 — a cleared period
// means the progress behind that completion has since been discarded and
// must not be double-counted.
func PointsForDate(habits []models.Habit, date string, now time.Time) int {
	total := 0
	for _, h := range habits {
		if h.Count == 0 || !containsDate(h.CompletedDates, date) {
			continue
		}

		streak := CalculateStreak(h.CompletedDates, now)
		mult := Multiplier(streak, h.IsPositive())
		unit := PointsPerCompletion(h.BasePoints, mult)

		switch h.ScoringType {
		case models.ScoringIncremental:
			total += h.Count * unit * pointSign(h)
		case models.ScoringThreshold:
			if h.Count >= h.EffectiveTarget() {
				total += unit * pointSign(h)
			}
		}
	}
	return total
}

// PointsForRange returns the points attributable to the inclusive date range
// [start, end]. Unlike the single-date reconstruction, the range variant does
// not branch on scoring type: every completed day contributes one
// per-completion unit. Analytics screens have historically depended on both
// behaviors, so the asymmetry is kept deliberately.
func PointsForRange(habits []models.Habit, start, end string, now time.Time) int {
	total := 0
	for _, h := range habits {
		days := 0
		for _, d := range h.CompletedDates {
			if d >= start && d <= end {
				days++
			}
		}
		if days == 0 {
			continue
		}

		streak := CalculateStreak(h.CompletedDates, now)
		mult := Multiplier(streak, h.IsPositive())
		total += days * PointsPerCompletion(h.BasePoints, mult) * pointSign(h)
	}
	return total
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}
