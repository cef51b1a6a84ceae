package scoring

import (
	"time"

	"github.com/hearthhq/hearth/internal/logger"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/utils"
)

// IsStale reports whether a habit's per-period counters were last touched in
// a prior period and must be rolled over before any new toggle is processed.
// Everything degrades toward stale: an unparseable last-updated value or an
// unrecognized period resets progress rather than silently keeping it.
func IsStale(h models.Habit, now time.Time) bool {
	last, ok := h.LastUpdated.Time()
	if !ok {
		return true
	}
	last = last.In(now.Location())

	switch h.Period {
	case models.PeriodDaily:
		return utils.DateOf(last) != utils.DateOf(now)
	case models.PeriodWeekly:
		// ISO weeks start on Monday
		ly, lw := last.ISOWeek()
		ny, nw := now.ISOWeek()
		return ly != ny || lw != nw
	default:
		logger.Warn("unrecognized habit period, treating counters as stale",
			"habit", h.ID, "period", h.Period)
		return true
	}
}

// Rollover clears a habit's per-period progress. Lifetime totals and the
// completion-date history are untouched; only the in-period count resets.
func Rollover(h models.Habit, now time.Time) models.Habit {
	h.Count = 0
	h.LastUpdated = models.NewTimestamp(now)
	return h
}
