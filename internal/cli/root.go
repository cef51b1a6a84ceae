package cli

import (
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/logger"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/scoring"
	"github.com/hearthhq/hearth/internal/storage"
	"github.com/hearthhq/hearth/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Now returns the current time in the household's configured timezone, so
// "today" matches the family's wall clock rather than wherever the database
// happens to live.
func (c *Context) Now() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using local time", "error", err)
		return time.Now()
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local time",
			"timezone", settings.Timezone, "error", err)
		return time.Now()
	}
	return now
}

// ApplyPoints is the single reconciliation point between the toggle path and
// the ledger path: every point delta lands on a member's running total
// through this method and nowhere else, so the two paths can never
// double-apply the same logical event.
func (c *Context) ApplyPoints(memberID string, delta int) error {
	if delta == 0 {
		return nil
	}
	if err := c.Store.ApplyPointsDelta(memberID, delta); err != nil {
		return fmt.Errorf("failed to apply point change to member: %w", err)
	}
	logger.Debug("Applied point delta", "member", memberID, "delta", delta)
	return nil
}

// ResolveHabit looks up a habit by name and rolls its per-period counters
// over if they are stale, persisting the rollover so every caller sees a
// current-period snapshot.
func (c *Context) ResolveHabit(name string, now time.Time) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(name)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return c.RolloverIfStale(habit, now)
}

// RolloverIfStale resets a habit's per-period progress when the staleness
// detector says its counters belong to a previous period.
func (c *Context) RolloverIfStale(habit models.Habit, now time.Time) (models.Habit, error) {
	if !scoring.IsStale(habit, now) {
		return habit, nil
	}
	logger.Debug("Rolling over stale habit", "habit", habit.ID, "period", habit.Period)
	habit = scoring.Rollover(habit, now)
	if err := c.Store.UpdateHabit(habit); err != nil {
		return models.Habit{}, fmt.Errorf("failed to roll over habit: %w", err)
	}
	return habit, nil
}
