package scoring

import (
	"time"

	"github.com/hearthhq/hearth/internal/logger"
	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/utils"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ToggleResult is the outcome of one accepted increment/decrement action.
type ToggleResult struct {
	Habit        models.Habit
	PointsChange int
	Multiplier   float64
}

// ProcessToggle translates a single user action into a new habit state plus a
// point delta. It assumes the habit has already been rolled over if stale. A
// nil result means the action was rejected (a down action at count 0, or an
// unrecognized direction/scoring type) and nothing changed.
//
// The streak and multiplier are taken from the state before the action, so a
// completion earns the tier the user walked in with. The completion-date
// history and cached streak are then recomputed from the post-action state.
func ProcessToggle(h models.Habit, dir Direction, now time.Time) *ToggleResult {
	newCount := h.Count
	newTotal := h.TotalCount
	switch dir {
	case DirectionUp:
		newCount++
		newTotal++
	case DirectionDown:
		if h.Count == 0 {
			return nil
		}
		newCount--
		if newTotal > 0 {
			newTotal--
		}
	default:
		logger.Warn("unrecognized toggle direction", "habit", h.ID, "direction", dir)
		return nil
	}

	streak := CalculateStreak(h.CompletedDates, now)
	mult := Multiplier(streak, h.IsPositive())
	unit := PointsPerCompletion(h.BasePoints, mult)
	target := h.EffectiveTarget()

	var pointsChange int
	var completedNow bool
	switch h.ScoringType {
	case models.ScoringIncremental:
		// every action moves points; completion only matters for history
		if dir == DirectionUp {
			pointsChange = unit
		} else {
			pointsChange = -unit
		}
		completedNow = newCount >= target
	case models.ScoringThreshold:
		// points move only at the moment the count crosses the target
		wasCompleted := h.Count >= target
		completedNow = newCount >= target
		if completedNow && !wasCompleted {
			pointsChange = unit
		} else if !completedNow && wasCompleted {
			pointsChange = -unit
		}
	default:
		logger.Warn("unrecognized scoring type", "habit", h.ID, "scoringType", h.ScoringType)
		return nil
	}
	pointsChange *= pointSign(h)

	h.Count = newCount
	h.TotalCount = newTotal
	h.CompletedDates = updateCompletedDates(h.CompletedDates, utils.DateOf(now), completedNow)
	h.StreakDays = CalculateStreak(h.CompletedDates, now)
	h.LastUpdated = models.NewTimestamp(now)

	return &ToggleResult{
		Habit:        h,
		PointsChange: pointsChange,
		Multiplier:   mult,
	}
}

// CalculateResetPoints computes the point delta to apply when a user manually
// resets a habit's current-period progress to zero. Unlike a sequence of down
// actions (which the floor rule would reject once the count hits 0), reset is
// a bulk rollback: it collapses the entire period's earned points into one
// removal at the current multiplier.
func CalculateResetPoints(h models.Habit, now time.Time) int {
	if h.Count == 0 {
		return 0
	}

	streak := CalculateStreak(h.CompletedDates, now)
	mult := Multiplier(streak, h.IsPositive())
	unit := PointsPerCompletion(h.BasePoints, mult)

	var removed int
	switch h.ScoringType {
	case models.ScoringIncremental:
		removed = h.Count * unit
	case models.ScoringThreshold:
		// only remove points if the reset actually discards an earned completion
		if h.Count >= h.EffectiveTarget() {
			removed = unit
		}
	}
	return -removed * pointSign(h)
}

// ApplyReset zeroes a habit's current-period progress and withdraws today
// from the completion history, since a cleared period is no longer a
// successful day.
func ApplyReset(h models.Habit, now time.Time) models.Habit {
	h.Count = 0
	h.CompletedDates = updateCompletedDates(h.CompletedDates, utils.DateOf(now), false)
	h.StreakDays = CalculateStreak(h.CompletedDates, now)
	h.LastUpdated = models.NewTimestamp(now)
	return h
}

// pointSign is +1 for positive habits and -1 for negative ones: completing a
// bad habit costs points, and undoing that completion gives them back.
func pointSign(h models.Habit) int {
	if h.IsPositive() {
		return 1
	}
	return -1
}

// updateCompletedDates keeps the completion history a derived record of
// "was this day a successful day", not a literal action log: the day is
// present exactly when the habit is currently complete for it.
func updateCompletedDates(dates []string, day string, completed bool) []string {
	out := make([]string, 0, len(dates)+1)
	for _, d := range dates {
		if d != day {
			out = append(out, d)
		}
	}
	if completed {
		out = append(out, day)
	}
	return SortDatesDescending(out)
}
