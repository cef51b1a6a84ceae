package models

import "time"

type HabitType string

const (
	HabitPositive HabitType = "positive"
	HabitNegative HabitType = "negative"
)

type ScoringType string

const (
	ScoringIncremental ScoringType = "incremental"
	ScoringThreshold   ScoringType = "threshold"
)

type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

// Habit is a user-defined behavior tracked per period. Count is progress
// within the current period and resets on rollover; TotalCount is lifetime
// and only ever moves with toggles. CompletedDates records which calendar
// days the habit was judged complete, independent of weekly periods, and is
// kept sorted descending. StreakDays is derived from CompletedDates and
// cached for display.
type Habit struct {
	ID             string      `json:"id"`
	MemberID       string      `json:"member_id"`
	Name           string      `json:"name"`
	Category       string      `json:"category,omitempty"`
	Type           HabitType   `json:"type"`
	ScoringType    ScoringType `json:"scoring_type"`
	Period         Period      `json:"period"`
	BasePoints     int         `json:"base_points"`
	TargetCount    int         `json:"target_count"`
	Count          int         `json:"count"`
	TotalCount     int         `json:"total_count"`
	CompletedDates []string    `json:"completed_dates"` // YYYY-MM-DD, sorted descending
	StreakDays     int         `json:"streak_days"`
	LastUpdated    Timestamp   `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	ArchivedAt     *time.Time  `json:"archived_at,omitempty"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty"`
}

// IsPositive reports whether streak bonuses apply and deltas add points.
func (h Habit) IsPositive() bool {
	return h.Type == HabitPositive
}

// EffectiveTarget returns the completion target, treating a zero target as 1
// so a habit can always be completed.
func (h Habit) EffectiveTarget() int {
	if h.TargetCount < 1 {
		return 1
	}
	return h.TargetCount
}
