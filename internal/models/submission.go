package models

import "time"

// SubmissionEntry is one scoring event in a habit's ledger: a snapshot of the
// conditions under which a block of points was earned. The streak and
// multiplier captured at creation are write-once — editing an entry only ever
// changes Count (and therefore PointsEarned), never the tier it was subject
// to. The sum of PointsEarned across a habit's live entries is the source of
// truth for its lifetime point contribution.
type SubmissionEntry struct {
	ID                string     `json:"id"`
	HabitID           string     `json:"habit_id"`
	Timestamp         time.Time  `json:"timestamp"` // may be backdated for manual backfill
	Date              string     `json:"date"`      // calendar component of Timestamp, YYYY-MM-DD
	Count             int        `json:"count"`
	PointsEarned      int        `json:"points_earned"`
	StreakDaysAtTime  int        `json:"streak_days_at_time"`
	MultiplierApplied float64    `json:"multiplier_applied"`
	CreatedBy         string     `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
}
