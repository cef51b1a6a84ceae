// Package ledger maintains each habit's submission ledger: an
// append-only-by-default, editable-by-exception log of discrete scoring
// events. Entries snapshot the streak and multiplier in effect when points
// were earned, so corrections can reverse points without rewriting history.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/scoring"
	"github.com/hearthhq/hearth/internal/storage"
	"github.com/hearthhq/hearth/internal/utils"
)

// Service provides the ledger operations over a storage Provider.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Result is the outcome of one ledger operation: the entry as persisted and
// the point delta the caller must apply to the owning member's total.
type Result struct {
	Entry       models.SubmissionEntry
	PointsDelta int
}

// Add records a new scoring event for a habit. The timestamp may be backdated
// for manual backfill, but the streak and multiplier snapshots are taken from
// the habit's current state — the ledger records the tier in effect when the
// entry was created, not a reconstructed historical one. Points use the same
// per-completion formula regardless of the habit's scoring type: the ledger
// models discrete completions, not live threshold crossings.
func (s *Service) Add(habitID string, count int, at time.Time, createdBy string, now time.Time) (Result, error) {
	if count <= 0 {
		return Result{}, fmt.Errorf("submission count must be a positive integer, got %d", count)
	}

	habit, err := s.store.GetHabit(habitID)
	if err != nil {
		return Result{}, fmt.Errorf("habit %s not found: %w", habitID, err)
	}

	streak := scoring.CalculateStreak(habit.CompletedDates, now)
	mult := scoring.Multiplier(streak, habit.IsPositive())
	points := count * scoring.PointsPerCompletion(habit.BasePoints, mult)
	if !habit.IsPositive() {
		points = -points
	}

	entry := models.SubmissionEntry{
		ID:                uuid.New().String(),
		HabitID:           habit.ID,
		Timestamp:         at,
		Date:              utils.DateOf(at),
		Count:             count,
		PointsEarned:      points,
		StreakDaysAtTime:  streak,
		MultiplierApplied: mult,
		CreatedBy:         createdBy,
		CreatedAt:         now,
	}

	if err := s.store.AddSubmission(entry); err != nil {
		return Result{}, fmt.Errorf("failed to record submission: %w", err)
	}

	return Result{Entry: entry, PointsDelta: points}, nil
}

// UpdateCount edits the quantity of an existing entry. Points are recomputed
// from the entry's stored multiplier — never a freshly derived one — so
// correcting a quantity can never retroactively change the tier the entry was
// subject to. The returned delta is the net change against the old points.
func (s *Service) UpdateCount(entryID string, newCount int) (Result, error) {
	if newCount <= 0 {
		return Result{}, fmt.Errorf("submission count must be a positive integer, got %d", newCount)
	}

	entry, err := s.store.GetSubmission(entryID)
	if err != nil {
		return Result{}, fmt.Errorf("submission %s not found: %w", entryID, err)
	}

	habit, err := s.store.GetHabit(entry.HabitID)
	if err != nil {
		return Result{}, fmt.Errorf("habit %s not found: %w", entry.HabitID, err)
	}

	oldPoints := entry.PointsEarned
	points := newCount * scoring.PointsPerCompletion(habit.BasePoints, entry.MultiplierApplied)
	if !habit.IsPositive() {
		points = -points
	}

	entry.Count = newCount
	entry.PointsEarned = points
	if err := s.store.UpdateSubmission(entry); err != nil {
		return Result{}, fmt.Errorf("failed to update submission: %w", err)
	}

	return Result{Entry: entry, PointsDelta: points - oldPoints}, nil
}

// Delete removes an entry and returns the compensating delta that exactly
// reverses the points it awarded.
func (s *Service) Delete(entryID string) (Result, error) {
	entry, err := s.store.GetSubmission(entryID)
	if err != nil {
		return Result{}, fmt.Errorf("submission %s not found: %w", entryID, err)
	}

	if err := s.store.DeleteSubmission(entryID); err != nil {
		return Result{}, err
	}

	return Result{Entry: entry, PointsDelta: -entry.PointsEarned}, nil
}

// TotalForHabit sums the live entries' earned points over an inclusive day
// range — the auditable counterpart to the completion-date reconstruction.
func (s *Service) TotalForHabit(habitID, startDay, endDay string) (int, error) {
	entries, err := s.store.GetSubmissionsForHabit(habitID, startDay, endDay)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, e := range entries {
		total += e.PointsEarned
	}
	return total, nil
}
