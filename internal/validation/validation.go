package validation

import (
	"fmt"
	"strings"

	"github.com/hearthhq/hearth/internal/models"
	"github.com/hearthhq/hearth/internal/utils"
)

// ValidateHabit checks a habit's configuration before it is persisted.
// Engine behavior degrades safely on bad enum values, but the data layer
// should never accept them in the first place.
func ValidateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.MemberID == "" {
		return fmt.Errorf("habit must belong to a member")
	}

	switch h.Type {
	case models.HabitPositive, models.HabitNegative:
	default:
		return fmt.Errorf("invalid habit type %q (expected positive or negative)", h.Type)
	}

	switch h.ScoringType {
	case models.ScoringIncremental, models.ScoringThreshold:
	default:
		return fmt.Errorf("invalid scoring type %q (expected incremental or threshold)", h.ScoringType)
	}

	switch h.Period {
	case models.PeriodDaily, models.PeriodWeekly:
	default:
		return fmt.Errorf("invalid period %q (expected daily or weekly)", h.Period)
	}

	if h.BasePoints < 0 {
		return fmt.Errorf("base points must be non-negative, got %d", h.BasePoints)
	}
	if h.TargetCount < 0 {
		return fmt.Errorf("target count must be non-negative, got %d", h.TargetCount)
	}
	if h.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", h.Count)
	}
	if h.TotalCount < 0 {
		return fmt.Errorf("total count must be non-negative, got %d", h.TotalCount)
	}

	for _, d := range h.CompletedDates {
		if !utils.ValidDate(d) {
			return fmt.Errorf("invalid completion date %q (expected YYYY-MM-DD)", d)
		}
	}

	return nil
}

// ValidateSubmissionCount rejects non-positive quantities before any
// persistence or point-total mutation happens.
func ValidateSubmissionCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("submission count must be a positive integer, got %d", count)
	}
	return nil
}

// ValidateDateRange checks an inclusive date range.
func ValidateDateRange(start, end string) error {
	if !utils.ValidDate(start) {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", start)
	}
	if !utils.ValidDate(end) {
		return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", end)
	}
	if start > end {
		return fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return nil
}
