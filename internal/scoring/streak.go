package scoring

import (
	"sort"
	"time"

	"github.com/hearthhq/hearth/internal/utils"
)

// CalculateStreak returns the consecutive-day streak for a set of completion
// dates, anchored at now. The streak stays alive through the current day
// before today's completion has happened, but breaks as soon as a full
// calendar day is skipped: if the most recent completion is neither today nor
// yesterday, the streak is 0. Duplicate and malformed dates are tolerated.
func CalculateStreak(dates []string, now time.Time) int {
	seen := make(map[string]bool, len(dates))
	uniq := make([]string, 0, len(dates))
	for _, d := range dates {
		if seen[d] || !utils.ValidDate(d) {
			continue
		}
		seen[d] = true
		uniq = append(uniq, d)
	}
	if len(uniq) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(uniq)))

	today := utils.DateOf(now)
	yesterday := utils.DateOf(now.AddDate(0, 0, -1))
	if uniq[0] != today && uniq[0] != yesterday {
		return 0
	}

	streak := 1
	prev, _ := utils.ParseDate(uniq[0])
	for _, d := range uniq[1:] {
		cur, _ := utils.ParseDate(d)
		if !cur.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = cur
	}
	return streak
}

// SortDatesDescending returns the dates sorted newest-first with duplicates
// removed, the canonical stored order for a habit's completion history.
func SortDatesDescending(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}
