package utils

import (
	"fmt"
	"time"

	"github.com/hearthhq/hearth/internal/constants"
)

// LoadLocation resolves an IANA timezone name, treating "" and "Local" as
// the system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the given timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// DateOf returns the calendar date string (YYYY-MM-DD) of a time value.
func DateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD). The result is anchored at
// midnight UTC so date arithmetic is immune to DST transitions.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone reports whether the name resolves to a known timezone.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
