package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/hearthhq/hearth/internal/constants"
)

// Timestamp is the normalized form of a habit's last-updated value. Household
// data synced from the document store has carried several shapes over time:
// RFC3339 strings, bare YYYY-MM-DD dates, unix seconds, and {"seconds": n}
// objects. ParseTimestamp tolerates all of them exactly once, at the storage
// boundary; everything past that boundary sees only this type.
//
// An unparseable value yields an invalid Timestamp rather than an error. The
// staleness detector treats invalid as stale, so corrupted timestamps can
// never preserve progress across periods.
type Timestamp struct {
	t     time.Time
	valid bool
}

// NewTimestamp wraps a known-good time value.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, valid: true}
}

// InvalidTimestamp returns the zero, unparseable Timestamp.
func InvalidTimestamp() Timestamp {
	return Timestamp{}
}

// Time returns the normalized time and whether the original value parsed.
func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.valid
}

// Valid reports whether the original stored value was parseable.
func (ts Timestamp) Valid() bool {
	return ts.valid
}

// String renders the timestamp in the canonical stored form (RFC3339), or
// the empty string when invalid.
func (ts Timestamp) String() string {
	if !ts.valid {
		return ""
	}
	return ts.t.Format(time.RFC3339)
}

// secondsPayload matches the document-store object form {"seconds": n} with
// optional nanoseconds.
type secondsPayload struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

// ParseTimestamp normalizes a raw stored value. It never fails: anything it
// cannot make sense of comes back as an invalid Timestamp.
func ParseTimestamp(raw string) Timestamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return InvalidTimestamp()
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return NewTimestamp(t)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return NewTimestamp(t)
	}
	if t, err := time.ParseInLocation(constants.DateFormat, raw, time.Local); err == nil {
		return NewTimestamp(t)
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NewTimestamp(time.Unix(secs, 0))
	}
	if strings.HasPrefix(raw, "{") {
		var payload secondsPayload
		if err := json.Unmarshal([]byte(raw), &payload); err == nil && payload.Seconds != nil {
			return NewTimestamp(time.Unix(*payload.Seconds, payload.Nanoseconds))
		}
	}

	return InvalidTimestamp()
}
