package ordering

import (
	"strings"
	"time"
)

// UnscheduledKey is the group key for items without a usable serve date.
const UnscheduledKey = "unscheduled"

const serveDateLayout = "2006-01-02"

// ParseServeDate interprets a YYYY-MM-DD string as midnight in loc.
// Empty or malformed dates report ok=false so callers degrade to the
// unscheduled classification instead of failing.
func ParseServeDate(serveDate *string, loc *time.Location) (time.Time, bool) {
	if serveDate == nil || *serveDate == "" {
		return time.Time{}, false
	}
	raw := *serveDate
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}
	t, err := time.ParseInLocation(serveDateLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EndOfServeDay returns 23:59:59.999 local on the serve date.
func EndOfServeDay(serveDate *string, loc *time.Location) (time.Time, bool) {
	day, ok := ParseServeDate(serveDate, loc)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(24*time.Hour - time.Millisecond), true
}

// DateKey is the serve-date grouping key: the YYYY-MM-DD string itself, or
// UnscheduledKey when the date is absent or malformed.
func DateKey(serveDate *string, loc *time.Location) string {
	day, ok := ParseServeDate(serveDate, loc)
	if !ok {
		return UnscheduledKey
	}
	return day.Format(serveDateLayout)
}

// MonthKey buckets a serve date into its YYYY-MM month.
func MonthKey(serveDate *string, loc *time.Location) string {
	day, ok := ParseServeDate(serveDate, loc)
	if !ok {
		return UnscheduledKey
	}
	return day.Format("2006-01")
}

// Today truncates now to local midnight.
func Today(now time.Time, loc *time.Location) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// lessDateKey orders date keys ascending with UnscheduledKey always last.
// YYYY-MM-DD and YYYY-MM keys compare correctly as strings.
func lessDateKey(a, b string) bool {
	if a == UnscheduledKey {
		return false
	}
	if b == UnscheduledKey {
		return true
	}
	return a < b
}
