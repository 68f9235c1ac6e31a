package ordering

import (
	"time"

	"lunch_manager/internal/models"
)

// IsVisible decides whether a menu item still shows in the ordering menu.
// An item whose deadline has passed stays visible through the end of its
// serve day for informational display; only the ordering action is disabled
// once the deadline state is Expired.
func IsVisible(item models.MenuItem, now time.Time, loc *time.Location) bool {
	if !item.IsActive {
		return false
	}
	endOfServeDay, ok := EndOfServeDay(item.ServeDate, loc)
	if !ok {
		// unscheduled items always show
		return true
	}
	if EvaluateDeadline(item.OrderDeadline, now) != Expired {
		return true
	}
	return now.Before(endOfServeDay)
}

// IsPast is the coarse partition used by the historical order list: archived
// items, items without a serve date, and items served before today all count
// as past.
func IsPast(item models.MenuItem, today time.Time, loc *time.Location) bool {
	if !item.IsActive {
		return true
	}
	serveDay, ok := ParseServeDate(item.ServeDate, loc)
	if !ok {
		return true
	}
	return serveDay.Before(today)
}
