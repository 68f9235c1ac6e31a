package ordering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lunch_manager/internal/models"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestIsVisibleBeforeDeadline(t *testing.T) {
	// serve date 2025-10-05, deadline 2025-10-04T18:00Z, evaluated 24h out
	item := models.MenuItem{
		ServeDate:     strPtr("2025-10-05"),
		OrderDeadline: timePtr(time.Date(2025, 10, 4, 18, 0, 0, 0, time.UTC)),
		IsActive:      true,
	}
	now := time.Date(2025, 10, 3, 18, 0, 0, 0, time.UTC)

	assert.Equal(t, Soon, EvaluateDeadline(item.OrderDeadline, now))
	assert.True(t, IsVisible(item, now, time.UTC))
}

func TestIsVisibleAfterDeadlineThroughEndOfServeDay(t *testing.T) {
	// same item, after deadline but before local midnight of the serve day:
	// ordering closed, informational display continues
	item := models.MenuItem{
		ServeDate:     strPtr("2025-10-05"),
		OrderDeadline: timePtr(time.Date(2025, 10, 4, 18, 0, 0, 0, time.UTC)),
		IsActive:      true,
	}
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Expired, EvaluateDeadline(item.OrderDeadline, now))
	assert.True(t, IsVisible(item, now, time.UTC))

	afterMidnight := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsVisible(item, afterMidnight, time.UTC))
}

func TestIsVisibleInactiveHidden(t *testing.T) {
	item := models.MenuItem{ServeDate: strPtr("2025-10-05"), IsActive: false}
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsVisible(item, now, time.UTC))
}

func TestIsVisibleUnscheduledAlwaysShows(t *testing.T) {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsVisible(models.MenuItem{IsActive: true}, now, time.UTC))
	assert.True(t, IsVisible(models.MenuItem{IsActive: true, ServeDate: strPtr("not-a-date")}, now, time.UTC))
}

func TestIsPastPartition(t *testing.T) {
	today := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		item models.MenuItem
		want bool
	}{
		{"archived", models.MenuItem{IsActive: false, ServeDate: strPtr("2025-10-06")}, true},
		{"no serve date", models.MenuItem{IsActive: true}, true},
		{"malformed serve date", models.MenuItem{IsActive: true, ServeDate: strPtr("soon")}, true},
		{"served yesterday", models.MenuItem{IsActive: true, ServeDate: strPtr("2025-10-04")}, true},
		{"serves today", models.MenuItem{IsActive: true, ServeDate: strPtr("2025-10-05")}, false},
		{"serves tomorrow", models.MenuItem{IsActive: true, ServeDate: strPtr("2025-10-06")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPast(tt.item, today, time.UTC))
		})
	}
}

func TestParseServeDateDegradesToUnscheduled(t *testing.T) {
	_, ok := ParseServeDate(nil, time.UTC)
	assert.False(t, ok)

	_, ok = ParseServeDate(strPtr(""), time.UTC)
	assert.False(t, ok)

	_, ok = ParseServeDate(strPtr("2025-13-45"), time.UTC)
	assert.False(t, ok)

	// timestamp strings are truncated to their date part
	day, ok := ParseServeDate(strPtr("2025-10-05T00:00:00Z"), time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), day)
}
