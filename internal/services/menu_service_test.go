package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunch_manager/internal/models"
	"lunch_manager/internal/ordering"
)

func TestVisibleMenuFiltersAndGroups(t *testing.T) {
	menuRepo := newMemMenuRepo()
	svc := NewMenuService(menuRepo, nil, 0, time.UTC)

	now := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, 10, 4, 18, 0, 0, 0, time.UTC)

	seedItem(t, menuRepo, "2025-10-05", &deadline, "12.50")
	seedItem(t, menuRepo, "2025-10-06", nil, "11.00")
	seedItem(t, menuRepo, "2025-09-01", nil, "10.00") // already served

	archived := seedItem(t, menuRepo, "2025-10-05", nil, "9.00")
	archived.IsActive = false
	require.NoError(t, menuRepo.Update(archived))

	groups, err := svc.VisibleMenu(now)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-10-05", groups[0].DateKey)
	assert.Equal(t, "2025-10-06", groups[1].DateKey)

	require.Len(t, groups[0].Items, 1, "archived item must not appear")
	require.NotNil(t, groups[0].SharedDeadline)
	assert.True(t, groups[0].SharedDeadline.Equal(deadline))
	assert.Equal(t, ordering.Open, groups[0].DeadlineState)
	assert.False(t, groups[0].AllExpired)

	assert.Nil(t, groups[1].SharedDeadline)
	assert.Equal(t, ordering.NoDeadline, groups[1].DeadlineState)
}

func TestVisibleMenuKeepsExpiredItemsThroughServeDay(t *testing.T) {
	menuRepo := newMemMenuRepo()
	svc := NewMenuService(menuRepo, nil, 0, time.UTC)

	deadline := time.Date(2025, 10, 4, 18, 0, 0, 0, time.UTC)
	seedItem(t, menuRepo, "2025-10-05", &deadline, "12.50")

	// after the deadline, on the serve day itself
	now := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	groups, err := svc.VisibleMenu(now)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 1)
	assert.True(t, groups[0].Items[0].Expired)
	assert.True(t, groups[0].AllExpired)

	// the day after, the group is gone
	groups, err = svc.VisibleMenu(now.Add(24 * time.Hour))
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCreateItemValidation(t *testing.T) {
	menuRepo := newMemMenuRepo()
	svc := NewMenuService(menuRepo, nil, 0, time.UTC)

	negative := &models.MenuItem{Title: "Bad", Price: decimal.RequireFromString("-1.00"), IsActive: true}
	assert.ErrorIs(t, svc.CreateItem(negative), ErrNegativePrice)

	serveDate := "2025-10-05"
	lateDeadline := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	afterServeDay := &models.MenuItem{
		Title:         "Late",
		Price:         decimal.RequireFromString("5.00"),
		ServeDate:     &serveDate,
		OrderDeadline: &lateDeadline,
		IsActive:      true,
	}
	assert.ErrorIs(t, svc.CreateItem(afterServeDay), ErrDeadlineAfterServeDay)

	badDate := "someday"
	malformed := &models.MenuItem{
		Title:     "Odd",
		Price:     decimal.RequireFromString("5.00"),
		ServeDate: &badDate,
		IsActive:  true,
	}
	assert.ErrorIs(t, svc.CreateItem(malformed), ErrInvalidServeDate)

	ok := &models.MenuItem{Title: "Fine", Price: decimal.RequireFromString("5.00"), IsActive: true}
	require.NoError(t, svc.CreateItem(ok))
	assert.Len(t, menuRepo.items, 1)
}
