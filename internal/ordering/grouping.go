package ordering

import (
	"sort"
	"time"

	"lunch_manager/internal/models"
)

// DateGroup is one serve date's worth of menu items, in display order.
type DateGroup struct {
	DateKey string            `json:"date_key"`
	Items   []models.MenuItem `json:"items"`
}

// OrderDateGroup is one serve date's worth of orders.
type OrderDateGroup struct {
	DateKey string         `json:"date_key"`
	Orders  []models.Order `json:"orders"`
}

// GroupMenuByServeDate partitions menu items by serve date. Groups are sorted
// ascending by date with the unscheduled group last; items within a group are
// sorted by title.
func GroupMenuByServeDate(items []models.MenuItem, loc *time.Location) []DateGroup {
	byKey := make(map[string][]models.MenuItem)
	for _, item := range items {
		key := DateKey(item.ServeDate, loc)
		byKey[key] = append(byKey[key], item)
	}

	groups := make([]DateGroup, 0, len(byKey))
	for key, groupItems := range byKey {
		sort.SliceStable(groupItems, func(i, j int) bool {
			return groupItems[i].Title < groupItems[j].Title
		})
		groups = append(groups, DateGroup{DateKey: key, Items: groupItems})
	}
	sort.Slice(groups, func(i, j int) bool {
		return lessDateKey(groups[i].DateKey, groups[j].DateKey)
	})
	return groups
}

// GroupOrdersByServeDate partitions orders by their menu item's serve date,
// preserving the input order within each group.
func GroupOrdersByServeDate(orders []models.Order, loc *time.Location) []OrderDateGroup {
	byKey := make(map[string][]models.Order)
	for _, order := range orders {
		byKey[orderDateKey(order, loc)] = append(byKey[orderDateKey(order, loc)], order)
	}

	groups := make([]OrderDateGroup, 0, len(byKey))
	for key, groupOrders := range byKey {
		groups = append(groups, OrderDateGroup{DateKey: key, Orders: groupOrders})
	}
	sort.Slice(groups, func(i, j int) bool {
		return lessDateKey(groups[i].DateKey, groups[j].DateKey)
	})
	return groups
}

func orderDateKey(order models.Order, loc *time.Location) string {
	if order.MenuItem == nil {
		return UnscheduledKey
	}
	return DateKey(order.MenuItem.ServeDate, loc)
}
