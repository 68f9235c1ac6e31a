package ordering

import (
	"sort"

	"github.com/google/uuid"

	"lunch_manager/internal/models"
)

// UnknownShift buckets orders whose profile carries no recognized shift.
const UnknownShift = "unknown"

// UnknownItemTitle labels summary rows for orders whose menu item is missing.
const UnknownItemTitle = "Unknown Item"

// UserOrders is one user's orders within a shift.
type UserOrders struct {
	UserID  uuid.UUID       `json:"user_id"`
	Profile *models.Profile `json:"profile"`
	Orders  []models.Order  `json:"orders"`
}

// ShiftGroup is one shift's users and orders, in the fixed reporting order.
type ShiftGroup struct {
	Shift string       `json:"shift"`
	Users []UserOrders `json:"users"`
}

// ItemQuantity is one summary row: total quantity ordered of an item title.
type ItemQuantity struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// GroupByShiftThenUser buckets orders first by the ordering user's shift,
// then by user. The three fixed shifts are always present, in morning,
// afternoon, night order; an unknown bucket is appended only when some order
// has no recognized shift. Users within a shift are sorted by name.
func GroupByShiftThenUser(orders []models.Order) []ShiftGroup {
	byShift := make(map[string]map[uuid.UUID]*UserOrders)
	for _, shift := range models.Shifts() {
		byShift[string(shift)] = make(map[uuid.UUID]*UserOrders)
	}

	for _, order := range orders {
		shift := UnknownShift
		if order.Profile != nil && models.ShiftType(order.Profile.ShiftType).IsValid() {
			shift = order.Profile.ShiftType
		}
		if byShift[shift] == nil {
			byShift[shift] = make(map[uuid.UUID]*UserOrders)
		}
		user, ok := byShift[shift][order.UserID]
		if !ok {
			user = &UserOrders{UserID: order.UserID, Profile: order.Profile}
			byShift[shift][order.UserID] = user
		}
		user.Orders = append(user.Orders, order)
	}

	keys := make([]string, 0, len(byShift))
	for _, shift := range models.Shifts() {
		keys = append(keys, string(shift))
	}
	if len(byShift[UnknownShift]) > 0 {
		keys = append(keys, UnknownShift)
	}

	groups := make([]ShiftGroup, 0, len(keys))
	for _, key := range keys {
		users := make([]UserOrders, 0, len(byShift[key]))
		for _, user := range byShift[key] {
			users = append(users, *user)
		}
		sort.Slice(users, func(i, j int) bool {
			return lessUser(users[i], users[j])
		})
		groups = append(groups, ShiftGroup{Shift: key, Users: users})
	}
	return groups
}

// SummarizeItems sums quantities per distinct item title across all users of
// a shift, for the kitchen preparation list. Rows are sorted by title.
func SummarizeItems(users []UserOrders) []ItemQuantity {
	totals := make(map[string]int)
	for _, user := range users {
		for _, order := range user.Orders {
			title := UnknownItemTitle
			if order.MenuItem != nil {
				title = order.MenuItem.Title
			}
			totals[title] += order.Quantity
		}
	}

	summary := make([]ItemQuantity, 0, len(totals))
	for title, quantity := range totals {
		summary = append(summary, ItemQuantity{Title: title, Quantity: quantity})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Title < summary[j].Title
	})
	return summary
}

func lessUser(a, b UserOrders) bool {
	an, bn := userSortName(a), userSortName(b)
	if an != bn {
		return an < bn
	}
	return a.UserID.String() < b.UserID.String()
}

func userSortName(u UserOrders) string {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.LastName + " " + u.Profile.FirstName
}
