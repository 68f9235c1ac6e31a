package ordering

import (
	"sort"
	"time"

	"lunch_manager/internal/models"
)

// MonthBucket is one calendar month of past orders, newest serve date first.
type MonthBucket struct {
	Key    string         `json:"key"` // YYYY-MM or UnscheduledKey
	Label  string         `json:"label"`
	Count  int            `json:"count"`
	Range  string         `json:"range"`
	Orders []models.Order `json:"orders"`
}

// BucketByMonth groups past orders by serve-date month. Buckets are sorted
// most recent first with the unscheduled bucket last; orders within a bucket
// are sorted by serve date descending. Each bucket carries a count and a
// human date range spanning its earliest and latest serve dates.
func BucketByMonth(orders []models.Order, loc *time.Location) []MonthBucket {
	byKey := make(map[string][]models.Order)
	for _, order := range orders {
		var key string
		if order.MenuItem == nil {
			key = UnscheduledKey
		} else {
			key = MonthKey(order.MenuItem.ServeDate, loc)
		}
		byKey[key] = append(byKey[key], order)
	}

	buckets := make([]MonthBucket, 0, len(byKey))
	for key, bucketOrders := range byKey {
		sort.SliceStable(bucketOrders, func(i, j int) bool {
			di, _ := orderServeDay(bucketOrders[i], loc)
			dj, _ := orderServeDay(bucketOrders[j], loc)
			return dj.Before(di)
		})
		buckets = append(buckets, MonthBucket{
			Key:    key,
			Label:  monthLabel(key, loc),
			Count:  len(bucketOrders),
			Range:  bucketRange(bucketOrders, loc),
			Orders: bucketOrders,
		})
	}

	// descending, unscheduled last
	sort.Slice(buckets, func(i, j int) bool {
		a, b := buckets[i].Key, buckets[j].Key
		if a == UnscheduledKey {
			return false
		}
		if b == UnscheduledKey {
			return true
		}
		return a > b
	})
	return buckets
}

func orderServeDay(order models.Order, loc *time.Location) (time.Time, bool) {
	if order.MenuItem == nil {
		return time.Time{}, false
	}
	return ParseServeDate(order.MenuItem.ServeDate, loc)
}

func monthLabel(key string, loc *time.Location) string {
	if key == UnscheduledKey {
		return "Unscheduled"
	}
	month, err := time.ParseInLocation("2006-01", key, loc)
	if err != nil {
		return key
	}
	return month.Format("January 2006")
}

func bucketRange(orders []models.Order, loc *time.Location) string {
	var minDay, maxDay time.Time
	dated := false
	for _, order := range orders {
		day, ok := orderServeDay(order, loc)
		if !ok {
			continue
		}
		if !dated || day.Before(minDay) {
			minDay = day
		}
		if !dated || day.After(maxDay) {
			maxDay = day
		}
		dated = true
	}
	if !dated {
		return "Unscheduled"
	}
	return minDay.Format("Jan 2") + " – " + maxDay.Format("Jan 2")
}
