package ordering

import "time"

// DeadlineState classifies how much of an item's order window remains.
type DeadlineState string

const (
	NoDeadline DeadlineState = "no_deadline"
	Open       DeadlineState = "open"
	Soon       DeadlineState = "soon"
	Urgent     DeadlineState = "urgent"
	Expired    DeadlineState = "expired"
)

const (
	urgentWindow = 12 * time.Hour
	soonWindow   = 24 * time.Hour
)

// EvaluateDeadline classifies a deadline against the supplied clock. A nil
// deadline always reports NoDeadline.
func EvaluateDeadline(deadline *time.Time, now time.Time) DeadlineState {
	if deadline == nil {
		return NoDeadline
	}
	remaining := deadline.Sub(now)
	switch {
	case remaining <= 0:
		return Expired
	case remaining <= urgentWindow:
		return Urgent
	case remaining <= soonWindow:
		return Soon
	default:
		return Open
	}
}

// Orderable reports whether an order may still be placed or edited.
func (s DeadlineState) Orderable() bool {
	return s != Expired
}
