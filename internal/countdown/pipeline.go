package countdown

import (
	"math/rand/v2"
	"sort"
	"time"
)

// FilterExpired drops events whose target is at or before now and projects
// the survivors into FutureEvents. Input order is preserved; expired and
// out-of-range events produce no output and no error.
func FilterExpired(now time.Time, events []Event) []FutureEvent {
	future := make([]FutureEvent, 0, len(events))
	for _, ev := range events {
		if fe, ok := ev.Future(now); ok {
			future = append(future, fe)
		}
	}
	return future
}

// SortBy returns the events ordered per the given policy. The input slice
// is never modified. Ties under OrderAsc and OrderDesc keep their input
// order; OrderShuffle makes no ordering guarantee at all.
func SortBy(events []FutureEvent, order Order) []FutureEvent {
	out := make([]FutureEvent, len(events))
	copy(out, events)

	switch order {
	case OrderShuffle:
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	case OrderDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DaysLeft > out[j].DaysLeft
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DaysLeft < out[j].DaysLeft
		})
	}
	return out
}

// Limit caps events at n entries, keeping their given order. A negative n
// means no limit; an n past the end returns the full input.
func Limit(events []FutureEvent, n int) []FutureEvent {
	if n < 0 || n >= len(events) {
		return events
	}
	return events[:n]
}

// Applicable runs the full pipeline: expired events are filtered out
// against now, the survivors are ordered per the policy, and the result is
// capped at limit entries (negative means all). This is the single entry
// point the CLI layer uses.
func Applicable(now time.Time, events []Event, order Order, limit int) []FutureEvent {
	return Limit(SortBy(FilterExpired(now, events), order), limit)
}
