package countdown

import "time"

const secondsPerDay = 86400

// maxDaysLeft is the largest representable day count. Events further out
// than this (roughly 179 years) are excluded rather than wrapped around.
// This is a known representational limit of the day counter, kept for
// compatibility with existing event files.
const maxDaysLeft = 1<<16 - 1

// Event is a stored countdown target. Names are display strings and are
// not required to be unique.
type Event struct {
	Name string `toml:"name" yaml:"name"`
	// Time is the event's target moment as unix seconds.
	Time uint32 `toml:"time" yaml:"time"`
}

// Target returns the event's target moment.
func (e Event) Target() time.Time {
	return time.Unix(int64(e.Time), 0)
}

// DaysLeft returns the number of whole days between now and the event's
// target moment. ok is false when the target is at or before now, or when
// the day count exceeds maxDaysLeft.
func (e Event) DaysLeft(now time.Time) (uint16, bool) {
	delta := e.Target().Sub(now)
	if delta <= 0 {
		return 0, false
	}
	days := int64(delta / (secondsPerDay * time.Second))
	if days > maxDaysLeft {
		return 0, false
	}
	return uint16(days), true
}

// Future projects the event into a FutureEvent. ok is false for events
// with no future projection (expired or out of range).
func (e Event) Future(now time.Time) (FutureEvent, bool) {
	days, ok := e.DaysLeft(now)
	if !ok {
		return FutureEvent{}, false
	}
	return FutureEvent{Name: e.Name, DaysLeft: days}, true
}

// FutureEvent is an event that has been checked against a reference
// instant and is known not to have occurred yet. It exists only within a
// single pipeline invocation and is never persisted.
type FutureEvent struct {
	Name     string
	DaysLeft uint16
}
