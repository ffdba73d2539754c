// Package elapsed converts wall-clock durations into game points and into a
// human-readable breakdown. It is shared by the idle engine and the UI.
package elapsed

import (
	"fmt"
	"strings"
)

// Fixed unit sizes in milliseconds. Months are 30 days; the breakdown is not
// calendar-aware.
const (
	Second int64 = 1000
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Week         = 7 * Day
	Month        = 30 * Day
)

// DefaultMsPerPoint is the accrual rate: one point per elapsed second.
const DefaultMsPerPoint = Second

// Points converts a duration in milliseconds into points, truncating toward
// zero. Negative durations (clock skew) yield zero points. A non-positive
// rate falls back to DefaultMsPerPoint.
func Points(ms, msPerPoint int64) int64 {
	if ms <= 0 {
		return 0
	}
	if msPerPoint <= 0 {
		msPerPoint = DefaultMsPerPoint
	}
	return ms / msPerPoint
}

// Breakdown is a duration split into non-overlapping units, largest first.
type Breakdown struct {
	Months  int64
	Weeks   int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Split decomposes ms into a Breakdown. Each field holds the remainder after
// all larger units were divided out. Sub-second precision is dropped.
func Split(ms int64) Breakdown {
	if ms <= 0 {
		return Breakdown{}
	}

	var b Breakdown
	b.Months, ms = ms/Month, ms%Month
	b.Weeks, ms = ms/Week, ms%Week
	b.Days, ms = ms/Day, ms%Day
	b.Hours, ms = ms/Hour, ms%Hour
	b.Minutes, ms = ms/Minute, ms%Minute
	b.Seconds = ms / Second
	return b
}

// Millis reconstructs the total duration using the same fixed unit sizes.
func (b Breakdown) Millis() int64 {
	return b.Months*Month +
		b.Weeks*Week +
		b.Days*Day +
		b.Hours*Hour +
		b.Minutes*Minute +
		b.Seconds*Second
}

// IsZero reports whether every unit is zero.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// String renders the non-zero units, e.g. "1 week, 3 days, 10 minutes".
// A zero breakdown renders as "0 seconds".
func (b Breakdown) String() string {
	units := []struct {
		n    int64
		name string
	}{
		{b.Months, "month"},
		{b.Weeks, "week"},
		{b.Days, "day"},
		{b.Hours, "hour"},
		{b.Minutes, "minute"},
		{b.Seconds, "second"},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if u.n == 0 {
			continue
		}
		parts = append(parts, plural(u.n, u.name))
	}

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
