package elapsed

import "testing"

func TestPoints(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected int64
	}{
		{"zero", 0, 0},
		{"under one second", 999, 0},
		{"exactly one second", 1000, 1},
		{"truncates", 1999, 1},
		{"five seconds", 5000, 5},
		{"one hour", Hour, 3600},
		{"negative clamps to zero", -5000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Points(tc.ms, DefaultMsPerPoint); got != tc.expected {
				t.Errorf("Points(%d) = %d, expected %d", tc.ms, got, tc.expected)
			}
		})
	}
}

func TestPointsMonotonic(t *testing.T) {
	prev := Points(-10_000, DefaultMsPerPoint)
	for ms := int64(-10_000); ms <= 10_000; ms += 7 {
		got := Points(ms, DefaultMsPerPoint)
		if got < prev {
			t.Fatalf("Points decreased at %d: %d < %d", ms, got, prev)
		}
		if ms >= 0 && got != ms/1000 {
			t.Fatalf("Points(%d) = %d, expected floor %d", ms, got, ms/1000)
		}
		prev = got
	}
}

func TestPointsRateFallback(t *testing.T) {
	if got := Points(3000, 0); got != 3 {
		t.Errorf("Points with zero rate = %d, expected 3", got)
	}
	if got := Points(3000, 500); got != 6 {
		t.Errorf("Points with 500ms rate = %d, expected 6", got)
	}
}

func TestSplitZero(t *testing.T) {
	if b := Split(0); !b.IsZero() {
		t.Errorf("Split(0) = %+v, expected zero breakdown", b)
	}
	if b := Split(-Hour); !b.IsZero() {
		t.Errorf("Split(negative) = %+v, expected zero breakdown", b)
	}
}

func TestSplitTwoMonthsFiveHours(t *testing.T) {
	got := Split(2*Month + 5*Hour)
	expected := Breakdown{Months: 2, Hours: 5}
	if got != expected {
		t.Errorf("Split() = %+v, expected %+v", got, expected)
	}
}

func TestSplitWeekDaysMinutes(t *testing.T) {
	got := Split(Week + 3*Day + 10*Minute)
	expected := Breakdown{Weeks: 1, Days: 3, Minutes: 10}
	if got != expected {
		t.Errorf("Split() = %+v, expected %+v", got, expected)
	}
}

func TestSplitRoundTrip(t *testing.T) {
	inputs := []int64{
		0, 1, 999, 1000, 1001, 59_999, Hour + 1, Day - 1,
		3*Month + 2*Week + 6*Day + 23*Hour + 59*Minute + 59*Second + 999,
		123_456_789_012,
	}

	for _, ms := range inputs {
		b := Split(ms)
		floored := ms - ms%Second
		if b.Millis() != floored {
			t.Errorf("Split(%d).Millis() = %d, expected %d", ms, b.Millis(), floored)
		}
		if b.Seconds >= 60 || b.Minutes >= 60 || b.Hours >= 24 || b.Days >= 7 || b.Weeks >= 5 {
			t.Errorf("Split(%d) = %+v has an overflowing unit", ms, b)
		}
	}
}

func TestBreakdownString(t *testing.T) {
	tests := []struct {
		ms       int64
		expected string
	}{
		{0, "0 seconds"},
		{Second, "1 second"},
		{Week + 3*Day + 10*Minute, "1 week, 3 days, 10 minutes"},
		{2*Month + Hour + 2*Second, "2 months, 1 hour, 2 seconds"},
	}

	for _, tc := range tests {
		if got := Split(tc.ms).String(); got != tc.expected {
			t.Errorf("Split(%d).String() = %q, expected %q", tc.ms, got, tc.expected)
		}
	}
}
