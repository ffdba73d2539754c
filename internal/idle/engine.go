package idle

import "github.com/vovakirdan/idle-space/internal/elapsed"

// Engine holds the conversion rate. The zero value accrues one point per
// second.
type Engine struct {
	MsPerPoint int64
}

// NewEngine creates an engine with the given accrual rate.
func NewEngine(msPerPoint int64) Engine {
	if msPerPoint <= 0 {
		msPerPoint = elapsed.DefaultMsPerPoint
	}
	return Engine{MsPerPoint: msPerPoint}
}

func (e Engine) rate() int64 {
	if e.MsPerPoint <= 0 {
		return elapsed.DefaultMsPerPoint
	}
	return e.MsPerPoint
}

// Apply returns the state that follows s after ev. It never mutates s and
// returns s unchanged for events it does not handle.
func (e Engine) Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case Increment:
		s.Score++
		return s

	case Tick:
		return e.tick(s, ev.NowMs)

	case ComputeIdleSummary:
		return e.computeSummary(s, ev.NowMs)

	case AcknowledgeIdleSummary:
		if s.HasSummary {
			s.Score += s.Summary.Points
			s.Summary.Points = 0
			s.Summary.Acknowledged = true
		}
		s.LastUpdateMs = ev.NowMs
		return s

	default:
		return s
	}
}

// tick converts the time since the last settlement into points. Only whole
// points are settled: the timestamp advances by the time actually paid out,
// so the fractional remainder carries into the next tick. A timestamp that
// went backwards pays nothing and resets the clock to now.
func (e Engine) tick(s State, nowMs int64) State {
	gap := nowMs - s.LastUpdateMs
	if gap <= 0 {
		s.LastUpdateMs = nowMs
		return s
	}

	rate := e.rate()
	points := elapsed.Points(gap, rate)
	s.Score += points
	s.LastUpdateMs += points * rate
	return s
}

func (e Engine) computeSummary(s State, nowMs int64) State {
	// First run: nothing to catch up on.
	if s.LastUpdateMs == 0 || s.Score == 0 {
		s.Summary = IdleSummary{}
		s.HasSummary = true
		s.LastUpdateMs = nowMs
		return s
	}

	gap := nowMs - s.LastUpdateMs
	if gap < 0 {
		gap = 0
	}

	s.Summary = IdleSummary{
		ElapsedMs: gap,
		Points:    elapsed.Points(gap, e.rate()),
	}
	s.HasSummary = true
	s.LastUpdateMs = nowMs
	return s
}

// Apply runs ev against s with the default one-point-per-second rate.
func Apply(s State, ev Event) State {
	return Engine{}.Apply(s, ev)
}
