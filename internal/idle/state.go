// Package idle implements the idle accrual engine: a pure state machine that
// turns explicit actions and elapsed wall-clock time into score.
//
// The engine has no ambient state. Hosts feed it timestamps through events
// and persist the resulting ScoreState through a Session.
package idle

// State is the full idle engine state: the durable score fields plus the
// transient welcome-back summary.
type State struct {
	Score        int64 // Accumulated points, never decreases
	LastUpdateMs int64 // Epoch ms of the last settled accrual; 0 = never initialized

	Summary    IdleSummary // Valid only when HasSummary is true
	HasSummary bool
}

// IdleSummary reports points earned while the game was not running.
// Its points are folded into the score only on acknowledgement.
type IdleSummary struct {
	ElapsedMs    int64
	Points       int64
	Acknowledged bool
}

// ScoreState is the durable part of State.
type ScoreState struct {
	Score        int64
	LastUpdateMs int64
}

// Durable returns the fields that cross the persistence boundary.
func (s State) Durable() ScoreState {
	return ScoreState{Score: s.Score, LastUpdateMs: s.LastUpdateMs}
}

// SummaryOpen reports whether a summary is waiting for acknowledgement.
func (s State) SummaryOpen() bool {
	return s.HasSummary && !s.Summary.Acknowledged
}

// FromDurable builds an initial State from persisted values.
// Negative values are treated as absent.
func FromDurable(d ScoreState) State {
	if d.Score < 0 {
		d.Score = 0
	}
	if d.LastUpdateMs < 0 {
		d.LastUpdateMs = 0
	}
	return State{Score: d.Score, LastUpdateMs: d.LastUpdateMs}
}
