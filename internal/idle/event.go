package idle

// Event is a closed set of idle engine inputs. Only the types declared in
// this file implement it.
type Event interface {
	idleEvent()
}

// Increment adds one point (the primary player action).
type Increment struct{}

// Tick settles passive accrual up to NowMs.
type Tick struct {
	NowMs int64
}

// ComputeIdleSummary opens the welcome-back summary for the gap between the
// last settled update and NowMs. Points are held, not yet added.
type ComputeIdleSummary struct {
	NowMs int64
}

// AcknowledgeIdleSummary folds the open summary's points into the score.
type AcknowledgeIdleSummary struct {
	NowMs int64
}

// Unknown is produced when external input names no known action.
// Applying it leaves the state untouched.
type Unknown struct {
	Name string
}

func (Increment) idleEvent()              {}
func (Tick) idleEvent()                   {}
func (ComputeIdleSummary) idleEvent()     {}
func (AcknowledgeIdleSummary) idleEvent() {}
func (Unknown) idleEvent()                {}

// Action names accepted by DecodeEvent.
const (
	ActionIncrement   = "increment"
	ActionTick        = "tick"
	ActionIdleSummary = "idle_summary"
	ActionAcknowledge = "acknowledge"
)

// DecodeEvent maps an external action name onto an Event. Unrecognized
// names decode to Unknown.
func DecodeEvent(name string, nowMs int64) Event {
	switch name {
	case ActionIncrement:
		return Increment{}
	case ActionTick:
		return Tick{NowMs: nowMs}
	case ActionIdleSummary:
		return ComputeIdleSummary{NowMs: nowMs}
	case ActionAcknowledge:
		return AcknowledgeIdleSummary{NowMs: nowMs}
	default:
		return Unknown{Name: name}
	}
}
