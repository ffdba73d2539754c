package idle

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// Store is the durable string-keyed map the session persists into.
// Get reports ok=false for absent keys.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Clock returns the current wall-clock time in epoch milliseconds.
type Clock func() int64

// SystemClock reads the real wall clock.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// Keys names the two persisted fields.
type Keys struct {
	Score      string
	LastUpdate string
}

// DefaultKeys returns the key names used when none are configured.
func DefaultKeys() Keys {
	return Keys{
		Score:      "score",
		LastUpdate: "lastUpdateEpochMs",
	}
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Store      Store       // Required
	Clock      Clock       // Defaults to SystemClock
	Keys       Keys        // Defaults to DefaultKeys
	MsPerPoint int64       // Defaults to one point per second
	Logger     *log.Logger // Defaults to a discarding logger
}

// Session binds an Engine to a Store and a Clock. It owns the only copy of
// the idle State and writes the durable fields back whenever they change.
//
// A Session is not safe for concurrent use; hosts drive it from a single
// goroutine.
type Session struct {
	engine Engine
	store  Store
	clock  Clock
	keys   Keys
	logger *log.Logger
	state  State
}

// Restore loads the persisted score, then immediately computes the
// welcome-back summary for the time spent away. The summary is left open
// until Acknowledge is called. Restore must complete before the host starts
// its periodic Tick timer.
func Restore(cfg SessionConfig) *Session {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.Keys.Score == "" || cfg.Keys.LastUpdate == "" {
		cfg.Keys = DefaultKeys()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	s := &Session{
		engine: NewEngine(cfg.MsPerPoint),
		store:  cfg.Store,
		clock:  cfg.Clock,
		keys:   cfg.Keys,
		logger: cfg.Logger,
	}

	s.state = FromDurable(ScoreState{
		Score:        s.readInt(s.keys.Score),
		LastUpdateMs: s.readInt(s.keys.LastUpdate),
	})
	s.logger.Debug("restored score", "score", s.state.Score, "last_update_ms", s.state.LastUpdateMs)

	s.Dispatch(ComputeIdleSummary{NowMs: s.clock()})
	if sum := s.state.Summary; sum.Points > 0 {
		s.logger.Info("idle summary", "elapsed_ms", sum.ElapsedMs, "points", sum.Points)
	}
	return s
}

// State returns a copy of the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int64 {
	return s.state.Score
}

// Summary returns the welcome-back summary and whether it is still open.
func (s *Session) Summary() (IdleSummary, bool) {
	return s.state.Summary, s.state.SummaryOpen()
}

// Increment adds one point.
func (s *Session) Increment() State {
	return s.Dispatch(Increment{})
}

// Tick settles passive accrual up to now.
func (s *Session) Tick() State {
	return s.Dispatch(Tick{NowMs: s.clock()})
}

// Acknowledge closes the open summary and credits its points.
func (s *Session) Acknowledge() State {
	return s.Dispatch(AcknowledgeIdleSummary{NowMs: s.clock()})
}

// Dispatch applies ev and persists the durable fields if they changed.
func (s *Session) Dispatch(ev Event) State {
	prev := s.state.Durable()
	s.state = s.engine.Apply(s.state, ev)
	if s.state.Durable() != prev {
		s.persist()
	}
	return s.state
}

// persist writes the score, then the timestamp. The timestamp is only
// written once the score write succeeded.
func (s *Session) persist() {
	if s.store == nil {
		return
	}

	d := s.state.Durable()
	if err := s.store.Set(s.keys.Score, strconv.FormatInt(d.Score, 10)); err != nil {
		s.logger.Warn("could not save score", "key", s.keys.Score, "error", err)
		return
	}
	if err := s.store.Set(s.keys.LastUpdate, strconv.FormatInt(d.LastUpdateMs, 10)); err != nil {
		s.logger.Warn("could not save timestamp", "key", s.keys.LastUpdate, "error", err)
	}
}

// readInt loads a persisted integer. Absent, unreadable or corrupt values
// read as zero.
func (s *Session) readInt(key string) int64 {
	if s.store == nil {
		return 0
	}

	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.logger.Warn("could not read stored value", "key", key, "error", err)
		return 0
	}
	if !ok || raw == "" {
		return 0
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		s.logger.Warn("ignoring corrupt stored value", "key", key, "value", raw)
		return 0
	}
	return n
}
