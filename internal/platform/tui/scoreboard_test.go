package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/idle-space/internal/storage"
)

type fakeRunSource struct {
	runs    []storage.Run
	err     error
	queries []string
}

func (f *fakeRunSource) TopRuns(player string, limit int) ([]storage.Run, error) {
	f.queries = append(f.queries, player)
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.Run
	for _, r := range f.runs {
		if player == "" || r.Player == player {
			out = append(out, r)
		}
	}
	return out, nil
}

func testRuns() []storage.Run {
	now := time.Now()
	return []storage.Run{
		{ID: 1, RunID: "a", Player: "bob", Distance: 5400, CreatedAt: now},
		{ID: 2, RunID: "b", Player: "alice", Distance: 1200, CreatedAt: now},
		{ID: 3, RunID: "c", Player: "alice", Distance: 300, CreatedAt: now},
	}
}

func TestScoreboardLoadsPlayerRuns(t *testing.T) {
	src := &fakeRunSource{runs: testRuns()}
	m := NewScoreboardModel(src, "alice", 120, 30)

	if len(m.Runs()) != 2 {
		t.Fatalf("len(Runs()) = %d, expected 2", len(m.Runs()))
	}
	if src.queries[0] != "alice" {
		t.Errorf("First query = %q, expected alice", src.queries[0])
	}

	view := m.View()
	if !strings.Contains(view, "LONGEST FLIGHTS - alice") {
		t.Error("Title should name the player")
	}
	if !strings.Contains(view, "1,200") {
		t.Error("Distances should be formatted with separators")
	}
}

func TestScoreboardSwitchToAllPilots(t *testing.T) {
	src := &fakeRunSource{runs: testRuns()}
	m := NewScoreboardModel(src, "alice", 120, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)

	if len(m.Runs()) != 3 {
		t.Errorf("len(Runs()) = %d, expected every pilot's flights", len(m.Runs()))
	}
	if src.queries[len(src.queries)-1] != "" {
		t.Error("All pilots should query without a player filter")
	}
	if !strings.Contains(m.View(), "all pilots") {
		t.Error("Title should say all pilots")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&fakeRunSource{}, "alice", 60, 20)
	if !strings.Contains(m.View(), "No flights recorded yet") {
		t.Error("Empty scoreboard should say so")
	}

	m = NewScoreboardModel(&fakeRunSource{err: errors.New("disk gone")}, "alice", 60, 20)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("Load errors should be shown")
	}

	m = NewScoreboardModel(nil, "alice", 60, 20)
	if len(m.Runs()) != 0 {
		t.Error("Nil source should show no flights")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(&fakeRunSource{}, "alice", 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestRenderRunsChart(t *testing.T) {
	out := RenderRunsChart(testRuns(), 40, 10)
	if strings.TrimSpace(out) == "" {
		t.Error("Chart should not be empty")
	}
}
