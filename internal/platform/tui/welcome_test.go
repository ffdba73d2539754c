package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/idle-space/internal/core"
	"github.com/vovakirdan/idle-space/internal/idle"
)

func TestDrawWelcome(t *testing.T) {
	tests := []struct {
		name     string
		sum      idle.IdleSummary
		expected []string
	}{
		{"first run", idle.IdleSummary{}, []string{"WELCOME, PILOT", "Press Enter"}},
		{"resumed", idle.IdleSummary{ElapsedMs: 90_000, Points: 90}, []string{"WELCOME BACK", "1 minute, 30 seconds", "earned 90 points"}},
		{"under a second", idle.IdleSummary{ElapsedMs: 400}, []string{"WELCOME BACK", "less than a second", "earned 0 points"}},
		{"large score", idle.IdleSummary{ElapsedMs: 5_000_000, Points: 5000}, []string{"earned 5,000 points"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			drawWelcome(s, tc.sum)
			out := s.String()
			for _, want := range tc.expected {
				if !strings.Contains(out, want) {
					t.Errorf("drawWelcome(%+v) missing %q:\n%s", tc.sum, want, out)
				}
			}
		})
	}
}
