package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/idle-space/internal/core"
	"github.com/vovakirdan/idle-space/internal/elapsed"
	"github.com/vovakirdan/idle-space/internal/idle"
)

// drawWelcome draws the welcome-back summary on top of the scene.
func drawWelcome(dst *core.Screen, sum idle.IdleSummary) {
	if sum.ElapsedMs == 0 && sum.Points == 0 {
		dst.DrawMessageBox("WELCOME, PILOT", core.ColorCyan,
			"Your score keeps growing while you are away.",
			"",
			"Press Enter or click to launch")
		return
	}

	b := elapsed.Split(sum.ElapsedMs)
	away := b.String()
	if b.IsZero() {
		away = "less than a second"
	}

	dst.DrawMessageBox("WELCOME BACK", core.ColorYellow,
		fmt.Sprintf("You were away for %s", away),
		fmt.Sprintf("and earned %s points.", humanize.Comma(sum.Points)),
		"",
		"Press Enter or click to collect")
}
