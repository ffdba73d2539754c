package sim

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/idle-space/internal/core"
)

// Visual characters for rendering
const (
	StarChar   = '·'
	HazardChar = '●'
)

// craftSprite is drawn centered on the craft position.
var craftSprite = []string{
	"  ▲  ",
	" ╱█╲ ",
	"▕▀▀▀▏",
}

// Render draws the scene and HUD into dst. It reads state only; calling it
// any number of times between frames produces the same picture.
func (l *Loop) Render(dst *core.Screen, score int64) {
	dst.Clear()

	for _, s := range l.stars.stars {
		dst.SetCell(int(s.X), int(s.Y), StarChar, core.ColorDim)
	}

	l.drawCraft(dst)
	dst.DrawDisc(l.scene.HazardX, l.scene.HazardY, l.cfg.HazardRadius, HazardChar, core.ColorOrange)

	scoreText := fmt.Sprintf(" Score: %s ", humanize.Comma(score))
	dst.DrawText(2, 0, scoreText, core.ColorYellow)

	distText := fmt.Sprintf(" Distance: %s ", humanize.Comma(l.Distance()))
	dst.DrawText(dst.Width()-len(distText)-2, 0, distText, core.ColorCyan)

	l.drawButton(dst)

	if l.status == GameOver {
		dst.DrawMessageBox("GAME OVER", core.ColorRed,
			fmt.Sprintf("Distance: %s  |  Press R to fly again", humanize.Comma(l.Distance())))
	}
}

func (l *Loop) drawCraft(dst *core.Screen) {
	color := core.ColorWhite
	if l.status == GameOver {
		color = core.ColorRed
	}

	spriteW := len([]rune(craftSprite[0]))
	left := int(math.Round(l.scene.PlayerX)) - spriteW/2
	top := l.screenH/2 - len(craftSprite)/2
	for dy, row := range craftSprite {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				dst.SetCell(left+dx, top+dy, r, color)
			}
			dx++
		}
	}
}

func (l *Loop) drawButton(dst *core.Screen) {
	b := l.button
	dst.DrawRect(b, ' ', core.ColorDefault)
	dst.DrawBox(b, core.ColorGreen)
	label := l.cfg.Button.Label
	dst.DrawText(b.X+(b.W-len([]rune(label)))/2, b.Y+b.H/2, label, core.ColorGreen)
}
