// Package sim implements the real-time space scene: a falling starfield, the
// player's craft and a falling hazard. The loop is a pure state machine
// advanced by frame timestamps supplied by the host.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/core"
)

// Status is the loop's state machine position.
type Status int

const (
	Running  Status = iota
	GameOver        // Terminal; only Reset leaves it
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Direction is a horizontal move input.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Scene is the simulation state exposed to callers.
type Scene struct {
	PlayerX float64 // Clamped to [0, width]
	HazardX float64
	HazardY float64
	Over    bool
}

// Star is one decorative background point.
type Star struct {
	X, Y float64
}

// starField manages spawning and movement of background stars.
type starField struct {
	stars []Star
	rng   *rand.Rand
}

func newStarField(rng *rand.Rand) *starField {
	return &starField{rng: rng}
}

// regenerate scatters count stars uniformly over the scene.
func (f *starField) regenerate(count int, width, height float64) {
	f.stars = f.stars[:0]
	for i := 0; i < count; i++ {
		f.stars = append(f.stars, Star{
			X: f.rng.Float64() * width,
			Y: f.rng.Float64() * height,
		})
	}
}

// advance moves every star down by dy, recycling stars that leave the bottom
// at the top with a new column.
func (f *starField) advance(dy, width, height float64) {
	for i := range f.stars {
		f.stars[i].Y += dy
		if f.stars[i].Y > height {
			f.stars[i].Y = 0
			f.stars[i].X = f.rng.Float64() * width
		}
	}
}

// buttonRect places the primary-action button at the bottom-right corner.
func buttonRect(b config.ButtonConfig, screenW, screenH int) core.Rect {
	x := core.Clamp(screenW-b.Width-b.MarginRight, 0, max(screenW-b.Width, 0))
	y := core.Clamp(screenH-b.Height-b.MarginBottom, 0, max(screenH-b.Height, 0))
	return core.NewRect(x, y, b.Width, b.Height)
}
