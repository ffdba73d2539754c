package sim

import (
	"math/rand"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/core"
)

// Loop owns the scene and advances it once per frame callback.
// It is not safe for concurrent use; the host drives it from one goroutine.
type Loop struct {
	cfg        config.SceneConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	stars      *starField

	screenW, screenH int
	scene            Scene
	status           Status
	button           core.Rect

	lastFrameMs int64
	started     bool // Whether lastFrameMs holds a real timestamp
	distance    float64
	flightMs    int64
}

// New creates a loop for the given scene parameters and screen size.
func New(cfg config.SceneConfig, diff config.DifficultyConfig, runtime core.RuntimeConfig) *Loop {
	l := &Loop{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(diff),
		rng:        rand.New(rand.NewSource(runtime.Seed)),
	}
	l.stars = newStarField(l.rng)
	l.Resize(runtime.ScreenW, runtime.ScreenH)
	l.Reset(runtime.Seed)
	return l
}

// Reset starts a new flight: craft centered, hazard at the top, stars
// rescattered. The next FrameStep only records its timestamp.
func (l *Loop) Reset(seed int64) {
	l.rng.Seed(seed)
	w := float64(l.screenW)

	l.scene = Scene{
		PlayerX: w / 2,
		HazardX: l.rng.Float64() * w,
		HazardY: 0,
	}
	l.status = Running
	l.started = false
	l.lastFrameMs = 0
	l.distance = 0
	l.flightMs = 0
	l.stars.regenerate(l.cfg.StarCount, w, float64(l.screenH))
}

// Resize adapts to a new viewport: the starfield is regenerated and the
// button bounds recomputed. Craft and hazard positions are kept as-is.
func (l *Loop) Resize(width, height int) {
	l.screenW = max(width, 0)
	l.screenH = max(height, 0)
	l.button = buttonRect(l.cfg.Button, l.screenW, l.screenH)
	l.stars.regenerate(l.cfg.StarCount, float64(l.screenW), float64(l.screenH))
}

// FrameStep advances the scene to nowMs and returns the resulting status.
// Frames arriving less than MinFrameMs after the last processed one are
// skipped without touching any state.
func (l *Loop) FrameStep(nowMs int64) Status {
	if l.status == GameOver {
		return l.status
	}

	if !l.started {
		l.started = true
		l.lastFrameMs = nowMs
		return l.status
	}

	deltaMs := nowMs - l.lastFrameMs
	if deltaMs < l.cfg.MinFrameMs || deltaMs <= 0 {
		return l.status
	}
	l.lastFrameMs = nowMs

	w, h := float64(l.screenW), float64(l.screenH)
	dt := float64(deltaMs)

	l.stars.advance(l.cfg.StarRate*dt, w, h)

	rate := l.difficulty.Rate(l.cfg.HazardRate, l.Distance(), l.flightMs)
	l.scene.HazardY += rate * dt
	if l.scene.HazardY > h {
		l.scene.HazardY = 0
		l.scene.HazardX = l.rng.Float64() * w
	}

	l.flightMs += deltaMs
	l.distance += rate * dt

	if l.playerBox().Overlaps(l.hazardBox()) {
		l.scene.Over = true
		l.status = GameOver
	}
	return l.status
}

// Move shifts the craft one step, clamped to the scene. Ignored after a
// collision.
func (l *Loop) Move(dir Direction) {
	if l.status == GameOver {
		return
	}
	x := l.scene.PlayerX + float64(dir)*l.cfg.PlayerStep
	l.scene.PlayerX = core.ClampF(x, 0, float64(l.screenW))
}

// HitButton reports whether the cell (x, y) lies on the primary-action
// button.
func (l *Loop) HitButton(x, y int) bool {
	return l.button.Contains(x, y)
}

// Button returns the current button bounds.
func (l *Loop) Button() core.Rect {
	return l.button
}

// Scene returns a copy of the current scene state.
func (l *Loop) Scene() Scene {
	return l.scene
}

// Stars returns the current star positions. The slice must not be modified.
func (l *Loop) Stars() []Star {
	return l.stars.stars
}

// Status returns the current state machine position.
func (l *Loop) Status() Status {
	return l.status
}

// Distance returns how far the craft has flown in whole cells.
func (l *Loop) Distance() int64 {
	return int64(l.distance)
}

// FlightMs returns the simulated time since the flight started.
func (l *Loop) FlightMs() int64 {
	return l.flightMs
}

// playerBox returns the craft's collision box, centered vertically.
func (l *Loop) playerBox() core.Box {
	return core.BoxAround(l.scene.PlayerX, float64(l.screenH)/2, l.cfg.PlayerWidth, l.cfg.PlayerHeight)
}

// hazardBox returns the bounding box of the circular hazard.
func (l *Loop) hazardBox() core.Box {
	return core.CircleBounds(l.scene.HazardX, l.scene.HazardY, l.cfg.HazardRadius)
}
