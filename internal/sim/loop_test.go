package sim

import (
	"strings"
	"testing"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/core"
)

func testLoop(t *testing.T) *Loop {
	t.Helper()
	cfg := config.Default()
	runtime := core.DefaultConfig()
	runtime.Seed = 42
	return New(cfg.Scene, cfg.Difficulty, runtime)
}

func copyStars(l *Loop) []Star {
	return append([]Star(nil), l.Stars()...)
}

func sameStars(a, b []Star) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewLoop(t *testing.T) {
	l := testLoop(t)

	if l.Status() != Running {
		t.Errorf("Status() = %v, expected Running", l.Status())
	}
	sc := l.Scene()
	if sc.PlayerX != 40 {
		t.Errorf("PlayerX = %v, expected 40", sc.PlayerX)
	}
	if sc.HazardY != 0 {
		t.Errorf("HazardY = %v, expected 0", sc.HazardY)
	}
	if sc.HazardX < 0 || sc.HazardX >= 80 {
		t.Errorf("HazardX = %v, expected within [0, 80)", sc.HazardX)
	}
	if sc.Over {
		t.Error("New scene should not be over")
	}
	if len(l.Stars()) != 100 {
		t.Errorf("len(Stars()) = %d, expected 100", len(l.Stars()))
	}
	for _, s := range l.Stars() {
		if s.X < 0 || s.X >= 80 || s.Y < 0 || s.Y >= 24 {
			t.Fatalf("Star %+v outside the scene", s)
		}
	}
}

func TestFirstFrameOnlyStamps(t *testing.T) {
	l := testLoop(t)
	before := l.Scene()
	stars := copyStars(l)

	l.FrameStep(5000)

	if l.Scene() != before {
		t.Errorf("Scene after first frame = %+v, expected %+v", l.Scene(), before)
	}
	if !sameStars(stars, l.Stars()) {
		t.Error("First frame should not move stars")
	}
	if l.Distance() != 0 || l.FlightMs() != 0 {
		t.Errorf("Distance/FlightMs = %d/%d, expected 0/0", l.Distance(), l.FlightMs())
	}
}

func TestFrameThrottle(t *testing.T) {
	l := testLoop(t)
	l.FrameStep(1000)

	before := l.Scene()
	stars := copyStars(l)

	tests := []int64{1001, 1008, 1015}
	for _, now := range tests {
		l.FrameStep(now)
		if l.Scene() != before {
			t.Errorf("FrameStep(%d): scene changed inside the throttle window", now)
		}
		if !sameStars(stars, l.Stars()) {
			t.Errorf("FrameStep(%d): stars moved inside the throttle window", now)
		}
	}

	// Skipped frames do not move the reference point.
	l.FrameStep(1016)
	if l.Scene().HazardY <= before.HazardY {
		t.Errorf("HazardY = %v, expected it to fall past %v", l.Scene().HazardY, before.HazardY)
	}
	if l.FlightMs() != 16 {
		t.Errorf("FlightMs() = %d, expected 16", l.FlightMs())
	}
}

func TestFrameStepAdvances(t *testing.T) {
	l := testLoop(t)
	l.scene.HazardX = 5 // away from the craft
	stars := copyStars(l)

	l.FrameStep(0)
	l.FrameStep(100)

	sc := l.Scene()
	expectedY := l.cfg.HazardRate * 100
	if sc.HazardY != expectedY {
		t.Errorf("HazardY = %v, expected %v", sc.HazardY, expectedY)
	}
	moved := 0
	for i, s := range l.Stars() {
		if s.Y != stars[i].Y {
			moved++
		}
	}
	if moved == 0 {
		t.Error("Stars should fall between frames")
	}
	if l.FlightMs() != 100 {
		t.Errorf("FlightMs() = %d, expected 100", l.FlightMs())
	}
}

func TestHazardWrap(t *testing.T) {
	l := testLoop(t)
	l.scene.HazardX = 5
	l.scene.HazardY = 23.9

	l.FrameStep(0)
	l.FrameStep(100)

	sc := l.Scene()
	if sc.HazardY != 0 {
		t.Errorf("HazardY = %v, expected 0 after leaving the bottom", sc.HazardY)
	}
	if sc.HazardX < 0 || sc.HazardX >= 80 {
		t.Errorf("HazardX = %v, expected a new column within [0, 80)", sc.HazardX)
	}
	if l.Status() != Running {
		t.Errorf("Status() = %v, expected Running", l.Status())
	}
}

func TestCollisionFreezesScene(t *testing.T) {
	l := testLoop(t)
	l.scene.HazardX = l.scene.PlayerX
	l.scene.HazardY = 11

	l.FrameStep(0)
	if got := l.FrameStep(20); got != GameOver {
		t.Fatalf("FrameStep() = %v, expected GameOver", got)
	}
	if !l.Scene().Over {
		t.Error("Scene.Over should be set after a collision")
	}

	frozen := l.Scene()
	stars := copyStars(l)
	distance := l.Distance()

	for _, now := range []int64{40, 100, 10000} {
		if got := l.FrameStep(now); got != GameOver {
			t.Errorf("FrameStep(%d) = %v, expected GameOver", now, got)
		}
	}
	l.Move(Left)

	if l.Scene() != frozen {
		t.Errorf("Scene after game over = %+v, expected %+v", l.Scene(), frozen)
	}
	if !sameStars(stars, l.Stars()) {
		t.Error("Stars should not move after game over")
	}
	if l.Distance() != distance {
		t.Errorf("Distance() = %d, expected %d", l.Distance(), distance)
	}
}

func TestNearMissIsNotCollision(t *testing.T) {
	l := testLoop(t)
	// Craft spans x in [37.5, 42.5]; hazard box spans [HazardX-1.5, HazardX+1.5].
	l.scene.HazardX = 44
	l.scene.HazardY = 12

	l.FrameStep(0)
	if got := l.FrameStep(16); got != Running {
		t.Errorf("FrameStep() = %v, expected Running for edge contact", got)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		dir      Direction
		expected float64
	}{
		{"right", 40, Right, 42},
		{"left", 40, Left, 38},
		{"clamp right", 79, Right, 80},
		{"clamp left", 1, Left, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLoop(t)
			l.scene.PlayerX = tt.start
			l.Move(tt.dir)
			if l.Scene().PlayerX != tt.expected {
				t.Errorf("PlayerX = %v, expected %v", l.Scene().PlayerX, tt.expected)
			}
		})
	}
}

func TestHitButton(t *testing.T) {
	l := testLoop(t)

	// 8x3 button, 2 cells from the right and 1 from the bottom of 80x24.
	b := l.Button()
	if b != core.NewRect(70, 20, 8, 3) {
		t.Fatalf("Button() = %+v, expected {70 20 8 3}", b)
	}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{70, 20, true},
		{77, 22, true},
		{74, 21, true},
		{69, 20, false},
		{78, 20, false},
		{70, 23, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := l.HitButton(tt.x, tt.y); got != tt.expected {
			t.Errorf("HitButton(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestResize(t *testing.T) {
	l := testLoop(t)
	l.Move(Right)
	before := l.Scene()

	l.Resize(120, 40)

	if l.Scene() != before {
		t.Errorf("Resize should keep positions: got %+v, expected %+v", l.Scene(), before)
	}
	if b := l.Button(); b != core.NewRect(110, 36, 8, 3) {
		t.Errorf("Button() = %+v, expected {110 36 8 3}", b)
	}
	if !l.HitButton(110, 36) {
		t.Error("HitButton should follow the resized button")
	}
	if len(l.Stars()) != 100 {
		t.Errorf("len(Stars()) = %d, expected 100", len(l.Stars()))
	}
	spread := false
	for _, s := range l.Stars() {
		if s.X < 0 || s.X >= 120 || s.Y < 0 || s.Y >= 40 {
			t.Fatalf("Star %+v outside the resized scene", s)
		}
		if s.X >= 80 || s.Y >= 24 {
			spread = true
		}
	}
	if !spread {
		t.Error("Stars should be regenerated over the new area")
	}

	// Tiny screens keep the button on-screen.
	l.Resize(4, 2)
	if b := l.Button(); b.X != 0 || b.Y != 0 {
		t.Errorf("Button() = %+v, expected origin for a tiny screen", b)
	}
}

func TestReset(t *testing.T) {
	l := testLoop(t)
	l.scene.HazardX = l.scene.PlayerX
	l.scene.HazardY = 11
	l.FrameStep(0)
	l.FrameStep(20)
	if l.Status() != GameOver {
		t.Fatal("Setup: expected GameOver")
	}

	l.Reset(7)

	if l.Status() != Running {
		t.Errorf("Status() = %v, expected Running", l.Status())
	}
	sc := l.Scene()
	if sc.Over || sc.PlayerX != 40 || sc.HazardY != 0 {
		t.Errorf("Scene after Reset = %+v, expected a fresh flight", sc)
	}
	if l.Distance() != 0 || l.FlightMs() != 0 {
		t.Error("Reset should clear distance and flight time")
	}

	// First frame after Reset only stamps.
	l.FrameStep(90000)
	if l.Scene() != sc {
		t.Error("First frame after Reset should not advance the scene")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := testLoop(t)
	b := testLoop(t)

	for now := int64(0); now < 2000; now += 17 {
		a.FrameStep(now)
		b.FrameStep(now)
		if now%170 == 0 {
			a.Move(Left)
			b.Move(Left)
		}
	}

	if a.Scene() != b.Scene() {
		t.Errorf("Scenes diverged: %+v vs %+v", a.Scene(), b.Scene())
	}
	if !sameStars(a.Stars(), b.Stars()) {
		t.Error("Starfields diverged with the same seed")
	}
}

func TestDifficultySpeedsUpHazard(t *testing.T) {
	cfg := config.Default()
	config.ApplyPreset(&cfg, config.DifficultyHard)
	runtime := core.DefaultConfig()
	runtime.Seed = 42

	l := New(cfg.Scene, cfg.Difficulty, runtime)
	l.scene.HazardX = 5
	l.FrameStep(0)
	l.FrameStep(100)

	base := cfg.Scene.HazardRate * 100
	if l.Scene().HazardY <= base {
		t.Errorf("HazardY = %v, expected more than the base fall of %v", l.Scene().HazardY, base)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	l := testLoop(t)
	l.FrameStep(0)
	l.FrameStep(50)

	first := core.NewScreen(80, 24)
	second := core.NewScreen(80, 24)
	l.Render(first, 1234)
	l.Render(second, 1234)
	l.Render(second, 1234)

	if first.String() != second.String() {
		t.Error("Render should produce the same picture every call")
	}
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if first.GetCell(x, y) != second.GetCell(x, y) {
				t.Fatalf("Cell (%d, %d) differs between renders", x, y)
			}
		}
	}
}

func TestRenderHUD(t *testing.T) {
	l := testLoop(t)
	s := core.NewScreen(80, 24)
	l.Render(s, 1234567)

	rows := strings.Split(s.String(), "\n")
	if !strings.Contains(rows[0], "Score: 1,234,567") {
		t.Errorf("HUD row = %q, expected the formatted score", rows[0])
	}
	if !strings.Contains(rows[21], "+1") {
		t.Errorf("Button row = %q, expected the button label", rows[21])
	}
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("Running scene should not show GAME OVER")
	}

	l.scene.HazardX = l.scene.PlayerX
	l.scene.HazardY = 11
	l.FrameStep(0)
	l.FrameStep(20)
	l.Render(s, 0)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("Game over scene should show GAME OVER")
	}
}

func TestButtonRectStaysOnScreen(t *testing.T) {
	tests := []struct {
		name     string
		button   config.ButtonConfig
		w, h     int
		expected core.Rect
	}{
		{"default margins", config.ButtonConfig{Width: 8, Height: 3, MarginRight: 2, MarginBottom: 1}, 80, 24, core.NewRect(70, 20, 8, 3)},
		{"negative margins", config.ButtonConfig{Width: 8, Height: 3, MarginRight: -5, MarginBottom: -5}, 80, 24, core.NewRect(72, 21, 8, 3)},
		{"huge margins", config.ButtonConfig{Width: 8, Height: 3, MarginRight: 500, MarginBottom: 500}, 80, 24, core.NewRect(0, 0, 8, 3)},
		{"screen smaller than button", config.ButtonConfig{Width: 8, Height: 3, MarginRight: 2, MarginBottom: 1}, 5, 2, core.NewRect(0, 0, 8, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := buttonRect(tc.button, tc.w, tc.h); got != tc.expected {
				t.Errorf("buttonRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
