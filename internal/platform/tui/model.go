package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/idle-space/internal/config"
	"github.com/vovakirdan/idle-space/internal/core"
	"github.com/vovakirdan/idle-space/internal/idle"
	"github.com/vovakirdan/idle-space/internal/sim"
	"github.com/vovakirdan/idle-space/internal/storage"
)

// RunRecorder stores finished flights.
type RunRecorder interface {
	SaveRun(player string, distance int64) (string, error)
}

// Options configures a game Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   storage.KV  // Idle key space; nil plays without persistence
	Runs    RunRecorder // Optional flight log
	Player  string      // Name recorded with each flight
	Clock   idle.Clock  // Defaults to the system clock
	Logger  *log.Logger // Defaults to a discarding logger

	// ScreenshotDir is where Ctrl+S writes the current frame.
	// Defaults to ~/.idlespace/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a game session. The idle session is
// restored when the model is built, so the welcome-back summary exists
// before any accrual timer is armed.
type Model struct {
	opts    Options
	session *idle.Session
	loop    *sim.Loop
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	titleScore int64 // Score shown in the window title
	runSaved   bool  // Whether the current flight has been recorded
	quitting   bool
}

// NewModel restores the idle session and builds the scene.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	scoreKey, lastUpdateKey := opts.Config.Idle.StorageKeys()
	var store idle.Store
	if opts.Store != nil {
		store = opts.Store
	}
	session := idle.Restore(idle.SessionConfig{
		Store:      store,
		Clock:      opts.Clock,
		Keys:       idle.Keys{Score: scoreKey, LastUpdate: lastUpdateKey},
		MsPerPoint: opts.Config.Idle.MsPerPoint,
		Logger:     opts.Logger,
	})

	w, h := playArea(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	runtime := opts.Runtime
	runtime.ScreenW, runtime.ScreenH = w, h

	hm := help.New()
	hm.Width = opts.Runtime.ScreenW

	return Model{
		opts:       opts,
		session:    session,
		loop:       sim.New(opts.Config.Scene, opts.Config.Difficulty, runtime),
		screen:     core.NewScreen(w, h),
		keys:       DefaultKeyMap(),
		help:       hm,
		logger:     opts.Logger,
		titleScore: -1,
	}
}

// playArea reserves the bottom row for the help footer.
func playArea(width, height int) (int, int) {
	if height > 1 {
		height--
	}
	return width, height
}

// Init starts the frame and accrual timers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.opts.Runtime.TickRate),
		accrualCmd(m.opts.Config.Idle.TickIntervalMs),
		windowTitle(m.session.Score()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		w, h := playArea(msg.Width, msg.Height)
		m.screen.Resize(w, h)
		m.loop.Resize(w, h)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case AccrualMsg:
		m.session.Tick()
		title := m.syncTitle()
		return m, tea.Batch(accrualCmd(m.opts.Config.Idle.TickIntervalMs), title)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// The summary blocks play until it is collected.
	if m.summaryOpen() {
		if action == core.ActionConfirm || action == core.ActionPrimary {
			m.session.Acknowledge()
			cmd := m.syncTitle()
			return m, cmd
		}
		return m, nil
	}

	switch action {
	case core.ActionLeft:
		m.loop.Move(sim.Left)
	case core.ActionRight:
		m.loop.Move(sim.Right)
	case core.ActionPrimary:
		m.session.Increment()
		cmd := m.syncTitle()
		return m, cmd
	case core.ActionRestart:
		if m.loop.Status() == sim.GameOver {
			m.loop.Reset(time.Now().UnixNano())
			m.runSaved = false
			return m, frameCmd(m.opts.Runtime.TickRate)
		}
	}

	return m, nil
}

// handleMouse turns a left click into a collect or a button press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !isPrimaryClick(msg) {
		return m, nil
	}

	switch {
	case m.summaryOpen():
		m.session.Acknowledge()
	case m.loop.HitButton(msg.X, msg.Y):
		m.session.Increment()
	default:
		return m, nil
	}
	cmd := m.syncTitle()
	return m, cmd
}

// handleFrame advances the scene. The scene waits behind the welcome-back
// summary, so the first frame after it closes only records its timestamp.
// Frames stop at game over and resume on restart.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	next := frameCmd(m.opts.Runtime.TickRate)
	if m.summaryOpen() {
		return m, next
	}

	if m.loop.FrameStep(now.UnixMilli()) == sim.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.runSaved = true
		}
		return m, nil
	}
	return m, next
}

func (m Model) recordRun() {
	distance := m.loop.Distance()
	if m.opts.Runs == nil || distance <= 0 {
		return
	}
	runID, err := m.opts.Runs.SaveRun(m.opts.Player, distance)
	if err != nil {
		m.logger.Warn("could not save flight", "player", m.opts.Player, "error", err)
		return
	}
	m.logger.Info("flight recorded", "player", m.opts.Player, "distance", distance, "run_id", runID)
}

func (m Model) summaryOpen() bool {
	_, open := m.session.Summary()
	return open
}

// syncTitle returns a window title command when the score changed since the
// last title update.
func (m *Model) syncTitle() tea.Cmd {
	score := m.session.Score()
	if score == m.titleScore {
		return nil
	}
	m.titleScore = score
	return windowTitle(score)
}

func windowTitle(score int64) tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("Idle Space · %s", humanize.Comma(score)))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("idlespace_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the scene and, while it is open, the welcome-back summary.
func (m Model) draw() {
	m.loop.Render(m.screen, m.session.Score())
	if sum, open := m.session.Summary(); open {
		drawWelcome(m.screen, sum)
	}
}

// Session returns the idle session driven by this model.
func (m Model) Session() *idle.Session {
	return m.session
}

// Loop returns the simulation driven by this model.
func (m Model) Loop() *sim.Loop {
	return m.loop
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the +1 button
	)

	_, err := p.Run()
	return err
}
