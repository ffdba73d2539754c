package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/idle-space/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForChart = 90  // Minimum width to show the chart beside the table
	chartBars        = 10  // Longest flights drawn in the chart
	maxRuns          = 100 // Max flights to load
)

// RunSource lists recorded flights.
type RunSource interface {
	TopRuns(player string, limit int) ([]storage.Run, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "mine/all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the flight log screen.
type ScoreboardModel struct {
	source    RunSource
	player    string
	showAll   bool // All pilots instead of the current player
	runs      []storage.Run
	loadErr   error
	table     table.Model
	chart     barchart.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	showChart bool
}

// NewScoreboardModel creates a new scoreboard model for player.
func NewScoreboardModel(source RunSource, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:    source,
		player:    player,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showChart: width >= minWidthForChart,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Pilot", Width: 12},
		{Title: "Distance", Width: 10},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter returns the player name passed to the run source.
func (m ScoreboardModel) filter() string {
	if m.showAll {
		return ""
	}
	return m.player
}

// loadRuns reloads flights for the current filter.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.source != nil {
		m.runs, m.loadErr = m.source.TopRuns(m.filter(), maxRuns)
	}
	m.updateTableRows()
	m.buildChart()
}

// updateTableRows updates the table with current flights.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			humanize.Comma(r.Distance),
			humanize.Time(r.CreatedAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// buildChart draws the longest flights as bars.
func (m *ScoreboardModel) buildChart() {
	chartWidth := max(m.width-60, 20)
	chartHeight := max(m.height-10, 6)
	m.chart = barchart.New(chartWidth, chartHeight)

	n := min(len(m.runs), chartBars)
	if n == 0 {
		return
	}

	bars := make([]barchart.BarData, 0, n)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	for i, r := range m.runs[:n] {
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("#%d", i+1),
			Values: []barchart.BarValue{{
				Name:  r.Player,
				Value: float64(r.Distance),
				Style: style,
			}},
		})
	}
	m.chart.PushAll(bars)
	m.chart.Draw()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.showAll = !m.showAll
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showChart = m.width >= minWidthForChart
		m.table = m.createTable()
		m.updateTableRows()
		m.buildChart()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("LONGEST FLIGHTS - %s", m.player)
	if m.showAll {
		title = "LONGEST FLIGHTS - all pilots"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := boxStyle.Render(m.renderTableContent())
	if m.showChart && len(m.runs) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", boxStyle.Render(m.chart.View())))
	} else {
		b.WriteString(centerText(tableBox, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load flights:\n%v", m.loadErr))
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No flights recorded yet.\nDodge the rocks to set a record!")
	}
	return m.table.View()
}

// Runs returns the flights currently shown.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// RunScoreboard runs the flight log screen.
func RunScoreboard(source RunSource, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RenderRunsChart draws the longest flights as a static bar chart, for
// non-interactive output.
func RenderRunsChart(runs []storage.Run, width, height int) string {
	m := ScoreboardModel{runs: runs, width: width + 60, height: height + 10}
	m.buildChart()
	return m.chart.View()
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
