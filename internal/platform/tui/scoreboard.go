package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

const (
	minWidthForPanel = 84  // below this the stats panel stacks above the table
	statsPanelWidth  = 26
	maxScores        = 100 // runs loaded per game
)

// filterAll shows runs of every difficulty.
const filterAll = "all"

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	NextGame   key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevFilter, k.NextFilter, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevFilter: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev difficulty")),
		NextFilter: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next difficulty")),
		NextGame:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next game")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded runs with aggregate stats, filtered by
// difficulty.
type ScoreboardModel struct {
	games   []registry.GameInfo
	game    int
	filters []string
	filter  int

	store   *storage.Store
	runs    []storage.ScoreEntry // every loaded run of the current game
	visible []storage.ScoreEntry // runs passing the filter
	stats   *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	filters := []string{filterAll}
	for _, p := range config.Presets {
		filters = append(filters, string(p))
	}

	m := ScoreboardModel{
		games:   registry.List(),
		filters: filters,
		store:   store,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Mode", Width: 7},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// load fetches runs and stats for the current game.
// Storage errors show as an empty board.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.game].ID
		if runs, err := m.store.TopScores(id, maxScores); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.applyFilter()
}

// applyFilter rebuilds the visible rows from the loaded runs.
func (m *ScoreboardModel) applyFilter() {
	want := m.filters[m.filter]

	m.visible = m.visible[:0]
	for _, r := range m.runs {
		if want == filterAll || r.Difficulty == want {
			m.visible = append(m.visible, r)
		}
	}

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		mode := r.Difficulty
		if mode == "" {
			mode = "-"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Level),
			mode,
			fmt.Sprint(r.Seed),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(m.filters)
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(m.filters) - 1) % len(m.filters)
			m.applyFilter()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 1 {
				m.game = (m.game + 1) % len(m.games)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.game].Title)
	}

	var body string
	if m.width >= minWidthForPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.statsPanel(), "  ", m.runsPanel())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.filterBar(), m.runsPanel())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsPanel() string {
	line := func(label string, value any) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + valueStyle.Render(fmt.Sprint(value))
	}

	lines := []string{m.filterBar(), ""}
	if m.stats == nil || m.stats.GamesCount == 0 {
		lines = append(lines, labelStyle.Render("no runs yet"))
	} else {
		lines = append(lines,
			line("Runs", m.stats.GamesCount),
			line("Best", m.stats.HighScore),
			line("Average", fmt.Sprintf("%.0f", m.stats.AvgScore)),
			line("Total", m.stats.TotalScore),
			line("Level", m.stats.BestLevel),
			line("Last", m.stats.LastPlayed.Local().Format("Jan 02 15:04")),
		)
	}
	return panelStyle.Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// filterBar shows the difficulty filters with the active one highlighted.
func (m ScoreboardModel) filterBar() string {
	parts := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			parts[i] = menuPickStyle.Render(f)
		} else {
			parts[i] = labelStyle.Render(f)
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) runsPanel() string {
	if len(m.visible) == 0 {
		msg := "No runs recorded yet.\nClear a maze to set a high score!"
		if m.filters[m.filter] != filterAll && len(m.runs) > 0 {
			msg = fmt.Sprintf("No %s runs yet.", m.filters[m.filter])
		}
		return panelStyle.Render(emptyStyle.Render(msg))
	}
	return panelStyle.Render(m.table.View())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
