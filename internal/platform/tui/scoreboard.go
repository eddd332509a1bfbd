package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

const (
	scoresLoaded   = 100 // rows fetched per mode
	statsMinWidth  = 76  // narrower terminals drop the stats panel
	statsPanelSize = 24
)

// resultFilter narrows the table to one kind of run.
type resultFilter int

const (
	filterAll resultFilter = iota
	filterWins
	filterCrashes
	filterCount
)

func (f resultFilter) String() string {
	switch f {
	case filterWins:
		return "wins"
	case filterCrashes:
		return "crashes"
	default:
		return "all runs"
	}
}

func (f resultFilter) keep(e storage.ScoreEntry) bool {
	win := e.Outcome == core.OutcomeWin.String()
	switch f {
	case filterWins:
		return win
	case filterCrashes:
		return !win
	default:
		return true
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Mode   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Mode:   key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "mode")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabActive   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardModel shows the best runs of each mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	filter    resultFilter
	store     *storage.Store
	scores    []storage.ScoreEntry // unfiltered, best first
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) showStats() bool {
	return m.width >= statsMinWidth
}

func (m *ScoreboardModel) newTable() table.Model {
	dateW := 12
	if m.showStats() {
		dateW = core.Clamp(m.width-statsPanelSize-44, 12, 20)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: dateW},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// load fetches scores and stats for the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, scoresLoaded); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// refreshRows fills the table from the loaded scores and the filter. Ranks
// are positions in the unfiltered list.
func (m *ScoreboardModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		if !m.filter.keep(e) {
			continue
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(e.Score),
			resultLabel(e.Outcome),
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// resultLabel turns a stored outcome into the table's Result column.
func resultLabel(outcome string) string {
	if outcome == core.OutcomeWin.String() {
		return "WIN"
	}
	return "crash"
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
		case key.Matches(msg, m.keys.Mode):
			if n := len(m.modes); n > 0 {
				step := 1
				if s := msg.String(); s == "left" || s == "h" {
					step = n - 1
				}
				m.mode = (m.mode + step) % n
				m.load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % filterCount
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.refreshRows()
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

	var b strings.Builder
	b.WriteString(centerText(boardTitle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.renderTable())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panelStyle.Width(statsPanelSize).Render(m.renderStats()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			tabs[i] = tabActive.Render(g.Title)
		} else {
			tabs[i] = tabInactive.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width && len(m.modes) > 0 {
		line = fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.table.Rows()) == 0 {
		msg := "No runs recorded yet.\nPress Space in a game to start one!"
		if len(m.scores) > 0 {
			msg = "No " + m.filter.String() + " among the best runs."
		}
		return emptyStyle.Render(msg)
	}
	return "Showing " + m.filter.String() + "\n" + m.table.View()
}

func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return "No stats yet"
	}
	winRate := float64(st.Wins) / float64(st.GamesCount) * 100
	lines := []string{
		boardTitle.Render("Stats"),
		fmt.Sprintf("Runs     %d", st.GamesCount),
		fmt.Sprintf("Wins     %d (%.0f%%)", st.Wins, winRate),
		fmt.Sprintf("Best     %d", st.HighScore),
		fmt.Sprintf("Average  %.0f", st.AvgScore),
		fmt.Sprintf("Distance %d", st.TotalScore),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, "Last     "+st.LastPlayed.Format("Jan 02 15:04"))
	}
	return strings.Join(lines, "\n")
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
