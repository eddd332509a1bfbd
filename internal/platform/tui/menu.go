package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/storage"
)

const banner = `        ▄███▄
        █▄███
 █     ▄████
 ██▄▄██████▀
  ▀██████▀
    █▀ █▄`

// difficulties is the cycle order of the menu's difficulty selector. The
// empty preset keeps whatever the config file says.
var difficulties = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyClassic,
	config.DifficultyHard,
}

func difficultyLabel(p config.DifficultyPreset) string {
	if p == "" {
		return "from config"
	}
	return string(p)
}

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	menuTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuSelected  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	menuItemStyle = lipgloss.NewStyle().Padding(0, 1)
)

// MenuItem is one runner mode with its record.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
	Runs   int
	Wins   int
}

// MenuModel picks a mode and a difficulty.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // index into difficulties
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu with the given difficulty preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		items:     loadMenuItems(store),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range difficulties {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// loadMenuItems lists registered modes with their stats. A missing or
// failing store just leaves the records at zero.
func loadMenuItems(store *storage.Store) []MenuItem {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if st, ok := stats[g.ID]; ok {
			items[i].Best = st.HighScore
			items[i].Runs = st.GamesCount
			items[i].Wins = st.Wins
		}
	}
	return items
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(difficulties)

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := []string{
		bannerStyle.Render(banner),
		"",
		menuTitle.Render("C H R O M E   D I N O S A U R"),
		menuDim.Render("jump the cacti, reach 1001"),
		"",
	}

	for i, item := range m.items {
		line := item.Title
		if item.Runs > 0 {
			line += fmt.Sprintf("   best %d  wins %d/%d", item.Best, item.Wins, item.Runs)
		}
		if i == m.cursor {
			rows = append(rows, menuSelected.Render("> "+line))
		} else {
			rows = append(rows, menuItemStyle.Render("  "+line))
		}
	}

	rows = append(rows,
		"",
		fmt.Sprintf("Difficulty: < %s >", difficultyLabel(m.Difficulty())),
		"",
		menuDim.Render("Up/Down: mode  |  Left/Right: difficulty  |  Enter: play  |  Tab: scores  |  Q: quit"),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the preset chosen with the selector.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Presetter is a game whose difficulty can be chosen per instance.
type Presetter interface {
	SetPreset(config.DifficultyPreset)
}

// ApplyDifficulty hands the menu's difficulty to games that support it.
func ApplyDifficulty(game registry.Game, p config.DifficultyPreset) {
	if ps, ok := game.(Presetter); ok && p != "" {
		ps.SetPreset(p)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, preset), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: preset, Quit: true}, nil
	}

	result := MenuResult{
		Config:          m.Config(),
		Difficulty:      m.Difficulty(),
		WantsScoreboard: m.WantsScoreboard(),
	}
	switch {
	case result.WantsScoreboard:
	case m.Selected() != nil && !m.IsQuitting():
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
