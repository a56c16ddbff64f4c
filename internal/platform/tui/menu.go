package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/core"
	"github.com/vovakirdan/finsurf/internal/storage"
)

// MenuItem is one selectable difficulty.
type MenuItem struct {
	Difficulty config.Difficulty
	Profile    config.DifficultyProfile
	Best       int
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	surf           config.SurfConfig
	logger         *log.Logger
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a difficulty
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model with the cursor on the default tier.
func NewMenuModel(store *storage.Store, surfCfg config.SurfConfig, cfg core.RuntimeConfig, logger *log.Logger) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		surf:      surfCfg,
		logger:    logger,
		keyMapper: NewKeyMapper(),
	}

	for i, d := range config.Difficulties() {
		if d == config.DefaultDifficulty {
			m.cursor = i
		}
		m.items = append(m.items, MenuItem{Difficulty: d, Profile: surfCfg.Profile(string(d))})
	}
	m.loadBest()

	return m
}

// loadBest refreshes the best score shown next to each tier.
func (m *MenuModel) loadBest() {
	if m.store == nil {
		return
	}
	all, err := m.store.AllHighScores()
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not load high scores", "error", err)
		}
		return
	}
	for i := range m.items {
		m.items[i].Best = all[string(m.items[i].Difficulty)].Score
	}
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapMenuKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case core.ActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("~  F I N   S U R F  ~"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Choose a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuActiveStyle
		}

		p := item.Profile
		line := fmt.Sprintf("%s%-7s gravity %.1f  impulse %.0f  speed x%.1f  best %d",
			cursor, strings.ToUpper(string(item.Difficulty)), p.Gravity, p.Impulse, p.SpeedMultiplier, item.Best)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHelpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
