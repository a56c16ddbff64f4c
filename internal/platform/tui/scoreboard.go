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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/storage"
)

const boardRunLimit = 100

// boardMode selects which runs of a tier are listed.
type boardMode int

const (
	boardTop    boardMode = iota // Highest score first
	boardLatest                  // Most recent first
)

func (m boardMode) String() string {
	if m == boardLatest {
		return "latest runs"
	}
	return "top runs"
}

// ScoreboardKeyMap holds the scoreboard bindings. Scrolling is handled by
// the table; Scroll only documents it in the help line.
type ScoreboardKeyMap struct {
	Scroll   key.Binding
	NextTier key.Binding
	PrevTier key.Binding
	Mode     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.NextTier, k.Mode, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.NextTier, k.PrevTier},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		NextTier: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tier")),
		PrevTier: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev tier")),
		Mode:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "top/latest")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists finished runs per difficulty tier, with each tier's
// best score in a strip above the table.
type ScoreboardModel struct {
	tiers  []config.Difficulty
	tier   int
	mode   boardMode
	best   map[string]storage.HighScoreEntry
	runs   []storage.RunEntry
	stats  *storage.Stats
	store  *storage.Store
	logger *log.Logger

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on the given tier.
func NewScoreboardModel(store *storage.Store, start config.Difficulty, width, height int, logger *log.Logger) ScoreboardModel {
	m := ScoreboardModel{
		tiers:  config.Difficulties(),
		store:  store,
		logger: logger,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	for i, d := range m.tiers {
		if d == start {
			m.tier = i
		}
	}

	if store != nil {
		best, err := store.AllHighScores()
		if err != nil {
			m.warn("could not load high scores", err)
		}
		m.best = best
	}

	m.table = newRunTable(width, height)
	m.reload()
	return m
}

func newRunTable(width, height int) table.Model {
	dateWidth := 14
	if width > 60 {
		dateWidth = min(width-42, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Ticks", Width: 8},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-11, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) current() config.Difficulty {
	return m.tiers[m.tier]
}

// reload fetches runs and stats for the current tier and mode.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil

	if m.store != nil {
		d := string(m.current())
		var err error
		if m.mode == boardLatest {
			m.runs, err = m.latestRuns(d)
		} else {
			m.runs, err = m.store.TopRuns(d, boardRunLimit)
		}
		if err != nil {
			m.warn("could not load runs", err)
		}
		if m.stats, err = m.store.Stats(d); err != nil {
			m.warn("could not load stats", err)
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// latestRuns keeps the current tier's entries from the shared recent list.
func (m *ScoreboardModel) latestRuns(difficulty string) ([]storage.RunEntry, error) {
	recent, err := m.store.RecentRuns(boardRunLimit)
	if err != nil {
		return nil, err
	}
	runs := recent[:0]
	for _, r := range recent {
		if r.Difficulty == difficulty {
			runs = append(runs, r)
		}
	}
	return runs, nil
}

func (m *ScoreboardModel) warn(msg string, err error) {
	if m.logger != nil {
		m.logger.Warn(msg, "difficulty", m.current(), "error", err)
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextTier):
			m.tier = (m.tier + 1) % len(m.tiers)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevTier):
			m.tier = (m.tier + len(m.tiers) - 1) % len(m.tiers)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Mode):
			m.mode = 1 - m.mode
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newRunTable(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("24")).Padding(0, 1)
	boardTierStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardFrameStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
)

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := fmt.Sprintf("HIGH SCORES - %s", strings.ToUpper(string(m.current())))

	body := boardMutedStyle.Italic(true).Padding(1, 4).
		Render("No runs recorded yet.\nSurf a round to set a high score!")
	if len(m.runs) > 0 {
		body = m.table.View()
	}

	sections := []string{
		"",
		centerText(boardTitleStyle.Render(title), m.width),
		centerText(boardMutedStyle.Render(m.mode.String()), m.width),
		"",
		centerText(m.tierStrip(), m.width),
		"",
		centerText(m.summary(), m.width),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)),
		boardMutedStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(sections, "\n")
}

// tierStrip shows every tier with its best score, the current one highlighted.
func (m ScoreboardModel) tierStrip() string {
	parts := make([]string, len(m.tiers))
	for i, d := range m.tiers {
		best := "-"
		if e, ok := m.best[string(d)]; ok {
			best = strconv.Itoa(e.Score)
		}
		label := fmt.Sprintf("%s %s", d, best)
		if i == m.tier {
			parts[i] = boardActiveStyle.Render(label)
		} else {
			parts[i] = boardTierStyle.Render(label)
		}
	}
	return strings.Join(parts, boardMutedStyle.Render("│"))
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return boardMutedStyle.Render("No statistics available")
	}
	return fmt.Sprintf("Best: %d   Runs: %d   Avg: %.1f   Ticks surfed: %d",
		m.stats.HighScore, m.stats.RunsCount, m.stats.AvgScore, m.stats.TotalTicks)
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
