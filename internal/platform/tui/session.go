package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/core"
	"github.com/vovakirdan/finsurf/internal/games/surf"
	"github.com/vovakirdan/finsurf/internal/storage"
)

// SessionOptions configures a full menu -> game -> menu session.
type SessionOptions struct {
	Context context.Context
	Config  core.RuntimeConfig
	Surf    config.SurfConfig
	Store   *storage.Store
	Logger  *log.Logger
	OnTick  func(session string, s surf.State)
	User    string
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full session flow: menu, game, scoreboard.
// This is the top-level model for `finsurf menu` and SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	view       sessionView
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	lastTier   config.Difficulty
	quitting   bool
}

// NewSessionModel creates a new session model showing the menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.User != "" {
		opts.Logger = opts.Logger.With("user", opts.User)
	}
	if opts.Surf.Validate() != nil {
		opts.Surf = config.DefaultSurfConfig()
	}

	return SessionModel{
		opts:     opts,
		menu:     NewMenuModel(opts.Store, opts.Surf, opts.Config, opts.Logger),
		lastTier: config.DefaultDifficulty,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Config.ScreenW = wsm.Width
		m.opts.Config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.opts.Store, m.lastTier, m.opts.Config.ScreenW, m.opts.Config.ScreenH, m.opts.Logger)
		m.scoreboard = &board
		m.view = viewScoreboard
		return m, board.Init()

	case m.menu.Selected() != nil:
		m.lastTier = m.menu.Selected().Difficulty
		game := NewGameModel(GameOptions{
			Context:    m.opts.Context,
			Difficulty: string(m.lastTier),
			Config:     m.opts.Config,
			Surf:       m.opts.Surf,
			Store:      m.opts.Store,
			Logger:     m.opts.Logger,
			OnTick:     m.opts.OnTick,
		})
		m.game = &game
		m.view = viewGame
		return m, game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.showMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		return m.showMenu()
	}

	return m, cmd
}

// showMenu returns to a fresh menu with updated best scores.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.opts.Surf, m.opts.Config, m.opts.Logger)
	for i, item := range m.menu.items {
		if item.Difficulty == m.lastTier {
			m.menu.cursor = i
		}
	}
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the interactive menu until the user quits.
func RunSession(opts SessionOptions) error {
	ctx, cancel := context.WithCancel(contextOrBackground(opts.Context))
	defer cancel()
	opts.Context = ctx

	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
