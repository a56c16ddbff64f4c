package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/finsurf/internal/config"
	"github.com/vovakirdan/finsurf/internal/core"
	"github.com/vovakirdan/finsurf/internal/games/surf"
	"github.com/vovakirdan/finsurf/internal/storage"
)

// GameOptions configures a game view.
type GameOptions struct {
	// Context bounds every session started by the model. Defaults to
	// context.Background().
	Context context.Context

	Difficulty string
	Config     core.RuntimeConfig
	Surf       config.SurfConfig
	Store      *storage.Store // May be nil; the game runs without persistence
	Logger     *log.Logger

	// OnTick receives every snapshot, e.g. for the spectator feed.
	OnTick func(session string, s surf.State)

	// QuitOnBack exits the program instead of returning to a menu.
	QuitOnBack bool
}

// GameModel runs one Fin Surf session at a time and shows the end view
// when it is over. The controller ticks on its own goroutine; frames only
// redraw the latest snapshot.
type GameModel struct {
	opts      GameOptions
	logger    *log.Logger
	screen    *core.Screen
	keyMapper *KeyMapper

	ctrl     *surf.Controller
	ctx      context.Context
	cancel   context.CancelFunc
	nav      *sessionNavigator
	prevBest int

	ended      *SessionEndedMsg
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model with a fresh session. The session
// starts ticking when Init's commands run.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Config.ScreenW <= 0 || opts.Config.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Config.ScreenW, opts.Config.ScreenH = def.ScreenW, def.ScreenH
	}
	opts.Config.TickRate = opts.Config.ClampedTickRate()
	if opts.Surf.Validate() != nil {
		opts.Surf = config.DefaultSurfConfig()
	}

	m := GameModel{
		opts:      opts,
		logger:    opts.Logger,
		screen:    core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		keyMapper: NewKeyMapper(),
	}
	m.newSession(opts.Config.Seed)
	return m
}

// newSession replaces the controller. seed 0 means seed from the clock.
func (m *GameModel) newSession(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.NewString()
	profile := m.opts.Surf.Profile(m.opts.Difficulty)
	pf := m.opts.Surf.Playfield

	m.ctx, m.cancel = context.WithCancel(m.opts.Context)
	m.nav = newSessionNavigator(id)
	m.ended = nil
	m.prevBest = m.readBest(string(profile.Name))
	m.ctrl = surf.NewController(surf.ControllerConfig{
		Difficulty:   m.opts.Difficulty,
		Profile:      &profile,
		Settings:     surf.SettingsFromConfig(m.opts.Surf),
		Width:        pf.Width,
		Height:       pf.Height,
		TickInterval: time.Second / time.Duration(m.opts.Config.TickRate),
		Store:        highScoreStore(m.opts.Store),
		Navigator:    m.nav,
		Random:       surf.NewRandomSource(seed),
		Logger:       m.logger,
		OnTick:       m.opts.OnTick,
		SessionID:    id,
	})
}

// highScoreStore avoids wrapping a nil *storage.Store in a non-nil interface.
func highScoreStore(s *storage.Store) surf.HighScoreStore {
	if s == nil {
		return nil
	}
	return s
}

func (m GameModel) readBest(difficulty string) int {
	if m.opts.Store == nil {
		return 0
	}
	best, err := m.opts.Store.HighScore(difficulty)
	if err != nil {
		m.logger.Warn("could not read high score", "difficulty", difficulty, "error", err)
		return 0
	}
	return best
}

// start returns the commands that drive the current session.
func (m GameModel) start() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	run := func() tea.Msg {
		return runDoneMsg{Session: ctrl.SessionID(), Err: ctrl.Run(ctx)}
	}
	return tea.Batch(
		frameCmd(ctrl.SessionID(), m.opts.Config.TickRate),
		run,
		m.nav.wait(ctx),
	)
}

// stop cancels the running session. No tick fires afterwards.
func (m GameModel) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Init starts the session.
func (m GameModel) Init() tea.Cmd {
	return m.start()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		if msg.Session != m.ctrl.SessionID() || m.ended != nil || m.quitting || m.backToMenu {
			return m, nil
		}
		return m, frameCmd(msg.Session, m.opts.Config.TickRate)

	case SessionEndedMsg:
		if msg.Session == m.ctrl.SessionID() {
			m.ended = &msg
			m.logger.Info("session ended", "score", msg.FinalScore, "difficulty", msg.Difficulty)
		}
		return m, nil

	case runDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.logger.Error("tick loop stopped", "session", msg.Session, "error", msg.Err)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapGameKey(msg)
	switch action {
	case core.ActionQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.stop()
		if m.opts.QuitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if m.ended == nil {
		if action == core.ActionFlap {
			m.ctrl.Trigger()
		}
		return m, nil
	}

	// End view
	if action == core.ActionRestart || action == core.ActionConfirm {
		m.stop()
		m.newSession(0)
		return m, m.start()
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	surf.Render(m.ctrl.Snapshot(), m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("finsurf_%s_%s.txt", m.ctrl.Difficulty(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.ended != nil {
		return m.endView()
	}

	surf.Render(m.ctrl.Snapshot(), m.screen)
	return RenderScreen(m.screen)
}

var (
	endTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	endScoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	endBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	endHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	endBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

// endView shows the final score and the options to play again.
func (m GameModel) endView() string {
	final := m.ended.FinalScore
	best := max(m.prevBest, final)

	lines := []string{
		endTitleStyle.Render("G A M E   O V E R"),
		"",
		endScoreStyle.Render(fmt.Sprintf("Score: %d", final)),
	}
	if m.opts.Store != nil {
		lines = append(lines, endBestStyle.Render(
			fmt.Sprintf("Best (%s): %d", m.ended.Difficulty, best)))
		if final > m.prevBest {
			lines = append(lines, endBestStyle.Bold(true).Render("New high score!"))
		}
	}
	lines = append(lines, "", endHelpStyle.Render("R: Play again  |  B: Menu  |  Q: Quit"))

	box := endBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.opts.Config.ScreenW, m.opts.Config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}

// Ended reports the result of the last session, if it has ended.
func (m GameModel) Ended() *SessionEndedMsg {
	return m.ended
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single difficulty until the user quits.
func Run(opts GameOptions) error {
	opts.QuitOnBack = true
	model := NewGameModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	model.stop()
	if gm, ok := final.(GameModel); ok {
		gm.stop()
	}
	return err
}
