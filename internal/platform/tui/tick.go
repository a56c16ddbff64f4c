// Package tui provides the Bubble Tea integration for Fin Surf.
// It handles the terminal UI loop, input mapping, and the views around a
// running session: difficulty menu, game view, end view and scoreboard.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the game view to redraw. Frames carry the session they
// belong to so stale loops from a previous session stop on their own.
type FrameMsg struct {
	Session string
	Time    time.Time
}

// frameCmd returns a Bubble Tea command that sends a frame at the specified rate.
func frameCmd(session string, frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Session: session, Time: t}
	})
}

// SessionEndedMsg is delivered once when the simulation reaches the
// terminal state.
type SessionEndedMsg struct {
	Session    string
	FinalScore int
	Difficulty string
}

// runDoneMsg reports that a controller's tick loop returned.
type runDoneMsg struct {
	Session string
	Err     error
}

// sessionNavigator forwards the controller's end-of-session call into the
// Bubble Tea event loop.
type sessionNavigator struct {
	session string
	ch      chan SessionEndedMsg
}

func newSessionNavigator(session string) *sessionNavigator {
	return &sessionNavigator{session: session, ch: make(chan SessionEndedMsg, 1)}
}

// SessionEnded implements surf.Navigator. It never blocks the tick loop.
func (n *sessionNavigator) SessionEnded(finalScore int, difficulty string) {
	select {
	case n.ch <- SessionEndedMsg{Session: n.session, FinalScore: finalScore, Difficulty: difficulty}:
	default:
	}
}

// wait returns a command that yields the end-of-session message, or nothing
// if ctx is cancelled first.
func (n *sessionNavigator) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-n.ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}
