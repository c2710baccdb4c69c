package organisms

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar displays session id, step counts and poll health.
type StatusBar struct {
	sessionID    string
	pending      int
	inProgress   int
	done         int
	pollFailures int
	width        int
	style        lipgloss.Style
}

// NewStatusBar creates a status bar with the given style.
func NewStatusBar(style lipgloss.Style) StatusBar {
	return StatusBar{style: style}
}

// SetSession updates the session ID.
func (s *StatusBar) SetSession(id string) { s.sessionID = id }

// SetCounts updates the per-status step counts.
func (s *StatusBar) SetCounts(pending, inProgress, done int) {
	s.pending = pending
	s.inProgress = inProgress
	s.done = done
}

// SetPollFailures updates the poll failure counter.
func (s *StatusBar) SetPollFailures(n int) { s.pollFailures = n }

// PollFailures returns the current poll failure counter.
func (s *StatusBar) PollFailures() int { return s.pollFailures }

// SetWidth updates the rendering width.
func (s *StatusBar) SetWidth(w int) { s.width = w }

// View renders the status bar.
func (s StatusBar) View() string {
	sid := s.sessionID
	if len(sid) > 8 {
		sid = sid[:8]
	}

	line := fmt.Sprintf("session %s | %d pending / %d in progress / %d done",
		sid, s.pending, s.inProgress, s.done)
	if s.pollFailures > 0 {
		line += fmt.Sprintf(" | %d poll failures", s.pollFailures)
	}

	if s.width > 0 {
		return s.style.Width(s.width).Render(line)
	}
	return s.style.Render(line)
}
