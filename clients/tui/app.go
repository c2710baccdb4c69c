package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cloudwego/eino/components/tool"

	"github.com/stride-sh/stride/clients/tui/organisms"
)

// App is the plan panel application model.
// Architecture: TITLE | PLAN (scrollable) | STATUS BAR
type App struct {
	panel    *organisms.PlanPanel
	status   organisms.StatusBar
	viewport viewport.Model
	poller   *Poller

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewApp creates the plan panel application for one session.
func NewApp(planTool tool.InvokableTool, sessionID string, poller *Poller) *App {
	panel := organisms.NewPlanPanel(organisms.PanelStyles{
		Pending:    PendingStyle,
		InProgress: InProgressStyle,
		Done:       DoneStyle,
		Selected:   SelectedStyle,
		Muted:      MutedStyle,
	})
	status := organisms.NewStatusBar(StatusBarStyle)
	status.SetSession(sessionID)

	if poller == nil {
		poller = NewPoller(planTool, DefaultPollInterval)
	}

	return &App{
		panel:  panel,
		status: status,
		poller: poller,
	}
}

// Init starts the refresh loop: one poll on mount, then the timer.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.poller.PollCmd(), a.poller.TickCmd())
}

// Update handles messages and updates state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.panel.SetWidth(msg.Width)
		a.status.SetWidth(msg.Width)
		contentHeight := max(msg.Height-2, 1)
		if !a.ready {
			a.viewport = viewport.New(msg.Width, contentHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = contentHeight
		}
		a.syncViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			a.quitting = true
			return a, tea.Quit
		case "up", "k":
			a.panel.CursorUp()
			a.syncViewport()
		case "down", "j":
			a.panel.CursorDown()
			a.syncViewport()
		case "enter":
			a.panel.ToggleExpanded()
			a.syncViewport()
		case "r":
			return a, a.poller.PollCmd()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}

	case planTickMsg:
		return a, tea.Batch(a.poller.PollCmd(), a.poller.TickCmd())

	case PlanLoadedMsg:
		a.panel.SetSteps(msg.Steps)
		a.status.SetCounts(a.panel.Counts())
		a.syncViewport()

	case PlanPollFailedMsg:
		// Best-effort display: fall back to an empty plan, but keep
		// the failure observable.
		slog.Warn("plan poll failed", "error", msg.Err)
		a.status.SetPollFailures(a.status.PollFailures() + 1)
		a.panel.SetSteps(nil)
		a.status.SetCounts(0, 0, 0)
		a.syncViewport()
	}

	return a, nil
}

// View renders the application.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "loading..."
	}

	title := SelectedStyle.Render("Plan")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		a.viewport.View(),
		a.status.View(),
	)
}

func (a *App) syncViewport() {
	if a.ready {
		a.viewport.SetContent(a.panel.View())
	}
}
