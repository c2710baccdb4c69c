package tui

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cloudwego/eino/components/tool"

	"github.com/stride-sh/stride/clients/tui/organisms"
	"github.com/stride-sh/stride/internal/plugins"
)

// DefaultPollInterval is the plan panel refresh cadence.
const DefaultPollInterval = 10 * time.Second

// Poller drives the plan refresh loop: an initial poll on mount, then
// one per tick until the program exits.
type Poller struct {
	tool     tool.InvokableTool
	interval time.Duration
}

// NewPoller creates a poller for the given plan tool. A non-positive
// interval falls back to DefaultPollInterval.
func NewPoller(t tool.InvokableTool, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{tool: t, interval: interval}
}

// TickCmd schedules the next poll tick.
func (p *Poller) TickCmd() tea.Cmd {
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return planTickMsg{}
	})
}

// PollCmd invokes the plan tool's get_steps action and projects the
// result. Any failure becomes a PlanPollFailedMsg; the caller decides
// how loudly to surface it.
func (p *Poller) PollCmd() tea.Cmd {
	t := p.tool
	return func() tea.Msg {
		out, err := t.InvokableRun(context.Background(), `{"action":"get_steps"}`)
		if err != nil {
			return PlanPollFailedMsg{Err: err}
		}

		var resp plugins.PlanResponse
		if err := json.Unmarshal([]byte(out), &resp); err != nil {
			return PlanPollFailedMsg{Err: err}
		}
		if !resp.Success {
			return PlanPollFailedMsg{Err: errors.New(resp.Error)}
		}
		return PlanLoadedMsg{Steps: organisms.ProjectSteps(resp.Steps)}
	}
}
