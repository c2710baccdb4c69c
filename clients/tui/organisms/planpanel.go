// Package organisms provides the high-level blocks of the Stride TUI.
package organisms

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stride-sh/stride/clients/tui/components"
	"github.com/stride-sh/stride/internal/plan"
)

// StepView is the structured view model for one plan entry: what the
// rendering layer needs and nothing else.
type StepView struct {
	ID          string
	Label       string
	Description string
	Status      plan.Status
}

// ProjectSteps maps store steps onto the view model, preserving order.
// Pure: it never touches the store.
func ProjectSteps(steps []plan.Step) []StepView {
	views := make([]StepView, len(steps))
	for i, st := range steps {
		views[i] = StepView{
			ID:          st.ID,
			Label:       st.Title,
			Description: st.Description,
			Status:      st.Status,
		}
	}
	return views
}

// PanelStyles carries the status-dependent styles injected by the
// theme layer.
type PanelStyles struct {
	Pending    lipgloss.Style
	InProgress lipgloss.Style
	Done       lipgloss.Style
	Selected   lipgloss.Style
	Muted      lipgloss.Style
}

// PlanPanel renders the current plan, one glyph-prefixed line per
// step, with a cursor and an expandable detail view.
type PlanPanel struct {
	steps    []StepView
	cursor   int
	expanded bool
	width    int
	styles   PanelStyles

	cached string // rendered view cache
}

// NewPlanPanel creates an empty plan panel.
func NewPlanPanel(styles PanelStyles) *PlanPanel {
	return &PlanPanel{styles: styles}
}

// SetSteps replaces the view model. The cursor is clamped so it stays
// on a real step across refreshes.
func (p *PlanPanel) SetSteps(steps []StepView) {
	p.steps = steps
	if p.cursor >= len(steps) {
		p.cursor = len(steps) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.cached = ""
}

// SetWidth updates the rendering width.
func (p *PlanPanel) SetWidth(w int) {
	if w != p.width {
		p.width = w
		p.cached = ""
	}
}

// Steps returns the current view model.
func (p *PlanPanel) Steps() []StepView { return p.steps }

// CursorUp moves the selection up.
func (p *PlanPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
		p.cached = ""
	}
}

// CursorDown moves the selection down.
func (p *PlanPanel) CursorDown() {
	if p.cursor < len(p.steps)-1 {
		p.cursor++
		p.cached = ""
	}
}

// ToggleExpanded shows or hides the selected step's description.
func (p *PlanPanel) ToggleExpanded() {
	p.expanded = !p.expanded
	p.cached = ""
}

// Counts returns the number of steps per status.
func (p *PlanPanel) Counts() (pending, inProgress, done int) {
	for _, st := range p.steps {
		switch st.Status {
		case plan.StatusInProgress:
			inProgress++
		case plan.StatusDone:
			done++
		default:
			pending++
		}
	}
	return pending, inProgress, done
}

// Line renders one step as glyph + styled label.
func (p *PlanPanel) Line(st StepView, selected bool) string {
	var style lipgloss.Style
	switch st.Status {
	case plan.StatusInProgress:
		style = p.styles.InProgress
	case plan.StatusDone:
		style = p.styles.Done
	default:
		style = p.styles.Pending
	}

	line := st.Status.Glyph() + " " + style.Render(st.Label)
	if selected {
		return p.styles.Selected.Render("› ") + line
	}
	return "  " + line
}

// View renders the panel.
func (p *PlanPanel) View() string {
	if p.cached != "" {
		return p.cached
	}

	if len(p.steps) == 0 {
		p.cached = p.styles.Muted.Render("No plan yet")
		return p.cached
	}

	var sb strings.Builder
	for i, st := range p.steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Line(st, i == p.cursor))

		if p.expanded && i == p.cursor && st.Description != "" {
			detail := components.RenderMarkdown(st.Description, max(p.width-4, 20))
			for _, dl := range strings.Split(detail, "\n") {
				sb.WriteString("\n    " + dl)
			}
		}
	}

	p.cached = sb.String()
	return p.cached
}
