// Package plan provides the in-memory step list that backs the agent's
// plan tool and the TUI plan panel.
package plan

import "fmt"

// Status represents the lifecycle state of a plan step.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// ParseStatus validates a status string coming off the tool-call
// boundary. Unknown values are rejected, never defaulted.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusDone:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q (expected pending, in_progress or done)", s)
	}
}

// Glyph returns the fixed display marker for a status.
func (s Status) Glyph() string {
	switch s {
	case StatusInProgress:
		return "◐"
	case StatusDone:
		return "●"
	default:
		return "○"
	}
}

// Step is one entry in the plan.
type Step struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// StepInput is the caller-supplied part of a step; id and status are
// assigned by the store.
type StepInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
