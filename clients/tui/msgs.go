package tui

import "github.com/stride-sh/stride/clients/tui/organisms"

// planTickMsg triggers the next plan refresh.
type planTickMsg struct{}

// PlanLoadedMsg carries a freshly polled plan snapshot.
type PlanLoadedMsg struct {
	Steps []organisms.StepView
}

// PlanPollFailedMsg signals a failed plan poll. The panel falls back
// to an empty view; the failure is logged and counted.
type PlanPollFailedMsg struct {
	Err error
}
