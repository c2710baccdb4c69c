// Package tui provides the terminal plan panel for a Stride session.
package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors (light/dark terminal detection).
var (
	ColorPending    = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
	ColorInProgress = lipgloss.AdaptiveColor{Light: "#0070F3", Dark: "#79C0FF"}
	ColorDone       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorError      = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF6B6B"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorStatusBg   = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"}
	ColorStatusFg   = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
)

// Component styles.
var (
	PendingStyle = lipgloss.NewStyle().
			Foreground(ColorPending)

	InProgressStyle = lipgloss.NewStyle().
			Foreground(ColorInProgress).
			Bold(true)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Strikethrough(true)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorStatusBg).
			Foreground(ColorStatusFg).
			Padding(0, 1)

	PanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)
)
