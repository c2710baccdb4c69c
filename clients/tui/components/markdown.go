// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown content to styled terminal output,
// word-wrapped to the given width. If rendering fails, the original
// content is returned unchanged.
func RenderMarkdown(content string, width int) string {
	if content == "" {
		return ""
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	// Trim trailing newlines that glamour adds
	return strings.TrimRight(rendered, "\n")
}
