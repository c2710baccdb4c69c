package agent

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Environment variables gating system prompt resolution. Pure
// configuration glue: the first replaces the built-in template with a
// file's contents, the second dumps the built-in template to a file
// for editing.
const (
	EnvSystemPrompt     = "STRIDE_SYSTEM_PROMPT"
	EnvSystemPromptDump = "STRIDE_SYSTEM_PROMPT_DUMP"
)

// LoadSystemPrompt resolves the base system prompt. When
// STRIDE_SYSTEM_PROMPT names a readable file its contents win;
// otherwise the built-in template is used. An unreadable override is
// logged and ignored rather than failing the session. When
// STRIDE_SYSTEM_PROMPT_DUMP is set, the built-in template is written
// there as a side effect.
func LoadSystemPrompt() string {
	if dumpPath := os.Getenv(EnvSystemPromptDump); dumpPath != "" {
		if err := os.WriteFile(dumpPath, []byte(SystemPromptTemplate), 0o644); err != nil {
			slog.Warn("failed to dump system prompt template", "path", dumpPath, "error", err)
		}
	}

	path := os.Getenv(EnvSystemPrompt)
	if path == "" {
		return SystemPromptTemplate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("system prompt override unreadable, using built-in", "path", path, "error", err)
		return SystemPromptTemplate
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		slog.Warn("system prompt override is empty, using built-in", "path", path)
		return SystemPromptTemplate
	}
	return prompt
}

// PromptContext holds dynamic context appended to the base prompt.
type PromptContext struct {
	ToolNames        []string          // active tool names
	ToolDescriptions map[string]string // tool name → description
	SessionID        string            // current session, if any
}

// ComposeSystemPrompt builds the final system prompt from the base
// prompt and the dynamic context layers.
func ComposeSystemPrompt(base string, pctx PromptContext) string {
	sections := []string{base}

	if len(pctx.ToolNames) > 0 {
		sorted := make([]string, len(pctx.ToolNames))
		copy(sorted, pctx.ToolNames)
		sort.Strings(sorted)

		var sb strings.Builder
		sb.WriteString("## Available Tools\n\n")
		sb.WriteString("You have access to the following tools:\n")
		for _, name := range sorted {
			if desc, ok := pctx.ToolDescriptions[name]; ok && desc != "" {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", name, desc))
			} else {
				sb.WriteString(fmt.Sprintf("- **%s**\n", name))
			}
		}
		sections = append(sections, strings.TrimRight(sb.String(), "\n"))
	}

	if pctx.SessionID != "" {
		sections = append(sections, fmt.Sprintf("## Session\n\nSession id: %s", pctx.SessionID))
	}

	return strings.Join(sections, "\n\n")
}
