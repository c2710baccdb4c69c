// Package config loads Stride configuration from JSONC files and the
// environment.
package config

import "time"

// Config is the root configuration for Stride.
type Config struct {
	Agent   AgentConfig   `json:"agent"`
	TUI     TUIConfig     `json:"tui"`
	Plugins PluginsConfig `json:"plugins"`
}

// AgentConfig holds agent settings.
type AgentConfig struct {
	SystemPromptPath string `json:"system_prompt_path,omitempty"` // file override, same effect as STRIDE_SYSTEM_PROMPT
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	PollInterval Duration `json:"poll_interval,omitempty"` // plan panel refresh cadence
	AltScreen    bool     `json:"alt_screen"`
}

// PluginsConfig configures the tool manifest directory.
type PluginsConfig struct {
	Dir string `json:"dir"` // manifest directory (default: $STRIDE_PATH/plugins)
}

// Duration wraps time.Duration for JSON unmarshaling.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}
