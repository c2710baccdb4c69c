package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/stride-sh/stride/internal/agent"
	"github.com/stride-sh/stride/internal/config"
)

// NewPromptCommand returns the prompt subcommand. It prints the fully
// composed system prompt so users can inspect what the agent sees.
func NewPromptCommand() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Print the composed system prompt",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print plain markdown without terminal rendering",
			},
			&cli.StringFlag{
				Name:    "session",
				Aliases: []string{"s"},
				Usage:   "Session ID to include in the prompt context",
			},
		},
		Action: runPrompt,
	}
}

func runPrompt(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry, err := setupToolRegistry(cfg)
	if err != nil {
		return fmt.Errorf("setup tools: %w", err)
	}

	base := resolveBasePrompt(cfg)
	prompt := agent.ComposeSystemPrompt(base, agent.PromptContext{
		ToolNames:        registry.ToolNames(),
		ToolDescriptions: registry.AllToolDescriptions(),
		SessionID:        cmd.String("session"),
	})

	if cmd.Bool("raw") || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(prompt)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(prompt)
		return nil
	}
	out, err := renderer.Render(prompt)
	if err != nil {
		fmt.Println(prompt)
		return nil
	}
	fmt.Print(out)
	return nil
}

// resolveBasePrompt applies the config-level prompt override beneath
// the environment override: env file > config file > built-in.
func resolveBasePrompt(cfg *config.Config) string {
	if os.Getenv(agent.EnvSystemPrompt) == "" && cfg.Agent.SystemPromptPath != "" {
		if data, err := os.ReadFile(cfg.Agent.SystemPromptPath); err == nil {
			if prompt := strings.TrimSpace(string(data)); prompt != "" {
				return prompt
			}
		}
	}
	return agent.LoadSystemPrompt()
}
