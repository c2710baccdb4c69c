package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/stride-sh/stride/clients/tui"
	"github.com/stride-sh/stride/internal/config"
	"github.com/stride-sh/stride/internal/plan"
	"github.com/stride-sh/stride/internal/plugins"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive plan panel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "session",
				Aliases: []string{"s"},
				Usage:   "Session ID (empty = new session)",
			},
		},
		Action: runTUI,
	}
}

func runTUI(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		// Keep slog off the terminal while bubbletea owns it.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry, err := setupToolRegistry(cfg)
	if err != nil {
		return fmt.Errorf("setup tools: %w", err)
	}

	sessionID := cmd.String("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	planTool := registry.Tool("plan")
	if planTool == nil {
		return fmt.Errorf("plan tool not registered")
	}

	poller := tui.NewPoller(planTool, cfg.TUI.PollInterval.Duration())
	app := tui.NewApp(planTool, sessionID, poller)

	opts := []tea.ProgramOption{}
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// setupToolRegistry creates the plan store, registers the native plan
// tool, and loads any external tool manifests for discovery.
func setupToolRegistry(cfg *config.Config) (*plugins.ToolRegistry, error) {
	registry := plugins.NewToolRegistry()

	store := plan.NewStore()
	if err := registry.RegisterNative("plan", plugins.NewPlanTool(store), plugins.PlanManifest()); err != nil {
		return nil, err
	}

	manifests, err := plugins.LoadManifestsDir(cfg.Plugins.Dir)
	if err != nil {
		return nil, err
	}
	if len(manifests) > 0 {
		slog.Info("external manifests discovered", "count", len(manifests))
	}

	return registry, nil
}
