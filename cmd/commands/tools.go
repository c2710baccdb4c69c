package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/stride-sh/stride/internal/config"
)

// NewToolsCommand returns the tools subcommand.
func NewToolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List registered tools",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			registry, err := setupToolRegistry(cfg)
			if err != nil {
				return fmt.Errorf("setup tools: %w", err)
			}

			names := registry.ToolNames()
			sort.Strings(names)
			descs := registry.AllToolDescriptions()
			for _, name := range names {
				marker := " "
				if spec := registry.ToolSpec(name); spec != nil && spec.Dangerous {
					marker = "!"
				}
				fmt.Printf("%s %-12s %s\n", marker, name, descs[name])
			}
			return nil
		},
	}
}
