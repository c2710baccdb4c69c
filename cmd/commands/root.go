package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/stride-sh/stride/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "stride",
		Usage: "Plan-driven coding agent companion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewTUICommand(),
			NewPromptCommand(),
			NewToolsCommand(),
		},
	}
}
