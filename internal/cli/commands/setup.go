// Package commands implements the numkit subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"numkit/console"
	"numkit/internal/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *Renderer
}

// NewCommandContext collects the config and logger stored by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: NewRenderer(cmd.OutOrStdout(), cfg.Output),
	}
}

// NewConsole creates an uninitialized console whose lg and print write to out.
func (c *CommandContext) NewConsole(out io.Writer) *console.Console {
	opts := []console.Option{
		console.WithLogger(c.Logger),
		console.WithOutput(out),
	}
	if !c.Cfg.Clipboard {
		opts = append(opts, console.WithClipboard(nil))
	}
	return console.New(opts...)
}
