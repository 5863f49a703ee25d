package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"numkit/console"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <code>",
		Short: "Evaluate console code",
		Long: `Evaluate a console expression or statements and print the result.
The console helpers are available: dec, hex, bin, char, chunks, sum, powm,
xrange, rangelist, zipall, cp, lg and nl.

  numkit eval 'hex(sum(["0x10", 5]))'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			con := cc.NewConsole(cmd.OutOrStdout())
			if err := con.Init(); err != nil {
				return err
			}

			v, err := con.Eval(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if v == starlark.None {
				return nil
			}
			return cc.Renderer.List("value", []string{console.Str(v)})
		},
	}
}
