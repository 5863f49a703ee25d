package commands

import (
	"github.com/spf13/cobra"

	"numkit/conv"
	"numkit/sliceutil"
)

var showColumns = []string{"input", "decimal", "hex", "binary", "char"}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <value>...",
		Short: "Show every representation of values",
		Long: `Show the decimal, hex, binary and character form of each argument.
A value without a character form gets an empty char column.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := sliceutil.TryMap(args, showRow)
			if err != nil {
				return err
			}
			return NewCommandContext(cmd).Renderer.Table(showColumns, rows)
		},
	}
}

func showRow(arg string) ([]string, error) {
	n, err := conv.Text(arg).Decimal()
	if err != nil {
		return nil, err
	}
	char, err := n.Char()
	if err != nil {
		char = ""
	}
	return []string{arg, n.String(), n.Hex(), n.Binary(), char}, nil
}
