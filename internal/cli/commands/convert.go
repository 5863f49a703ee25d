package commands

import (
	"github.com/spf13/cobra"

	"numkit/conv"
	"numkit/sliceutil"
)

type conversion struct {
	use, short, long string
	convert          func(conv.Text) (string, error)
}

var conversions = []conversion{
	{
		use:   "dec <value>...",
		short: "Convert values to decimal",
		long: `Print the decimal value of each argument.

A value is read with the first rule that matches: a single non-digit
character is its code point, a run of 0/1 whose length is a multiple of 8
is binary, then decimal, then hex with an optional 0x prefix.`,
		convert: func(t conv.Text) (string, error) {
			n, err := t.Decimal()
			if err != nil {
				return "", err
			}
			return n.String(), nil
		},
	},
	{
		use:     "hex <value>...",
		short:   "Convert values to hexadecimal",
		long:    `Print the lowercase hex digits of each argument, padded to whole bytes.`,
		convert: conv.Text.Hex,
	},
	{
		use:     "bin <value>...",
		short:   "Convert values to binary",
		long:    `Print the binary digits of each argument, padded to whole octets.`,
		convert: conv.Text.Binary,
	},
	{
		use:     "char <value>...",
		short:   "Convert values to characters",
		long:    `Print the character whose code point is each argument.`,
		convert: conv.Text.Char,
	},
}

// NewConversionCommands creates the dec, hex, bin and char commands.
func NewConversionCommands() []*cobra.Command {
	return sliceutil.Map(conversions, newConversionCommand)
}

func newConversionCommand(c conversion) *cobra.Command {
	return &cobra.Command{
		Use:   c.use,
		Short: c.short,
		Long:  c.long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			results, err := sliceutil.TryMap(args, func(arg string) (string, error) {
				return c.convert(conv.Text(arg))
			})
			if err != nil {
				return err
			}
			cc.Logger.Debug("converted values", "command", cmd.Name(), "count", len(results))
			return cc.Renderer.List(cmd.Name(), results)
		},
	}
}
