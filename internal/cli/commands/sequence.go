package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"numkit/conv"
	"numkit/seqs"
	"numkit/sliceutil"
)

// NewChunksCommand creates the chunks command.
func NewChunksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chunks <text> <size>",
		Short: "Split text into pieces of a fixed size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseInt(args[1])
			if err != nil {
				return err
			}
			chunks, err := conv.Text(args[0]).Chunks(size)
			if err != nil {
				return err
			}
			return NewCommandContext(cmd).Renderer.List("chunk", chunks)
		},
	}
}

// NewSumCommand creates the sum command.
func NewSumCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <value>...",
		Short: "Add values given in any supported notation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := conv.SumOf(texts(args)...)
			if err != nil {
				return err
			}
			return NewCommandContext(cmd).Renderer.List("sum", []string{total.String()})
		},
	}
}

// NewPowModCommand creates the powm command.
func NewPowModCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "powm <base> <exponent> <modulus>",
		Short: "Compute base^exponent mod modulus",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := conv.PowMod(conv.Text(args[0]), conv.Text(args[1]), conv.Text(args[2]))
			if err != nil {
				return err
			}
			return NewCommandContext(cmd).Renderer.List("powm", []string{n.String()})
		},
	}
}

// NewRangeCommand creates the range command.
func NewRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "range <end> | range <start> <end> [step]",
		Short: "List an arithmetic progression",
		Long: `List the integers from start (default 0) up to but excluding end,
advancing by step (default 1). Use -- before negative bounds:

  numkit range -- 5 0 -1`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := sliceutil.TryMap(args, parseInt)
			if err != nil {
				return err
			}
			ints, err := seqs.Collect(bounds...)
			if err != nil {
				return err
			}
			return NewCommandContext(cmd).Renderer.List("value", sliceutil.Map(ints, strconv.Itoa))
		},
	}
}

// NewZipCommand creates the zip command.
func NewZipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zip <list>...",
		Short: "Combine comma-separated lists element by element",
		Long: `Combine lists position by position. Each argument is one list with
comma-separated items; the result is as long as the shortest list.

  numkit zip 1,2,3 a,b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := sliceutil.Map(args, func(arg string) []string {
				return strings.Split(arg, ",")
			})
			cols := make([]string, len(args))
			for i := range cols {
				cols[i] = "list" + strconv.Itoa(i+1)
			}
			return NewCommandContext(cmd).Renderer.Table(cols, sliceutil.Zip(lists...))
		},
	}
}

func parseInt(s string) (int, error) {
	n, err := conv.ParseDecimal(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", conv.ErrInvalidArgument, s)
	}
	v, ok := n.Int64()
	if !ok || int64(int(v)) != v {
		return 0, fmt.Errorf("%w: %s is out of range", conv.ErrInvalidArgument, n)
	}
	return int(v), nil
}

func texts(args []string) []conv.Convertible {
	return sliceutil.Map(args, func(arg string) conv.Convertible {
		return conv.Text(arg)
	})
}
