package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"numkit/console"
)

const continuationPrompt = "   ...> "

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive console",
		Long: `Start an interactive console with the numkit helpers installed.

Expressions print their value. Lines ending in ':' open a block that
runs after an empty line. Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	con := cc.NewConsole(cmd.OutOrStdout())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// helpers are installed once the terminal is set up
	ready := make(chan struct{})
	initErr := make(chan error, 1)
	go func() {
		initErr <- con.InitWhenReady(ctx, ready)
	}()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cc.Cfg.Prompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newHelperCompleter(con.Registry()),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	close(ready)
	if err := <-initErr; err != nil {
		return err
	}
	cc.Logger.Debug("repl started", "history", cc.Cfg.HistoryFile)

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "numkit console")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")

	r := &repl{
		rl:     rl,
		con:    con,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		prompt: cc.Cfg.Prompt,
	}
	return r.run()
}

// lineReader is the part of *readline.Instance the loop needs.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type repl struct {
	rl     lineReader
	con    *console.Console
	out    io.Writer
	errOut io.Writer
	prompt string
}

func (r *repl) run() error {
	var block strings.Builder
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			block.Reset()
			r.rl.SetPrompt(r.prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			if block.Len() > 0 {
				r.eval(block.String())
			}
			return nil
		}
		if err != nil {
			return err
		}

		if block.Len() > 0 {
			if strings.TrimSpace(line) != "" {
				block.WriteString(line + "\n")
				continue
			}
			r.eval(block.String())
			block.Reset()
			r.rl.SetPrompt(r.prompt)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "."):
			if quit := r.dotCommand(trimmed); quit {
				return nil
			}
		case strings.HasSuffix(trimmed, ":"):
			block.WriteString(trimmed + "\n")
			r.rl.SetPrompt(continuationPrompt)
		default:
			r.eval(trimmed)
		}
	}
}

func (r *repl) eval(src string) {
	v, err := r.con.Eval(src)
	if err != nil {
		_, _ = fmt.Fprintf(r.errOut, "Error: %v\n", err)
		return
	}
	if v != starlark.None {
		_, _ = fmt.Fprintln(r.out, v.String())
	}
}

// dotCommand runs a console command and reports whether the loop should stop.
func (r *repl) dotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])
	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(r.out)
	case ".names":
		_, _ = fmt.Fprintln(r.out, strings.Join(r.con.Registry().Names(), " "))
	default:
		_, _ = fmt.Fprintf(r.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .names          List the console helpers
  .quit / .exit   Exit the console

Helpers:
  dec(x) hex(x) bin(x) char(x)   convert an int or numeric text
  chunks(s, n)                   split text into n-character pieces
  sum(xs)                        add ints and numeric text
  powm(b, e, m)                  modular exponentiation
  xrange(...) rangelist(...)     lazy and eager integer ranges
  zipall(*xs)                    combine iterables element by element
  cp(x)                          copy x to the clipboard and return it
  lg(*xs)                        print values separated by spaces
  nl                             a newline
`
	_, _ = fmt.Fprintln(w, help)
}

// newHelperCompleter completes dot-commands and installed helper names.
func newHelperCompleter(reg *console.Registry) *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".names"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItemDynamic(func(string) []string {
			return reg.Names()
		}),
	)
}
