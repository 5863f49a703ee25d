package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrNotInitialized is returned by Eval before the helpers are installed.
var ErrNotInitialized = errors.New("console not initialized")

const sourceName = "<console>"

// Console evaluates Starlark snippets against the installed helpers.
// Top-level bindings made by statements persist across Eval calls.
type Console struct {
	reg       *Registry
	logger    *slog.Logger
	out       io.Writer
	clipboard Clipboard
	opts      *syntax.FileOptions

	once    sync.Once
	initErr error
	ready   chan struct{}

	mu      sync.Mutex
	session starlark.StringDict
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// WithOutput sets where lg and print write. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithClipboard sets the clipboard used by cp. A nil clipboard turns cp into the identity.
func WithClipboard(cb Clipboard) Option {
	return func(c *Console) {
		c.clipboard = cb
	}
}

// WithRegistry installs the helpers into reg instead of a fresh registry.
func WithRegistry(reg *Registry) Option {
	return func(c *Console) {
		c.reg = reg
	}
}

// New creates a console. Helpers are not installed until Init.
func New(opts ...Option) *Console {
	c := &Console{
		logger:    slog.Default(),
		out:       os.Stdout,
		clipboard: SystemClipboard(),
		opts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		ready:   make(chan struct{}),
		session: make(starlark.StringDict),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reg == nil {
		c.reg = NewRegistry()
	}
	return c
}

// Registry returns the registry holding the console helpers.
func (c *Console) Registry() *Registry {
	return c.reg
}

// Init installs the default helpers. Only the first call does any work;
// later calls return the first call's result.
func (c *Console) Init() error {
	c.once.Do(func() {
		defer close(c.ready)
		for _, h := range c.helpers() {
			if err := c.reg.Install(h.name, h.value); err != nil {
				c.initErr = fmt.Errorf("install %s: %w", h.name, err)
				return
			}
		}
		c.logger.Debug("console helpers installed", "count", c.reg.Len())
	})
	return c.initErr
}

// InitWhenReady waits for ready to be closed, then calls Init.
// It gives up with ctx.Err() if ctx is done first.
func (c *Console) InitWhenReady(ctx context.Context, ready <-chan struct{}) error {
	select {
	case <-ready:
		return c.Init()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Initialized reports whether Init has completed.
func (c *Console) Initialized() bool {
	select {
	case <-c.ready:
		return c.initErr == nil
	default:
		return false
	}
}

// Eval runs src. An expression yields its value; statements yield None and
// keep their top-level bindings for later calls.
func (c *Console) Eval(src string) (starlark.Value, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	env := c.reg.Globals()
	maps.Copy(env, c.session)

	thread := &starlark.Thread{
		Name: "console",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(c.out, msg)
		},
	}

	if expr, err := c.opts.ParseExpr(sourceName, src, 0); err == nil {
		return starlark.EvalExprOptions(c.opts, thread, expr, env)
	}

	f, err := c.opts.Parse(sourceName, src, 0)
	if err != nil {
		return nil, err
	}
	err = starlark.ExecREPLChunk(f, thread, env)
	// bindings made before a failure are kept
	c.keep(env)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("console statement evaluated", "session", len(c.session))
	return starlark.None, nil
}

// keep records every binding in env that is not an installed helper.
func (c *Console) keep(env starlark.StringDict) {
	for name, v := range env {
		if helper, ok := c.reg.Lookup(name); ok && helper == v {
			continue
		}
		c.session[name] = v
	}
}
