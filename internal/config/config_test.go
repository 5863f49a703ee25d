package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a fresh directory so no stray numkit.yaml is picked up.
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "numkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("numkit", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "")
	fs.String("log-level", "", "")
	fs.StringP("output", "o", "", "")
	fs.Bool("clipboard", true, "")
	fs.String("history-file", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.True(t, cfg.Clipboard)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, `
output: table
prompt: "> "
clipboard: false
history_file: /tmp/numkit_history
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "numkit.yaml", filepath.Base(cfg.File))
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.False(t, cfg.Clipboard)
	assert.Equal(t, "/tmp/numkit_history", cfg.HistoryFile)
}

func TestLoad_ExplicitFile(t *testing.T) {
	inEmptyDir(t)
	other := t.TempDir()
	path := writeConfig(t, other, "output: json\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)

	_, err = Load(filepath.Join(other, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, "output: table\nlog_level: info\n")

	t.Setenv("NUMKIT_OUTPUT", "json")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output, "env overrides file")
	assert.Equal(t, "info", cfg.LogLevel, "file overrides defaults")

	cfg, err = Load("", newFlags(t, "--output=text", "--log-level=error"))
	require.NoError(t, err)
	assert.Equal(t, OutputText, cfg.Output, "flag overrides env")
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoad_UnsetFlagsIgnored(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, "clipboard: false\n")

	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.False(t, cfg.Clipboard, "flag default must not override the file")

	cfg, err = Load("", newFlags(t, "--clipboard"))
	require.NoError(t, err)
	assert.True(t, cfg.Clipboard)
}

func TestLoad_Verbose(t *testing.T) {
	inEmptyDir(t)

	cfg, err := Load("", newFlags(t, "-v"))
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_HistoryFileHome(t *testing.T) {
	inEmptyDir(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("", newFlags(t, "--history-file=~/hist"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "hist"), cfg.HistoryFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		errSubstr string
	}{
		{"unknown output", "output: csv\n", "invalid output"},
		{"unknown log level", "log_level: loud\n", "invalid log_level"},
		{"empty prompt", "prompt: \"\"\n", "prompt must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := inEmptyDir(t)
			writeConfig(t, dir, tt.body)

			_, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := &Config{Output: OutputJSON}
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}
