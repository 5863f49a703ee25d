package config

import (
	"fmt"
	"log/slog"
	"slices"
)

var outputModes = []string{OutputText, OutputTable, OutputJSON}

// Validate checks that every option holds a supported value.
func (c *Config) Validate() error {
	if !slices.Contains(outputModes, c.Output) {
		return fmt.Errorf("invalid output %q: want one of %v", c.Output, outputModes)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}
	return nil
}

// Level is the configured log level, lowered to debug when Verbose is set.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
