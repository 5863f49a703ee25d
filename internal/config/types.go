// Package config loads numkit settings from defaults, numkit.yaml,
// NUMKIT_* environment variables and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose     bool   `koanf:"verbose"`
	LogLevel    string `koanf:"log_level"`
	Output      string `koanf:"output"`
	Clipboard   bool   `koanf:"clipboard"`
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Output modes.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Default configuration values.
const (
	DefaultLogLevel    = "warn"
	DefaultOutput      = OutputText
	DefaultPrompt      = "numkit> "
	DefaultHistoryFile = "~/.numkit_history"
	EnvPrefix          = "NUMKIT_"
)

// FileNames are the config files looked up in the working directory, in order.
var FileNames = []string{"numkit.yaml", "numkit.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		Output:      DefaultOutput,
		Clipboard:   true,
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
	}
}
