package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the ambient knobs the CLI and debugger read at startup.
type Config struct {
	Execution struct {
		StackSize    int    `toml:"stack_size"`
		MaxCycles    int    `toml:"max_cycles"`
		EntrySymbol  string `toml:"entry_symbol"`
	} `toml:"execution"`

	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowStack     bool `toml:"show_stack"`
		StackWindow   int  `toml:"stack_window"`
	} `toml:"debugger"`
}

// DefaultConfig returns the spec's defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Execution.StackSize = 65535
	cfg.Execution.MaxCycles = 1_000_000
	cfg.Execution.EntrySymbol = "__start"

	cfg.Debugger.HistorySize = 500
	cfg.Debugger.ShowStack = true
	cfg.Debugger.StackWindow = 128

	return cfg
}

// LoadConfig overlays a TOML file onto the defaults. A missing file is not
// an error: the defaults stand as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultConfigPath mirrors the platform-specific config locations a
// long-running CLI tool conventionally uses.
func DefaultConfigPath() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "rvm16")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "rvm16.toml"
		}
		dir = filepath.Join(home, ".config", "rvm16")
	}
	return filepath.Join(dir, "rvm16.toml")
}
