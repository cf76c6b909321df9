// Package config provides the calculator's configuration: defaults,
// an optional TOML file, and TALLY_* environment overrides, resolved
// once at startup into a single explicit structure.
package config

import (
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TALLY_"

// Config holds every runtime setting. Construct it with Load (or
// Default) and pass it by pointer; nothing reads the environment after
// startup.
type Config struct {
	// BaseDir anchors the default history and log locations.
	BaseDir string `toml:"base_dir"`

	// HistoryDir and HistoryFile locate the durable history.
	// Empty values derive from BaseDir.
	HistoryDir  string `toml:"history_dir"`
	HistoryFile string `toml:"history_file"`

	// LogDir and LogFile locate the session log.
	LogDir  string `toml:"log_dir"`
	LogFile string `toml:"log_file"`

	// MaxHistory bounds the active calculation log.
	MaxHistory int `toml:"max_history"`

	// AutoSave persists the history after every calculation.
	AutoSave bool `toml:"auto_save"`

	// Precision is the display precision for results, in decimal places.
	Precision int `toml:"precision"`

	// MaxInput caps the absolute magnitude of operands.
	MaxInput decimal.Decimal `toml:"-"`

	// Encoding names the history file's text encoding. Informational:
	// all I/O is UTF-8, which is the only supported value.
	Encoding string `toml:"encoding"`
}

// Default returns the configuration with documented defaults applied.
func Default() *Config {
	base := defaultBaseDir()
	return &Config{
		BaseDir:    base,
		MaxHistory: 1000,
		AutoSave:   true,
		Precision:  10,
		MaxInput:   decimal.New(1, 999), // 1e999
		Encoding:   "utf-8",
	}
}

// Load builds the effective configuration: defaults, then the TOML
// file at path (or the default location when path is empty; a missing
// file is not an error), then TALLY_* environment overrides. Derived
// paths are resolved last and the result validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	// The default config file lives under BaseDir, so a BaseDir
	// override must be visible before the file is looked up.
	if v, ok := os.LookupEnv(envBaseDir); ok {
		cfg.BaseDir = v
	}

	if err := applyFile(cfg, path); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths fills derived locations from BaseDir.
func (c *Config) resolvePaths() {
	if c.HistoryDir == "" {
		c.HistoryDir = filepath.Join(c.BaseDir, "history")
	}
	if c.HistoryFile == "" {
		c.HistoryFile = filepath.Join(c.HistoryDir, "tally_history.csv")
	}
	if c.LogDir == "" {
		c.LogDir = filepath.Join(c.BaseDir, "logs")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(c.LogDir, "tally.log")
	}
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	if c.MaxHistory <= 0 {
		return &ConfigError{Field: "max_history", Reason: "must be positive"}
	}
	if c.Precision <= 0 {
		return &ConfigError{Field: "precision", Reason: "must be positive"}
	}
	if c.MaxInput.Sign() <= 0 {
		return &ConfigError{Field: "max_input", Reason: "must be positive"}
	}
	if c.Encoding != "utf-8" && c.Encoding != "UTF-8" {
		return &ConfigError{Field: "encoding", Reason: "only utf-8 is supported"}
	}
	return nil
}

// EnsureDirs creates the history and log directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.HistoryDir, c.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tally"
	}
	return filepath.Join(home, ".tally")
}
