package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// fileConfig mirrors Config with pointer fields so an absent key keeps
// the lower layer's value.
type fileConfig struct {
	BaseDir     *string `toml:"base_dir"`
	HistoryDir  *string `toml:"history_dir"`
	HistoryFile *string `toml:"history_file"`
	LogDir      *string `toml:"log_dir"`
	LogFile     *string `toml:"log_file"`
	MaxHistory  *int    `toml:"max_history"`
	AutoSave    *bool   `toml:"auto_save"`
	Precision   *int    `toml:"precision"`
	MaxInput    *string `toml:"max_input"`
	Encoding    *string `toml:"encoding"`
}

// applyFile overlays the TOML file at path onto cfg.
// An empty path falls back to the default location; a missing file is
// not an error. An explicitly named file must exist.
func applyFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.BaseDir, "tally.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return &ConfigError{Field: "config file", Reason: err.Error()}
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return &ConfigError{
			Field:  "config file",
			Reason: fmt.Sprintf("parsing %s: %v", path, err),
		}
	}

	if fc.BaseDir != nil {
		cfg.BaseDir = *fc.BaseDir
	}
	if fc.HistoryDir != nil {
		cfg.HistoryDir = *fc.HistoryDir
	}
	if fc.HistoryFile != nil {
		cfg.HistoryFile = *fc.HistoryFile
	}
	if fc.LogDir != nil {
		cfg.LogDir = *fc.LogDir
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.MaxHistory != nil {
		cfg.MaxHistory = *fc.MaxHistory
	}
	if fc.AutoSave != nil {
		cfg.AutoSave = *fc.AutoSave
	}
	if fc.Precision != nil {
		cfg.Precision = *fc.Precision
	}
	if fc.Encoding != nil {
		cfg.Encoding = *fc.Encoding
	}
	if fc.MaxInput != nil {
		d, err := decimal.NewFromString(*fc.MaxInput)
		if err != nil {
			return &ConfigError{
				Field:  "max_input",
				Reason: fmt.Sprintf("not a number: %q", *fc.MaxInput),
			}
		}
		cfg.MaxInput = d
	}

	return nil
}
