package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Environment variables recognized as overrides.
// Empty string values are treated as valid values, not as unset.
const (
	envBaseDir     = EnvPrefix + "BASE_DIR"
	envHistoryDir  = EnvPrefix + "HISTORY_DIR"
	envHistoryFile = EnvPrefix + "HISTORY_FILE"
	envLogDir      = EnvPrefix + "LOG_DIR"
	envLogFile     = EnvPrefix + "LOG_FILE"
	envMaxHistory  = EnvPrefix + "MAX_HISTORY"
	envAutoSave    = EnvPrefix + "AUTO_SAVE"
	envPrecision   = EnvPrefix + "PRECISION"
	envMaxInput    = EnvPrefix + "MAX_INPUT"
	envEncoding    = EnvPrefix + "ENCODING"
)

// applyEnv overlays TALLY_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(envBaseDir); ok {
		cfg.BaseDir = v
	}
	if v, ok := os.LookupEnv(envHistoryDir); ok {
		cfg.HistoryDir = v
	}
	if v, ok := os.LookupEnv(envHistoryFile); ok {
		cfg.HistoryFile = v
	}
	if v, ok := os.LookupEnv(envLogDir); ok {
		cfg.LogDir = v
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(envEncoding); ok {
		cfg.Encoding = v
	}

	if v, ok := os.LookupEnv(envMaxHistory); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr(envMaxHistory, v, "not an integer")
		}
		cfg.MaxHistory = n
	}
	if v, ok := os.LookupEnv(envPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envErr(envPrecision, v, "not an integer")
		}
		cfg.Precision = n
	}
	if v, ok := os.LookupEnv(envAutoSave); ok {
		b, err := parseBool(v)
		if err != nil {
			return envErr(envAutoSave, v, "not a boolean")
		}
		cfg.AutoSave = b
	}
	if v, ok := os.LookupEnv(envMaxInput); ok {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return envErr(envMaxInput, v, "not a number")
		}
		cfg.MaxInput = d
	}

	return nil
}

// parseBool accepts the usual spellings plus "1"/"0".
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v)
}

func envErr(name, value, reason string) error {
	return &ConfigError{
		Field:  name,
		Reason: fmt.Sprintf("%s: %q", reason, value),
	}
}
