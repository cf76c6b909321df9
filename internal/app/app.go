// Package app wires one calculator session together: configuration,
// logging, the history engine with its startup restore, and the REPL.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/engine/history"
	"github.com/tallyhq/tally/internal/repl"
)

// Options come from the command line.
type Options struct {
	// ConfigPath names an explicit TOML config file. Empty uses the
	// default location under the base directory.
	ConfigPath string

	// Debug mirrors log output to stderr at debug level.
	Debug bool

	// LogLevel sets the file log level (debug, info, warn, error).
	LogLevel string

	// Input and Output override the session streams. Defaults to
	// stdin/stdout.
	Input  io.Reader
	Output io.Writer
}

// App is one interactive session.
type App struct {
	cfg     *config.Config
	log     zerolog.Logger
	logFile *os.File
	hist    *history.History
	repl    *repl.REPL
}

// New loads configuration, opens the log, constructs the history and
// restores any saved session, and builds the REPL.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating directories: %w", err)
	}

	logger, logFile, err := newLogger(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	a := &App{
		cfg:     cfg,
		log:     logger,
		logFile: logFile,
	}

	a.hist = history.New(history.Options{
		MaxEntries: cfg.MaxHistory,
		AutoSave:   cfg.AutoSave,
		Path:       cfg.HistoryFile,
		Logger:     logger.With().Str("component", "history").Logger(),
	})
	a.hist.AddObserver(&loggingObserver{log: a.log})
	a.restoreHistory()

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	a.repl = repl.New(cfg, a.hist, in, out, logger)

	a.log.Info().Msg("calculator initialized with configuration")
	return a, nil
}

// restoreHistory loads the saved session if one exists.
// A missing file starts an empty session; a corrupt one is reported
// and skipped rather than aborting startup.
func (a *App) restoreHistory() {
	if _, err := os.Stat(a.cfg.HistoryFile); err != nil {
		a.log.Info().Str("path", a.cfg.HistoryFile).Msg("no history file found, starting with empty history")
		return
	}
	if err := a.hist.Load(); err != nil {
		a.log.Warn().Err(err).Msg("could not load existing history")
	}
}

// Run executes the REPL until exit or end of input.
func (a *App) Run() error {
	return a.repl.Run()
}

// Shutdown releases the session's resources.
func (a *App) Shutdown() {
	a.log.Info().Msg("session ended")
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// Config returns the effective configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// History returns the session's history engine.
func (a *App) History() *history.History {
	return a.hist
}
