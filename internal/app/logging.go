package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/engine/record"
)

// newLogger opens the session log file and builds the root logger.
// Debug mode mirrors output to stderr through a console writer.
func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	level := zerolog.InfoLevel
	if opts.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(opts.LogLevel)
		if err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	var w io.Writer = f
	if opts.Debug {
		w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr})
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}

// loggingObserver records every completed calculation, one log line
// per append.
type loggingObserver struct {
	log zerolog.Logger
}

func (o *loggingObserver) RecordAppended(rec record.Record) {
	o.log.Info().
		Str("operation", string(rec.Op)).
		Str("first_operand", rec.A.String()).
		Str("second_operand", rec.B.String()).
		Str("result", rec.Result.String()).
		Msg("calculation performed")
}
