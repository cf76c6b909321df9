// Package repl implements the interactive command loop.
//
// Commands are dispatched through a registry mapping a closed set of
// command tags to handlers, resolved once at startup. Every engine
// failure is rendered as a user-facing message and the loop continues;
// only 'exit' or end of input terminate the session.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/engine/history"
)

// errExit signals a normal, user-requested exit.
var errExit = errors.New("exit requested")

// REPL owns the command loop for one session.
type REPL struct {
	cfg  *config.Config
	hist *history.History
	in   *bufio.Reader
	out  io.Writer
	log  zerolog.Logger

	handlers map[string]handlerFunc
}

// handlerFunc executes one command against the session.
type handlerFunc func() error

// New creates a REPL bound to the given history and streams.
func New(cfg *config.Config, hist *history.History, in io.Reader, out io.Writer, log zerolog.Logger) *REPL {
	r := &REPL{
		cfg:  cfg,
		hist: hist,
		in:   bufio.NewReader(in),
		out:  out,
		log:  log,
	}
	r.handlers = r.buildRegistry()
	return r
}

// Run executes the command loop until exit or end of input.
func (r *REPL) Run() error {
	fmt.Fprintln(r.out, "Calculator started. Type 'help' for commands.")

	for {
		line, err := r.readLine("\nEnter command: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nInput terminated. Exiting...")
				r.saveOnExit()
				return nil
			}
			return err
		}

		cmd := strings.ToLower(strings.TrimSpace(line))
		if cmd == "" {
			continue
		}

		handler, ok := r.handlers[cmd]
		if !ok {
			r.noticef("Unknown command: %q. Type 'help' for available commands.", cmd)
			continue
		}

		if err := handler(); err != nil {
			switch {
			case errors.Is(err, errExit):
				return nil
			case errors.Is(err, io.EOF):
				fmt.Fprintln(r.out, "\nInput terminated. Exiting...")
				r.saveOnExit()
				return nil
			default:
				r.noticef("Error: %v", err)
				r.log.Debug().Err(err).Str("command", cmd).Msg("command failed")
			}
		}
	}
}

// readLine prompts and reads one line of input.
func (r *REPL) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil {
		// A final unterminated line still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// saveOnExit makes a best-effort save when the session ends.
func (r *REPL) saveOnExit() {
	if err := r.hist.Save(); err != nil {
		r.noticef("Warning: could not save history: %v", err)
		return
	}
	r.okf("History saved successfully.")
}
