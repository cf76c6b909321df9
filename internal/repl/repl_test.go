package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/engine/history"
)

func TestMain(m *testing.M) {
	color.NoColor = true // deterministic output in assertions
	os.Exit(m.Run())
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.BaseDir = t.TempDir()
	cfg.AutoSave = false
	cfg.MaxInput = decimal.New(1, 6)
	cfg.HistoryDir = filepath.Join(cfg.BaseDir, "history")
	cfg.HistoryFile = filepath.Join(cfg.HistoryDir, "history.csv")
	return cfg
}

// runScript feeds the REPL a newline-separated command script and
// returns everything it printed.
func runScript(t *testing.T, cfg *config.Config, hist *history.History, script string) string {
	t.Helper()
	var out bytes.Buffer
	r := New(cfg, hist, strings.NewReader(script), &out, zerolog.Nop())
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func newTestHistory(cfg *config.Config) *history.History {
	return history.New(history.Options{
		MaxEntries: cfg.MaxHistory,
		AutoSave:   cfg.AutoSave,
		Path:       cfg.HistoryFile,
		Logger:     zerolog.Nop(),
	})
}

func TestRegistryCoversAllCommands(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, newTestHistory(cfg), strings.NewReader(""), &bytes.Buffer{}, zerolog.Nop())

	for _, tag := range []string{
		"help", "history", "clear", "undo", "redo", "save", "load", "exit",
		"add", "subtract", "multiply", "divide", "power", "root",
		"modulus", "int_divide", "percent", "abs_diff",
	} {
		if !r.Knows(tag) {
			t.Errorf("command %q not registered", tag)
		}
	}
	if r.Knows("quit") {
		t.Error("unexpected command registered")
	}
}

func TestCalculationFlow(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\n10\n5\nexit\n")

	if !strings.Contains(out, "Result: 15") {
		t.Errorf("output missing result:\n%s", out)
	}
	if hist.Len() != 1 {
		t.Errorf("Len = %d, want 1", hist.Len())
	}
}

func TestUnknownCommand(t *testing.T) {
	cfg := testConfig(t)
	out := runScript(t, cfg, newTestHistory(cfg), "frobnicate\nexit\n")

	if !strings.Contains(out, `Unknown command: "frobnicate"`) {
		t.Errorf("output missing unknown-command notice:\n%s", out)
	}
}

func TestOperandCancel(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\ncancel\nmultiply\n3\nCancel\nexit\n")

	if !strings.Contains(out, "Operation cancelled") {
		t.Errorf("output missing cancel notice:\n%s", out)
	}
	if hist.Len() != 0 {
		t.Errorf("cancelled operations recorded, Len = %d", hist.Len())
	}
}

func TestInvalidOperandKeepsLoopAlive(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\nbanana\nadd\n1\n2\nexit\n")

	if !strings.Contains(out, "Error:") {
		t.Errorf("output missing error message:\n%s", out)
	}
	if !strings.Contains(out, "Result: 3") {
		t.Errorf("loop did not continue after error:\n%s", out)
	}
}

func TestDivisionByZeroMessage(t *testing.T) {
	cfg := testConfig(t)
	out := runScript(t, cfg, newTestHistory(cfg), "divide\n1\n0\nexit\n")

	if !strings.Contains(out, "division by zero") {
		t.Errorf("output missing division error:\n%s", out)
	}
}

func TestUndoRedoCommands(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\n10\n5\nundo\nredo\nundo\nundo\nredo\nredo\nexit\n")

	if !strings.Contains(out, "Undone: add(10, 5) = 15") {
		t.Errorf("output missing undo notice:\n%s", out)
	}
	if !strings.Contains(out, "Redone: add(10, 5) = 15") {
		t.Errorf("output missing redo notice:\n%s", out)
	}
	if !strings.Contains(out, "Error: nothing to undo") {
		t.Errorf("output missing empty-undo error:\n%s", out)
	}
	if !strings.Contains(out, "Error: nothing to redo") {
		t.Errorf("output missing empty-redo error:\n%s", out)
	}
	if hist.Len() != 1 {
		t.Errorf("Len = %d, want 1", hist.Len())
	}
}

func TestHistoryListing(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "history\nadd\n1\n2\nsubtract\n9\n4\nhistory\nexit\n")

	if !strings.Contains(out, "No calculations in history") {
		t.Errorf("output missing empty-history notice:\n%s", out)
	}
	if !strings.Contains(out, "1. add(1, 2) = 3") || !strings.Contains(out, "2. subtract(9, 4) = 5") {
		t.Errorf("output missing numbered entries:\n%s", out)
	}
}

func TestClearCommand(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\n1\n2\nclear\nexit\n")

	if !strings.Contains(out, "History cleared") {
		t.Errorf("output missing clear notice:\n%s", out)
	}
	if hist.Len() != 0 {
		t.Errorf("Len = %d, want 0", hist.Len())
	}
}

func TestSaveAndLoadCommands(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	runScript(t, cfg, hist, "add\n10\n5\nsave\nexit\n")

	if _, err := os.Stat(cfg.HistoryFile); err != nil {
		t.Fatalf("history file not written: %v", err)
	}

	fresh := newTestHistory(cfg)
	out := runScript(t, cfg, fresh, "load\nhistory\nexit\n")

	if !strings.Contains(out, "History loaded successfully") {
		t.Errorf("output missing load confirmation:\n%s", out)
	}
	if !strings.Contains(out, "1. add(10, 5) = 15") {
		t.Errorf("loaded history not listed:\n%s", out)
	}
}

func TestLoadFailureIsRecoverable(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "load\nadd\n1\n1\nexit\n")

	if !strings.Contains(out, "Error: history load") {
		t.Errorf("output missing load error:\n%s", out)
	}
	if !strings.Contains(out, "Result: 2") {
		t.Errorf("loop did not continue after load failure:\n%s", out)
	}
}

func TestExitSavesHistory(t *testing.T) {
	cfg := testConfig(t)
	hist := newTestHistory(cfg)

	out := runScript(t, cfg, hist, "add\n2\n3\nexit\n")

	if !strings.Contains(out, "History saved successfully") {
		t.Errorf("output missing exit save confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("output missing goodbye:\n%s", out)
	}
	if _, err := os.Stat(cfg.HistoryFile); err != nil {
		t.Errorf("history file not written on exit: %v", err)
	}
}

func TestEOFExitsCleanly(t *testing.T) {
	cfg := testConfig(t)
	out := runScript(t, cfg, newTestHistory(cfg), "add\n1\n2\n")

	if !strings.Contains(out, "Input terminated. Exiting...") {
		t.Errorf("output missing EOF exit notice:\n%s", out)
	}
}

func TestMaxInputEnforced(t *testing.T) {
	cfg := testConfig(t) // MaxInput = 1e6
	out := runScript(t, cfg, newTestHistory(cfg), "add\n2000000\n1\nexit\n")

	if !strings.Contains(out, "invalid operand") {
		t.Errorf("output missing bound violation:\n%s", out)
	}
}

func TestHelpListsOperations(t *testing.T) {
	cfg := testConfig(t)
	out := runScript(t, cfg, newTestHistory(cfg), "help\nexit\n")

	for _, want := range []string{"add", "abs_diff", "undo", "redo", "save", "load"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}
