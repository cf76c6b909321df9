package repl

import (
	"github.com/tallyhq/tally/internal/engine/operation"
)

// buildRegistry resolves every command tag to its handler.
// Called once at construction; dispatch is a plain map lookup after
// that.
func (r *REPL) buildRegistry() map[string]handlerFunc {
	handlers := map[string]handlerFunc{
		"help":    r.cmdHelp,
		"history": r.cmdHistory,
		"clear":   r.cmdClear,
		"undo":    r.cmdUndo,
		"redo":    r.cmdRedo,
		"save":    r.cmdSave,
		"load":    r.cmdLoad,
		"exit":    r.cmdExit,
	}

	for _, op := range operation.Operators() {
		handlers[string(op)] = r.operationHandler(op)
	}

	return handlers
}

// Knows returns true if tag is a registered command.
func (r *REPL) Knows(tag string) bool {
	_, ok := r.handlers[tag]
	return ok
}
