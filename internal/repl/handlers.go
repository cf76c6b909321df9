package repl

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/engine/operation"
	"github.com/tallyhq/tally/internal/engine/record"
)

func (r *REPL) cmdHelp() error {
	ops := make([]string, 0, len(operation.Operators()))
	for _, op := range operation.Operators() {
		ops = append(ops, string(op))
	}

	r.infof("Available commands:")
	r.infof("  %s - Perform calculations", strings.Join(ops, ", "))
	r.infof("  history - Show calculation history")
	r.infof("  clear - Clear calculation history")
	r.infof("  undo - Undo the last calculation")
	r.infof("  redo - Redo the last undone calculation")
	r.infof("  save - Save calculation history to file")
	r.infof("  load - Load calculation history from file")
	r.infof("  exit - Exit the calculator")
	return nil
}

func (r *REPL) cmdHistory() error {
	if r.hist.Len() == 0 {
		fmt.Fprintln(r.out, "No calculations in history")
		return nil
	}

	r.headerf("\nCalculation History:")
	i := 0
	for rec := range r.hist.All() {
		i++
		r.entryf("%d. %s", i, rec)
	}
	return nil
}

func (r *REPL) cmdClear() error {
	r.hist.Clear()
	r.noticef("History cleared")
	return nil
}

func (r *REPL) cmdUndo() error {
	rec, err := r.hist.Undo()
	if err != nil {
		return err
	}
	r.noticef("Undone: %s", rec)
	return nil
}

func (r *REPL) cmdRedo() error {
	rec, err := r.hist.Redo()
	if err != nil {
		return err
	}
	r.noticef("Redone: %s", rec)
	return nil
}

func (r *REPL) cmdSave() error {
	if err := r.hist.Save(); err != nil {
		return err
	}
	r.okf("History saved successfully")
	return nil
}

func (r *REPL) cmdLoad() error {
	if err := r.hist.Load(); err != nil {
		return err
	}
	r.okf("History loaded successfully")
	return nil
}

func (r *REPL) cmdExit() error {
	r.saveOnExit()
	r.okf("Goodbye!")
	return errExit
}

// operationHandler builds the handler for one arithmetic command:
// prompt for both operands, evaluate, record.
func (r *REPL) operationHandler(op operation.Operator) handlerFunc {
	return func() error {
		fmt.Fprintln(r.out, "Enter numbers (or 'cancel' to abort):")

		a, cancelled, err := r.readOperand("First number: ")
		if err != nil || cancelled {
			return err
		}
		b, cancelled, err := r.readOperand("Second number: ")
		if err != nil || cancelled {
			return err
		}

		result, err := operation.Apply(op, a, b)
		if err != nil {
			return err
		}

		rec, err := record.New(op, a, b, result, record.Bounds{
			MaxMagnitude: r.cfg.MaxInput,
			Precision:    int32(r.cfg.Precision),
		})
		if err != nil {
			return err
		}

		if err := r.hist.Append(rec); err != nil {
			// The calculation stands in memory; only persistence failed.
			r.noticef("Warning: could not save history: %v", err)
		}

		fmt.Fprintf(r.out, "\nResult: %s\n", rec.Result)
		return nil
	}
}

// readOperand prompts for one operand, honoring 'cancel'.
func (r *REPL) readOperand(prompt string) (d decimal.Decimal, cancelled bool, err error) {
	raw, err := r.readLine(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}
	if strings.EqualFold(strings.TrimSpace(raw), "cancel") {
		r.noticef("Operation cancelled")
		return decimal.Zero, true, nil
	}

	d, err = record.ParseOperand(raw, r.cfg.MaxInput)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, false, nil
}
