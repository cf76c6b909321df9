// Package history provides the calculation log with undo/redo and
// durable CSV persistence.
//
// The History type owns two sequences of records:
//
//   - the active log, in chronological order, bounded by MaxEntries
//     with oldest-first eviction
//   - the redo stack, holding undone records until the next new append
//
// # Undo/redo contract
//
//	h := history.New(history.Options{MaxEntries: 1000})
//
//	h.Append(rec)      // push; clears the redo stack
//	rec, _ = h.Undo()  // move last record to the redo stack
//	rec, _ = h.Redo()  // move it back to the end of the log
//
// Redo survives repeated undo/redo cycling; only a genuinely new
// Append (or Clear) discards it. Undoing past the start returns
// ErrNothingToUndo, redoing past the end ErrNothingToRedo, and
// neither mutates state.
//
// # Eviction policy
//
// Eviction acts only on the active log. Records on the redo stack are
// never evicted, so a redo may re-append a record whose contemporaries
// have already been dropped from the log. This is a deliberate policy:
// the redo stack is the user's pending work, not part of the bounded
// log until it is re-applied.
//
// # Persistence
//
// Save writes the active log (never the redo stack) as CSV with a
// header row, through a temp file and atomic rename so a failed save
// leaves any previous file intact. Load parses the whole file before
// touching live state; one malformed row aborts the load with no
// partial mutation. Both report failures as *PersistenceError.
package history
