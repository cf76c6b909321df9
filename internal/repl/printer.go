package repl

import "github.com/fatih/color"

// Output styles: help in yellow, notices and errors in red,
// confirmations in green, history entries in cyan under a magenta
// header. Results print unstyled.
var (
	styleInfo   = color.New(color.FgYellow)
	styleNotice = color.New(color.FgRed)
	styleOK     = color.New(color.FgGreen)
	styleHeader = color.New(color.FgMagenta)
	styleEntry  = color.New(color.FgCyan)
)

func (r *REPL) infof(format string, args ...any) {
	styleInfo.Fprintf(r.out, format+"\n", args...)
}

func (r *REPL) noticef(format string, args ...any) {
	styleNotice.Fprintf(r.out, format+"\n", args...)
}

func (r *REPL) okf(format string, args ...any) {
	styleOK.Fprintf(r.out, format+"\n", args...)
}

func (r *REPL) headerf(format string, args ...any) {
	styleHeader.Fprintf(r.out, format+"\n", args...)
}

func (r *REPL) entryf(format string, args ...any) {
	styleEntry.Fprintf(r.out, format+"\n", args...)
}
