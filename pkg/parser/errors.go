package parser

import "fmt"

// Error is a syntax error raised while parsing one line of source. Tampio
// treats a syntax error as fatal to the line it occurs in only — the
// evaluator lifts every Error into its single ErrStopEvaluation signal, so
// in file mode that aborts just the offending line and evaluation continues
// with the next one, and in REPL mode it discards the current input and
// returns to the prompt (§7 of the spec) — so, unlike the multi-error
// accumulator pattern used for some grammars, Parser stops at the first
// Error it encounters.
type Error struct {
	Message string
}

func (e *Error) Error() string { return "syntax error: " + e.Message }

func errorf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
