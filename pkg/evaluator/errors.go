package evaluator

import "fmt"

// ErrStopEvaluation is the one error type that ever escapes Evals/EvalLine: a
// fatal condition (a syntax error reached at evaluation time, an illegal
// "missä" redefinition, a World token reused out of order, or a failed read
// at a "$luettu" prompt) that aborts the current top-level unit of work —
// the line being loaded in file mode (EvalFile goes on with the next line),
// or just the line being typed in the REPL. Cause holds the underlying
// reason.
type ErrStopEvaluation struct {
	Cause error
}

func (e *ErrStopEvaluation) Error() string { return e.Cause.Error() }

func (e *ErrStopEvaluation) Unwrap() error { return e.Cause }

func stop(format string, args ...any) error {
	return &ErrStopEvaluation{Cause: fmt.Errorf(format, args...)}
}

// stopWrap lifts any error (a syntax error from pkg/parser, most often) into
// the single ErrStopEvaluation signal every caller above the parser/lexer
// layer expects to see, so EvalFile's per-line recovery applies uniformly
// regardless of which stage raised the error.
func stopWrap(err error) error {
	if err == nil {
		return nil
	}

	return &ErrStopEvaluation{Cause: err}
}
