package evaluator

import (
	"bufio"
	"fmt"

	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/morph"
)

// builtin is an impure I/O primitive recognized by shape, mirroring the
// reference interpreter's Builtin class: unlike an optimization, a builtin's
// condition and result both depend on more than arithmetic (it reads stdin,
// writes stdout, and threads the World token), so it is driven through
// Evaluator methods rather than pure functions.
type builtin struct {
	operator string
	headCase morph.Case
	argCases []morph.Case
	ready    func(e *Evaluator, args []tree.Node) bool
	run      func(e *Evaluator, args []tree.Node) (tree.Node, error)
}

var builtinTable = []builtin{
	{
		operator: "$luettu", headCase: morph.Essive, argCases: []morph.Case{morph.CaseNone, morph.Elative},
		ready: func(e *Evaluator, args []tree.Node) bool { _, ok := args[1].(*tree.World); return ok },
		run: func(e *Evaluator, args []tree.Node) (tree.Node, error) {
			w := args[1].(*tree.World)

			return e.builtinRead(args[0], w)
		},
	},
	{
		operator: "$tulostettu", headCase: morph.Essive, argCases: []morph.Case{morph.CaseNone, morph.Illative},
		ready: func(e *Evaluator, args []tree.Node) bool { _, ok := args[1].(*tree.World); return ok },
		run: func(e *Evaluator, args []tree.Node) (tree.Node, error) {
			w := args[1].(*tree.World)

			return e.builtinWrite(args[0], w)
		},
	},
}

// builtins is the table matchBuiltin scans. It is filled in by init rather
// than by its initializer because builtinTable's run functions reach
// matchBuiltin again (through EvalExpression and Evals), which Go rejects
// as an initialization cycle.
var builtins []builtin

func init() { builtins = builtinTable }

// matchBuiltin reports whether t has the call shape of one of the impure
// builtins and whether its guard is satisfied; if so it runs the builtin
// and returns its result.
func (e *Evaluator) matchBuiltin(t tree.Node) (tree.Node, error, bool) {
	call, ok := t.(*tree.Call)
	if !ok {
		return nil, nil, false
	}
	for _, b := range builtins {
		if !call.HeadNameIs(b.operator, b.headCase, b.argCases) {
			continue
		}
		if !b.ready(e, call.Args) {
			continue
		}
		result, err := b.run(e, call.Args)

		return result, err, true
	}

	return nil, nil, false
}

// checkWorld verifies w is the next World token expected (the reference
// interpreter's "impossible time travel" check, which catches a program
// that tries to reuse an already-consumed World instead of threading the
// one a prior builtin returned) and returns its successor.
func (e *Evaluator) checkWorld(w *tree.World) (*tree.World, error) {
	if w.Counter != e.WorldCounter {
		return nil, stop("impossible time travel")
	}
	e.WorldCounter++

	return w.Next(), nil
}

// createPair builds the "$pari(output, world)" result every impure builtin
// returns, threading the next World token.
func (e *Evaluator) createPair(output tree.Node, w *tree.World) (tree.Node, error) {
	next, err := e.checkWorld(w)
	if err != nil {
		return nil, err
	}

	return &tree.Call{
		Head:     tree.NewVar("$pari"),
		Args:     []tree.Node{output, next},
		HeadCase: morph.Essive,
		ArgCases: []morph.Case{morph.CaseNone, morph.Allative},
	}, nil
}

// builtinRead implements "$luettu": it prompts with the inflected form of l
// (nominative case, followed by "> "), reads one line, evaluates it as a
// standalone expression, and pairs the result with the next World token.
func (e *Evaluator) builtinRead(l tree.Node, w *tree.World) (tree.Node, error) {
	prompt := l.Inflect(morph.Nominative, e.Analyzer, nil) + "> "
	line, err := e.readLine(prompt)
	if err != nil {
		return nil, stop("%v", err)
	}
	value, err := e.EvalExpression(line)
	if err != nil {
		return nil, err
	}

	return e.createPair(value, w)
}

// builtinWrite implements "$tulostettu": it fully evaluates l, prints its
// nominative inflection to Stdout, and pairs "$tyhjyys" with the next World
// token.
func (e *Evaluator) builtinWrite(l tree.Node, w *tree.World) (tree.Node, error) {
	value, err := e.Evals(l)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Stdout, value.Inflect(morph.Nominative, e.Analyzer, nil))

	return e.createPair(tree.NewVar("$tyhjyys"), w)
}

// readLine uses e.ReadLine if a caller wired one (so the REPL's own
// bufio.Reader over Stdin is reused instead of opening a second one), else
// falls back to a throwaway bufio.Reader over e.Stdin.
func (e *Evaluator) readLine(prompt string) (string, error) {
	if e.ReadLine != nil {
		return e.ReadLine(prompt)
	}
	fmt.Fprint(e.Stdout, prompt)
	reader := bufio.NewReader(e.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}

	return s
}
