// Package evaluator implements the outermost lazy term-rewriting engine:
// given a rule store and an expression tree, repeatedly rewrite the
// outermost reducible call until a fixed point is reached (§4.6/§4.9 of the
// spec). It also hosts the arithmetic peephole optimizations and the two
// impure I/O builtins that read from and write to the World token chain.
package evaluator

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"

	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/lexer"
	"github.com/tampio-lang/tampio/pkg/morph"
	"github.com/tampio-lang/tampio/pkg/parser"
)

// Evaluator holds everything a reduction needs beyond the expression being
// reduced: the live rule store, the morphological analyzer used for display
// and for the builtins' prompts, the session's mode flags, and the I/O hooks
// an impure builtin drives.
type Evaluator struct {
	Store    *store.Store
	Analyzer morph.Analyzer

	// Magic enables the arithmetic peephole optimizations and the read/print
	// builtins; disabled by --no-magic, it forces every reduction through the
	// standard-library equations.
	Magic bool
	// Impure (set by --free-impure rather than --free-pure) makes a match of
	// an Always equation that binds nothing copy its right-hand side even in
	// free mode; without it, free mode returns that stored right-hand side
	// itself, shared.
	Impure bool

	// Debug and Verbosity gate Trace output; Visualize prints every
	// intermediate form Evals passes through.
	Debug     bool
	Verbosity int
	Visualize bool

	// Counter is the shared "kun"-clause phase-name counter, handed to every
	// parser.New call this evaluator's driver makes, so synthesized phase
	// names stay unique across a whole session.
	Counter int

	// WorldCounter is the next World token checkWorld expects to see
	// consumed; it only ever increases (§4.6, "impossible time travel").
	WorldCounter int

	// Stdin/Stdout/Stderr are the builtins' and the Trace output's I/O
	// surface; defaulting to nil is a programmer error, callers must set
	// these (internal/cli wires os.Stdin/os.Stdout/os.Stderr).
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ReadLine reads one line of input after writing prompt, used by the
	// "$luettu" builtin. internal/cli wires this to the same bufio.Reader
	// over Stdin that it hands to internal/repl, so the builtin and the REPL
	// read from one buffered stream rather than two readers over it.
	ReadLine func(prompt string) (string, error)

	stack []tree.Node
}

// New builds an Evaluator over store s, displaying with analyzer an.
func New(s *store.Store, an morph.Analyzer) *Evaluator {
	return &Evaluator{Store: s, Analyzer: an, Magic: true}
}

// Evals fully reduces t to a normal form: it keeps rewriting the outermost
// call, and then the whole tree bottom-up once no outermost rewrite applies,
// until two successive passes produce structurally equal trees (mirroring
// the reference interpreter's evals, which cannot simply check "no rule
// fired" because evalsOnce also recurses into subexpressions once the top is
// stuck).
func (e *Evaluator) Evals(t tree.Node) (tree.Node, error) {
	a, err := e.evalsOnce(t, nil)
	if err != nil {
		return nil, err
	}
	c := a.Copy(map[*tree.Call]*tree.Call{})
	for {
		if e.Visualize {
			fmt.Fprintln(e.Stdout, a.Inflect(morph.Nominative, e.Analyzer, nil))
		}
		b, err := e.evalsOnce(a, nil)
		if err != nil {
			return nil, err
		}
		if c.Equal(b) {
			a = b

			break
		}
		a = b
		c = a.Copy(map[*tree.Call]*tree.Call{})
	}
	if e.Debug && e.Verbosity >= 1 {
		fmt.Fprintln(e.Stderr, "End: "+a.String())
	}

	return a, nil
}

// evalsOnce evaluates t lazily: it tries the peephole optimizations, the
// builtins, and then every stored equation in order against t itself: the
// first to match wins and its result is returned without recursing further.
// Only if nothing matches at this level does it recurse into t's head and
// arguments (for a Call) and return t unchanged otherwise. visited guards
// against the expression DAG containing a cycle back to t.
func (e *Evaluator) evalsOnce(t tree.Node, visited map[*tree.Call]bool) (tree.Node, error) {
	if call, ok := t.(*tree.Call); ok {
		if visited[call] {
			return t, nil
		}
		visited = cloneVisited(visited)
		visited[call] = true
	}

	e.stack = append(e.stack, t)
	defer func() { e.stack = e.stack[:len(e.stack)-1] }()

	if e.Magic {
		if result, matched := matchOptimization(t); matched {
			e.trace("Match", t, "(opt)")

			return result, nil
		}
		if result, err, matched := e.matchBuiltin(t); matched {
			e.trace("Match", t, "(builtin)")

			return result, err
		}
	}

	for _, eq := range e.Store.Equations() {
		subs, ok := eq.Left.Match(t)
		if !ok {
			if e.Debug && e.Verbosity >= 2 {
				fmt.Fprintln(e.Stderr, "NO MATCH: "+t.String()+" != "+eq.Left.String())
			}

			continue
		}
		for i := len(eq.Where) - 1; i >= 0; i-- {
			wb := eq.Where[i]
			if _, exists := subs[wb.Name]; exists {
				return nil, stop("illegal redefinition of %s", wb.Name)
			}
			subs[wb.Name] = wb.Body.Substitute(subs, map[*tree.Call]*tree.Call{})
		}
		var result tree.Node
		if len(subs) > 0 || (eq.Always && (e.Impure || !e.Store.Free())) {
			result = eq.Right.Substitute(subs, map[*tree.Call]*tree.Call{})
		} else {
			result = eq.Right
		}
		if e.Debug && e.Verbosity >= 1 {
			fmt.Fprintln(e.Stderr, "Match: "+t.String()+" == "+eq.Left.String()+" -> "+result.String())
		}

		return result, nil
	}

	if call, ok := t.(*tree.Call); ok {
		head, err := e.evalsOnce(call.Head, visited)
		if err != nil {
			return nil, err
		}
		args := make([]tree.Node, len(call.Args))
		for i, arg := range call.Args {
			args[i], err = e.evalsOnce(arg, visited)
			if err != nil {
				return nil, err
			}
		}

		return &tree.Call{Head: head, Args: args, HeadCase: call.HeadCase, ArgCases: call.ArgCases}, nil
	}

	return t, nil
}

func (e *Evaluator) trace(verb string, t tree.Node, suffix string) {
	if e.Debug && e.Verbosity >= 1 {
		fmt.Fprintln(e.Stderr, verb+": "+t.String()+" "+suffix)
	}
}

func cloneVisited(v map[*tree.Call]bool) map[*tree.Call]bool {
	out := make(map[*tree.Call]bool, len(v)+1)
	for k := range v {
		out[k] = true
	}

	return out
}

// PrintStack writes the current reduction stack to Stderr, mirroring the
// reference interpreter's printStack diagnostic: every tree still being
// reduced when the fatal error occurred, innermost first as pushed, plus
// (in debug mode) every stored definition. At the highest verbosity each
// frame is also rendered as a full struct dump (repr.String), since the
// one-line String() form elides which Node variant and case fields a
// frame actually holds.
func (e *Evaluator) PrintStack() {
	fmt.Fprintln(e.Stderr, "Stack:")
	for _, t := range e.stack {
		fmt.Fprintln(e.Stderr, "  "+t.String())
		if e.Verbosity >= 2 {
			fmt.Fprintln(e.Stderr, "    "+repr.String(t))
		}
	}
	if e.Debug {
		fmt.Fprintln(e.Stderr, "Defs:")
		for _, eq := range e.Store.Equations() {
			fmt.Fprintln(e.Stderr, "  "+eq.String())
		}
	}
}

// EvalExpression lexes and parses a single line as a bare query (no trailing
// period required) and fully evaluates its left-hand side. Used by the
// "$luettu" builtin to evaluate what the user types at a read prompt.
func (e *Evaluator) EvalExpression(line string) (tree.Node, error) {
	words := lexer.Lex(line, e.Analyzer)
	p := parser.New(words, e.Store.Free(), e.Magic, &e.Counter)
	eq, err := p.ParseEq(true)
	if err != nil {
		return nil, stopWrap(err)
	}
	if !eq.IsQuery() {
		return nil, stop("expected expression, got declaration")
	}

	return e.Evals(eq.Left)
}

// EvalLine lexes and parses one line of source. If allowQueries is true
// (REPL mode) a bare pattern is parsed as a query and its value returned;
// otherwise the line is desugared through ParseWhen and every resulting
// equation is either stored (a "#olla" definition) or dropped ("#esittää"
// equations are not stored). It returns the evaluated
// result of a query, or nil if the line defined something instead.
func (e *Evaluator) EvalLine(line string, allowQueries bool) (tree.Node, error) {
	words := lexer.Lex(line, e.Analyzer)
	if len(words) == 0 {
		return nil, nil
	}

	var eqs []*store.Equation
	if allowQueries {
		p := parser.New(words, e.Store.Free(), e.Magic, &e.Counter)
		eq, err := p.ParseEq(true)
		if err != nil {
			return nil, stopWrap(err)
		}
		eqs = []*store.Equation{eq}
	} else {
		p := parser.New(words, e.Store.Free(), e.Magic, &e.Counter)
		parsed, err := p.ParseWhen()
		if err != nil {
			return nil, stopWrap(err)
		}
		eqs = parsed
	}

	var last tree.Node
	for _, eq := range eqs {
		if e.Debug && e.Verbosity >= 0 {
			fmt.Fprintln(e.Stderr, eq.String())
		}
		if eq.IsQuery() {
			result, err := e.Evals(eq.Left)
			if err != nil {
				return nil, err
			}
			last = result

			continue
		}
		if eq.Operator == "#olla" {
			e.Store.Add(*eq)
		}
	}

	return last, nil
}

// EvalFile loads and evaluates every line of source, skipping blank lines
// and joining lines ending in a continuation backslash, exactly as the
// reference interpreter's evalFile does. A StopEvaluation on one line does
// not abort the remaining lines; any other error from EvalLine is returned
// at once.
func (e *Evaluator) EvalFile(lines []string) error {
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			continue
		}
		for len(line) >= 2 && line[len(line)-1] == '\\' && i+1 < len(lines) {
			line = line[:len(line)-1]
			i++
			line += lines[i]
		}
		if _, err := e.EvalLine(line, false); err != nil {
			if _, fatal := err.(*ErrStopEvaluation); fatal {
				continue
			}

			return err
		}
	}

	return nil
}
