// Package store holds the live rule base an evaluator rewrites against: an
// ordered list of equations, tried first-match-wins (§4.5 of the spec), and
// the set of function heads equations have defined, used by the
// restricted-mode check to reject an equation whose left-hand side would
// pattern-match against a registered function head.
package store

import (
	"fmt"

	"github.com/tampio-lang/tampio/internal/tree"
)

// Equation is one "X on Y" / "X esitetään Y" definition, or a bare pattern
// query (Right == nil) typed at the REPL.
type Equation struct {
	// Operator is "#olla" for an ordinary definition or "#esittää" for a
	// presentation one; the evaluator stores only "#olla" equations.
	Operator string
	// Always is false when the equation was written with the ".epäpuhdas"
	// ("impure") marker. On a match that binds nothing, the evaluator
	// copies an Always equation's right-hand side (in restricted mode, or
	// with Evaluator.Impure) and returns a non-Always one's stored
	// right-hand side itself.
	Always bool
	Left   tree.Node
	Right  tree.Node
	// Where holds "missä"-clause bindings, also substituted into Left at
	// parse time; the evaluator adds each one to the match substitution
	// before rewriting.
	Where []WhereBinding
}

type WhereBinding struct {
	Name string
	Body tree.Node
}

// IsQuery reports whether this is a bare pattern typed at the REPL rather
// than a definition.
func (e Equation) IsQuery() bool { return e.Right == nil }

func (e Equation) String() string {
	if e.IsQuery() {
		return e.Left.String()
	}
	suffix := ""
	if len(e.Where) > 0 {
		parts := make([]string, len(e.Where))
		for i, w := range e.Where {
			parts[i] = w.Name + " = " + w.Body.String()
		}
		suffix = ", where "
		for i, p := range parts {
			if i > 0 {
				suffix += ", "
			}
			suffix += p
		}
	}
	if e.Operator == "#esittää" {
		return fmt.Sprintf("%s = %q", e.Left.String(), e.Right.String())
	}

	return e.Left.String() + " = " + e.Right.String() + suffix
}

// Store is the ordered equation list the evaluator consults; equations are
// always tried in the order they were added (§4.5: "first matching
// equation wins").
type Store struct {
	equations []Equation
	heads     []tree.Head
	free      bool
}

// New returns an empty store. free controls whether restricted-mode
// checking is enabled: in free mode equation left-hand sides may
// pattern-match against registered function arguments without restriction.
func New(free bool) *Store {
	return &Store{free: free}
}

// Free reports whether this store runs in free (unrestricted) mode.
func (s *Store) Free() bool { return s.free }

// Equations returns the live equation list. Callers must not mutate the
// returned slice's elements in place.
func (s *Store) Equations() []Equation {
	return s.equations
}

// Add appends an equation to the store. If it defines a function (rather
// than being a bare query) in restricted mode, its head is registered for
// the next Check call.
func (s *Store) Add(eq Equation) {
	if !eq.IsQuery() && !s.free {
		if call, ok := eq.Left.(*tree.Call); ok {
			s.heads = append(s.heads, call.GetHead())
		} else {
			s.heads = append(s.heads, tree.Head{Head: eq.Left})
		}
	}
	s.equations = append(s.equations, eq)
}

// FunctionMatchingError is returned by Check when a restricted-mode
// equation's left-hand side pattern-matches against the arguments or head
// of a registered function, which would let a program branch on the
// internal structure of a value it is not allowed to inspect.
type FunctionMatchingError struct {
	Left tree.Node
}

func (e *FunctionMatchingError) Error() string {
	return "pattern matching against functions is forbidden in the restricted mode (" + e.Left.String() + ")"
}

// Check re-scans every definition against every head registered so far and
// reports every restricted-mode violation found (mirroring the reference
// interpreter's own checkFunctionMatching, which rescans globally rather
// than incrementally). Callers typically call this once after loading a
// whole file, and again after each definition typed into the REPL.
func (s *Store) Check() []error {
	if s.free {
		return nil
	}
	var errs []error
	for _, eq := range s.equations {
		call, ok := eq.Left.(*tree.Call)
		if !ok {
			continue
		}
		if call.Head.ContainsFunctions(s.heads) {
			errs = append(errs, &FunctionMatchingError{Left: eq.Left})
			continue
		}
		for _, arg := range call.Args {
			if arg.ContainsFunctions(s.heads) {
				errs = append(errs, &FunctionMatchingError{Left: eq.Left})
				break
			}
		}
	}

	return errs
}
