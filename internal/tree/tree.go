// Package tree implements the single data structure the whole interpreter
// is built around: an expression tree that is simultaneously source-level
// AST, runtime value, and rewrite-rule pattern (§3 of the spec). A Node is
// one of Var, Num, World, or Call.
//
// Two operations recur on every Node and always thread an explicit identity
// set of the *Call nodes already visited, because these trees are DAGs, not
// always trees: copying or comparing a shared subexpression must not
// recurse forever. Go has no implicit call-stack inspection, so the visited
// set is passed as a plain parameter rather than relying on recursion
// depth or object identity caches hidden inside the runtime.
package tree

import "github.com/tampio-lang/tampio/pkg/morph"

// Node is an expression tree node: a pattern to match against, a value
// produced by evaluation, or both at once.
type Node interface {
	// String renders the node's canonical internal debug form (sigil name
	// plus case abbreviations), matching the reference interpreter's str().
	String() string
	// Equal is plain structural equality; safe to call on a Node that
	// cannot contain a Call (Var, Num, World), and on two Call trees known
	// not to share cyclic structure. Call.Equal delegates to SafeEqual
	// with a fresh visited set so callers never need to worry about it.
	Equal(other Node) bool
	// Copy returns a structurally identical but independent tree, reusing
	// memo to preserve sharing (and terminate on cycles) the same way the
	// source tree shared it.
	Copy(memo map[*Call]*Call) Node
	// Substitute replaces every Var whose name is a key of subs with the
	// bound Node, preserving sharing/cycles via memo.
	Substitute(subs map[string]Node, memo map[*Call]*Call) Node
	// Match attempts to match the receiver, used as a rewrite-rule
	// pattern, against other, a concrete (callee-side) subject tree. It
	// returns the substitution the match would require and whether the
	// match succeeded.
	Match(other Node) (map[string]Node, bool)
	// Inflect renders the node as Finnish surface text in the requested
	// grammatical case, used both for display (:debug, print) and error
	// messages.
	Inflect(c morph.Case, an morph.Analyzer, visited map[*Call]bool) string
	// ShouldReverseOrder reports whether this node, used as the last
	// argument of an essive-headed Call, wants the "X is A, B of C" word
	// order reversed to "X is B of C, A" (used for multi-argument function
	// calls rendered as an object-then-verb-then-complement chain).
	ShouldReverseOrder() bool
	// ContainsFunctions reports whether this subtree calls a head
	// registered in heads anywhere, used by the restricted-mode check.
	ContainsFunctions(heads []Head) bool
}

// Var is a bound or free variable reference, named by its sigil-prefixed
// lemma (e.g. "$x", "@luvut", "?mikä"). Alias, when set, is the lemma the
// variable inflects as instead of its own name, displayed in quotes; the
// parser's synthesized "kun"-clause phase names are the aliased Vars.
type Var struct {
	Name     string
	Alias    string
	HasAlias bool
}

// NewVar builds an ordinary, non-aliased variable reference.
func NewVar(name string) *Var { return &Var{Name: name} }

// NewAliasedVar builds a Var that inflects the literal string alias instead
// of looking up name in the analyzer's vocabulary.
func NewAliasedVar(name, alias string) *Var {
	return &Var{Name: name, Alias: alias, HasAlias: true}
}

func (v *Var) String() string { return v.Name }

func (v *Var) Equal(other Node) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

func (v *Var) Copy(memo map[*Call]*Call) Node { return &Var{Name: v.Name, Alias: v.Alias, HasAlias: v.HasAlias} }

func (v *Var) Substitute(subs map[string]Node, memo map[*Call]*Call) Node {
	if bound, ok := subs[v.Name]; ok {
		return bound
	}

	return v
}

// Match implements the three pattern forms a Var can be used as: a true
// wildcard pattern var (a sigil followed by exactly one non-digit
// character, see isPatternVar; longer lemmas must match literally), a bare numeral
// name ("$3") matching the corresponding Num, and the canonical zero alias
// "$nolla" matching Num(0).
func (v *Var) Match(other Node) (map[string]Node, bool) {
	if isPatternVar(v.Name) {
		return map[string]Node{v.Name: other}, true
	}
	switch o := other.(type) {
	case *Var:
		if v.Name == o.Name {
			return map[string]Node{}, true
		}
	case *Num:
		if v.Name == "$nolla" && o.Value == 0 {
			return map[string]Node{}, true
		}
		if v.Name == numeralVarName(o.Value) {
			return map[string]Node{}, true
		}
	}

	return nil, false
}

func (v *Var) Inflect(c morph.Case, an morph.Analyzer, visited map[*Call]bool) string {
	if v.HasAlias {
		return `"` + an.Inflect(v.Alias, c) + `"`
	}

	return an.Inflect(v.Name, c)
}

func (v *Var) ShouldReverseOrder() bool { return true }

// ContainsFunctions reports whether v itself was registered as a bare
// (non-call) function head, e.g. by the definition "talo on iso.".
func (v *Var) ContainsFunctions(heads []Head) bool { return isRegisteredBareHead(v, heads) }

// isPatternVar reports whether name is a genuine pattern variable: a
// single sigil character followed by exactly one non-digit letter, e.g.
// "$x". Tampio equations bind pattern variables using one-letter names for
// exactly this reason; any longer lemma ("$talo", "$seuraaja") is a fixed
// word the match must agree with literally, not a variable to bind.
func isPatternVar(name string) bool {
	r := []rune(name)
	if len(r) != 2 {
		return false
	}

	return r[1] < '0' || r[1] > '9'
}

func numeralVarName(n int) string {
	return "$" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// Num is a native-integer leaf, the evaluator's bridge between Peano
// successor patterns (see Call.Match) and efficient arithmetic.
type Num struct {
	Value int
}

func NewNum(n int) *Num { return &Num{Value: n} }

func (n *Num) String() string {
	if n.Value == 0 {
		return "$nolla"
	}

	return "$" + itoa(n.Value)
}

func (n *Num) Equal(other Node) bool {
	o, ok := other.(*Num)
	return ok && n.Value == o.Value
}

func (n *Num) Copy(memo map[*Call]*Call) Node { return &Num{Value: n.Value} }

func (n *Num) Substitute(subs map[string]Node, memo map[*Call]*Call) Node { return n }

func (n *Num) Match(other Node) (map[string]Node, bool) {
	switch o := other.(type) {
	case *Num:
		if n.Value == o.Value {
			return map[string]Node{}, true
		}
	case *Var:
		if n.Value == 0 && o.Name == "$nolla" {
			return map[string]Node{}, true
		}
		if o.Name == numeralVarName(n.Value) {
			return map[string]Node{}, true
		}
	}

	return nil, false
}

func (n *Num) Inflect(c morph.Case, an morph.Analyzer, visited map[*Call]bool) string {
	if n.Value == 0 {
		return an.Inflect("$nolla", c)
	}

	return an.InflectNumber(n.Value, c)
}

func (n *Num) ShouldReverseOrder() bool { return true }

func (n *Num) ContainsFunctions(heads []Head) bool { return isRegisteredBareHead(n, heads) }

// World is the monotonically increasing I/O token threaded through every
// impure builtin call (§4.6's World-threading rule).
type World struct {
	Counter int
}

func NewWorld(counter int) *World { return &World{Counter: counter} }

func (w *World) String() string { return "$maailma(" + itoa(w.Counter) + ")" }

func (w *World) Equal(other Node) bool {
	o, ok := other.(*World)
	return ok && w.Counter == o.Counter
}

func (w *World) Copy(memo map[*Call]*Call) Node { return &World{Counter: w.Counter} }

func (w *World) Substitute(subs map[string]Node, memo map[*Call]*Call) Node { return w }

func (w *World) Match(other Node) (map[string]Node, bool) { return nil, false }

// Next returns the successor World token, produced after an impure builtin
// consumes w.
func (w *World) Next() *World { return &World{Counter: w.Counter + 1} }

func (w *World) Inflect(c morph.Case, an morph.Analyzer, visited map[*Call]bool) string {
	return `"` + an.Inflect("$maailma", c) + `"`
}

func (w *World) ShouldReverseOrder() bool { return true }

func (w *World) ContainsFunctions(heads []Head) bool { return isRegisteredBareHead(w, heads) }

// isRegisteredBareHead reports whether leaf was itself registered as a
// bare (non-call) function head.
func isRegisteredBareHead(leaf Node, heads []Head) bool {
	for _, h := range heads {
		if !h.IsCall && h.Head != nil && h.Head.Equal(leaf) {
			return true
		}
	}

	return false
}
