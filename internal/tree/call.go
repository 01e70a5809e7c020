package tree

import (
	"strings"

	"github.com/tampio-lang/tampio/pkg/morph"
)

// Conjunctions and BinaryOperators name the sigil forms Inflect renders as
// infix expressions instead of the ordinary noun-phrase chain, matching
// CONJUNCTIONS and BINARY_OPERATORS from the reference interpreter.
var (
	Conjunctions   = []string{"&ja", "&sekä", "&tai"}
	BinaryOperators = []string{".ynnä", "$plus", "$miinus", "$modulo"}
)

func sigilIn(s string, set []string) bool {
	for _, c := range set {
		if s == c {
			return true
		}
	}

	return false
}

// Head identifies a function by its head lexeme and the grammatical cases
// its call site requires: the (head, headCase, argCases) triple the
// restricted-mode check and the rule store both key on. It cannot be a map
// key directly (Head may embed a *Call), so stores compare it with Equal
// and keep registered heads in a slice.
//
// IsCall distinguishes a call-shaped registration ("X:n seuraaja on ...")
// from a bare-noun one ("talo on iso."): the reference interpreter keeps
// these in the same FUNCTIONS set but as values of different Python types,
// so a bare noun and a zero-argument call never accidentally compare equal
// to each other; IsCall reproduces that distinction explicitly.
type Head struct {
	Head     Node
	HeadCase morph.Case
	ArgCases []morph.Case
	IsCall   bool
}

// Equal reports whether two Heads name the same function signature.
func (h Head) Equal(other Head) bool {
	if h.IsCall != other.IsCall {
		return false
	}
	if h.IsCall {
		if h.HeadCase != other.HeadCase || len(h.ArgCases) != len(other.ArgCases) {
			return false
		}
		for i := range h.ArgCases {
			if h.ArgCases[i] != other.ArgCases[i] {
				return false
			}
		}
	}
	if h.Head == nil || other.Head == nil {
		return h.Head == nil && other.Head == nil
	}

	return h.Head.Equal(other.Head)
}

// Call is a function application: head applied to args, where head and
// each argument carry the grammatical case the call site used to attach
// them (a Call's case shape is as much a part of its identity as its
// head and arguments are — "talon seuraaja" and "taloa seuraaja" are
// different calls).
type Call struct {
	Head     Node
	Args     []Node
	HeadCase morph.Case
	ArgCases []morph.Case
}

// NewCall builds a function application. In restricted mode (free is
// false) the head must be a bare Var, matching the reference
// interpreter's constructor-time check that rejects calls whose head is
// itself a compound expression unless free mode is active.
func NewCall(head Node, args []Node, headCase morph.Case, argCases []morph.Case, free bool) (*Call, error) {
	if head != nil && !free {
		if _, ok := head.(*Var); !ok {
			return nil, &RestrictedHeadError{Head: head}
		}
	}

	return &Call{Head: head, Args: args, HeadCase: headCase, ArgCases: argCases}, nil
}

// RestrictedHeadError is returned by NewCall when restricted mode forbids
// the call's head shape.
type RestrictedHeadError struct {
	Head Node
}

func (e *RestrictedHeadError) Error() string {
	return "syntax error: the head of the call must be a word in the restricted mode (" + e.Head.String() + ")"
}

// GetHead returns the function-head triple this call would register under
// if it became the left-hand side of an equation.
func (c *Call) GetHead() Head {
	return Head{Head: c.Head, HeadCase: c.HeadCase, ArgCases: append([]morph.Case(nil), c.ArgCases...), IsCall: true}
}

// HeadIs reports whether this call's head matches head exactly (by
// structural equality) and the case shape matches headCase/argCases.
func (c *Call) HeadIs(head Node, headCase morph.Case, argCases []morph.Case) bool {
	if c.HeadCase != headCase || len(c.ArgCases) != len(argCases) {
		return false
	}
	for i := range argCases {
		if c.ArgCases[i] != argCases[i] {
			return false
		}
	}

	return c.Head.Equal(head)
}

// HeadNameIs is the common case of HeadIs where the head is a bare Var
// lemma, e.g. checking for the successor pattern "$seuraaja".
func (c *Call) HeadNameIs(name string, headCase morph.Case, argCases []morph.Case) bool {
	v, ok := c.Head.(*Var)

	return ok && v.Name == name && c.HeadIs(v, headCase, argCases)
}

func (c *Call) String() string {
	return c.stringVisited(map[*Call]int{})
}

func (c *Call) stringVisited(seen map[*Call]int) string {
	if i, ok := seen[c]; ok {
		return "\\" + itoa(i)
	}
	seen[c] = len(seen)

	var b strings.Builder
	b.WriteString(headString(c.Head, seen))
	b.WriteString(":")
	b.WriteString(c.HeadCase.Abbreviation())
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(headString(arg, seen))
		b.WriteString(":")
		b.WriteString(c.ArgCases[i].Abbreviation())
	}
	b.WriteString(")")

	return b.String()
}

// headString renders a child node for Call.String, descending into nested
// Calls with the same cycle-safe visited set.
func headString(n Node, seen map[*Call]int) string {
	if call, ok := n.(*Call); ok {
		return call.stringVisited(seen)
	}

	return n.String()
}

// Equal is structural equality; it delegates to the cycle-safe SafeEqual
// with a fresh visited set.
func (c *Call) Equal(other Node) bool {
	return c.SafeEqual(other, map[*Call]bool{})
}

// SafeEqual is cycle-safe structural equality: two Call nodes already
// compared earlier in the traversal are assumed equal without recursing
// again.
func (c *Call) SafeEqual(other Node, visited map[*Call]bool) bool {
	o, ok := other.(*Call)
	if !ok {
		return false
	}
	if visited[c] {
		return true
	}
	visited[c] = true
	if len(c.Args) != len(o.Args) || c.HeadCase != o.HeadCase {
		return false
	}
	for i := range c.ArgCases {
		if c.ArgCases[i] != o.ArgCases[i] {
			return false
		}
	}
	if !safeEqualNode(c.Head, o.Head, visited) {
		return false
	}
	for i := range c.Args {
		if !safeEqualNode(c.Args[i], o.Args[i], visited) {
			return false
		}
	}

	return true
}

func safeEqualNode(a, b Node, visited map[*Call]bool) bool {
	if ac, ok := a.(*Call); ok {
		return ac.SafeEqual(b, visited)
	}

	return a.Equal(b)
}

func (c *Call) Copy(memo map[*Call]*Call) Node {
	if existing, ok := memo[c]; ok {
		return existing
	}
	copied := &Call{HeadCase: c.HeadCase, ArgCases: append([]morph.Case(nil), c.ArgCases...)}
	memo[c] = copied
	copied.Head = c.Head.Copy(memo)
	copied.Args = make([]Node, len(c.Args))
	for i, arg := range c.Args {
		copied.Args[i] = arg.Copy(memo)
	}

	return copied
}

func (c *Call) Substitute(subs map[string]Node, memo map[*Call]*Call) Node {
	if existing, ok := memo[c]; ok {
		return existing
	}
	copied := &Call{HeadCase: c.HeadCase, ArgCases: append([]morph.Case(nil), c.ArgCases...)}
	memo[c] = copied
	copied.Head = c.Head.Substitute(subs, memo)
	copied.Args = make([]Node, len(c.Args))
	for i, arg := range c.Args {
		copied.Args[i] = arg.Substitute(subs, memo)
	}

	return copied
}

// Match attempts to match this call, used as a pattern, against other. A
// call pattern whose head is the successor lemma "$seuraaja" also matches
// any positive Num by peeling off one successor (the Peano/native-integer
// bridge).
func (c *Call) Match(other Node) (map[string]Node, bool) {
	if o, ok := other.(*Call); ok {
		if c.HeadCase != o.HeadCase || len(c.Args) != len(o.Args) {
			return nil, false
		}
		subs, ok := c.Head.Match(o.Head)
		if !ok {
			return nil, false
		}
		for i := range c.Args {
			if c.ArgCases[i] != o.ArgCases[i] {
				return nil, false
			}
			argSubs, ok := c.Args[i].Match(o.Args[i])
			if !ok {
				return nil, false
			}
			for key, val := range argSubs {
				if existing, seen := subs[key]; seen {
					if !safeEqualNode(existing, val, map[*Call]bool{}) {
						return nil, false
					}
				}
				subs[key] = val
			}
		}

		return subs, true
	}
	if n, ok := other.(*Num); ok && n.Value > 0 {
		if c.HeadNameIs("$seuraaja", morph.CaseNone, []morph.Case{morph.Genitive}) {
			return c.Args[0].Match(&Num{Value: n.Value - 1})
		}
	}

	return nil, false
}

func (c *Call) Inflect(cs morph.Case, an morph.Analyzer, visited map[*Call]bool) string {
	if visited[c] {
		return "..." + cs.EllipsisSuffix()
	}
	visited = cloneVisited(visited)
	visited[c] = true

	if v, ok := c.Head.(*Var); ok && sigilIn(v.Sigil(), Conjunctions) {
		return c.Args[0].Inflect(cs, an, visited) + " " + v.Name[1:] + " " + c.Args[1].Inflect(cs, an, visited)
	}
	if v, ok := c.Head.(*Var); ok && sigilIn(v.Sigil(), BinaryOperators) {
		return c.Args[0].Inflect(morph.Nominative, an, visited) + " " + v.Name[1:] + " " + c.Args[1].Inflect(cs, an, visited)
	}
	if c.HeadNameIs("$lisätty", morph.Essive, []morph.Case{morph.CaseNone, morph.Illative}) {
		return c.inflectList(cs, an, visited)
	}
	if c.HeadCase == morph.Essive {
		if cs != morph.Genitive && len(c.Args) == 2 && c.Args[1].ShouldReverseOrder() {
			return c.Args[0].Inflect(cs, an, visited) + " " +
				c.Args[1].Inflect(c.ArgCases[1], an, visited) + " " +
				c.Head.Inflect(morph.Essive, an, visited)
		}
		a := c.Args[0].Inflect(cs, an, visited) + " " + c.Head.Inflect(morph.Essive, an, visited)
		if len(c.Args) == 2 {
			a += " " + c.Args[1].Inflect(c.ArgCases[1], an, visited)
		}

		return a
	}

	return c.Args[0].Inflect(morph.Genitive, an, visited) + " " + c.Head.Inflect(cs, an, visited)
}

// inflectList renders the right-nested "lisätty ... tyhjyyteen" cons chain
// as a bracketed list literal, the one piece of special-cased display
// syntactic sugar the interpreter offers (§4.8).
func (c *Call) inflectList(cs morph.Case, an morph.Analyzer, visited map[*Call]bool) string {
	elements := []Node{c.Args[0]}
	var tail Node = c.Args[1]
	for {
		tc, ok := tail.(*Call)
		if !ok || !tc.HeadNameIs("$lisätty", morph.Essive, []morph.Case{morph.CaseNone, morph.Illative}) {
			break
		}
		elements = append(elements, tc.Args[0])
		tail = tc.Args[1]
	}
	tailString := ""
	if v, ok := tail.(*Var); !ok || v.Name != "$tyhjyys" {
		tailString = " ++ " + tail.Inflect(morph.Nominative, an, visited)
	}

	var parts []string
	for _, e := range elements {
		parts = append(parts, e.Inflect(morph.Nominative, an, visited))
	}

	return `"` + an.Inflect("$lista", cs) + `" [` + strings.Join(parts, ", ") + `]` + tailString
}

func cloneVisited(v map[*Call]bool) map[*Call]bool {
	out := make(map[*Call]bool, len(v)+1)
	for k := range v {
		out[k] = true
	}

	return out
}

// ShouldReverseOrder reports whether, used as a Call's trailing argument,
// this call's own display wants the "object is verb complement" order
// flipped — true only when this call's own head is not essive-cased, it
// has more than one argument, and its last argument recursively asks for
// the flip.
func (c *Call) ShouldReverseOrder() bool {
	return c.HeadCase != morph.Essive && len(c.Args) > 1 && c.Args[len(c.Args)-1].ShouldReverseOrder()
}

// ContainsFunctions reports whether this call's own head-and-case shape
// matches a registered call-shaped head, or any argument does (recursively).
// It does not match against bare-noun registrations — only Call.Head's own
// leaf identity can do that, via Var/Num/World.ContainsFunctions.
func (c *Call) ContainsFunctions(heads []Head) bool {
	self := c.GetHead()
	for _, h := range heads {
		if h.IsCall && h.Equal(self) {
			return true
		}
	}
	for _, arg := range c.Args {
		if arg.ContainsFunctions(heads) {
			return true
		}
	}

	return false
}

// Sigil reports the canonical "$name"/"&name"/".name" form of a bare
// Var's name, used to check it against Conjunctions/BinaryOperators. Plain
// Vars are already stored in that sigil form, so Sigil is the identity;
// it exists so call.go does not need to import the lexeme package just
// for this one membership test.
func (v *Var) Sigil() string { return v.Name }
