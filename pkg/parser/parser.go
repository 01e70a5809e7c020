// Package parser turns one line's lexeme alternative sets into one or more
// equations, resolving the lexer's ambiguity as it goes via the priority
// disambiguation rule and backtracking over a handful of genuinely
// ambiguous grammatical constructs (§4.3/§4.4 of the spec).
package parser

import (
	"regexp"
	"strings"

	"github.com/tampio-lang/tampio/internal/lexeme"
	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/lexer"
	"github.com/tampio-lang/tampio/pkg/morph"
)

var conjunctionForms = []string{"&ja", "&sekä", "&tai"}
var operatorForms = []string{".ynnä:N", "$plus:N", "$miinus:N", "$modulo:N"}

var digitVarPattern = regexp.MustCompile(`^\$([1-9][0-9]*|0)$`)

// Parser consumes one line's lexeme alternative sets and produces
// equations. Counter is the shared "kun"-clause phase-name counter; share
// one Counter across a whole program so the synthesized phase names never
// collide.
type Parser struct {
	words   []lexer.Word
	pos     int
	free    bool
	magic   bool
	counter *int
}

// New builds a parser over one line's tokenization. free disables the
// restricted-mode call-head check; magic enables canonicalizing digit and
// "$nolla" variable names to Num leaves at parse time. counter, when
// non-nil, is shared with other New calls in the same session so
// "kun"-clause phase names stay unique program-wide.
func New(words []lexer.Word, free, magic bool, counter *int) *Parser {
	if counter == nil {
		counter = new(int)
	}

	return &Parser{words: words, free: free, magic: magic, counter: counter}
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.words) }

func (p *Parser) nextWord() (lexeme.Lexeme, error) {
	if p.atEnd() {
		return nil, errorf("unexpected eof")
	}
	w := lexer.Disambiguate(p.words[p.pos].Alternatives)
	p.pos++

	return w, nil
}

func (p *Parser) peekWord() (lexeme.Lexeme, bool) {
	if p.atEnd() {
		return nil, false
	}

	return lexer.Disambiguate(p.words[p.pos].Alternatives), true
}

func (p *Parser) isNext(candidates ...string) bool {
	w, ok := p.peekWord()
	if !ok {
		return false
	}
	s := w.String()
	for _, c := range candidates {
		if s == c {
			return true
		}
	}

	return false
}

func (p *Parser) mark() int        { return p.pos }
func (p *Parser) reset(mark int)   { p.pos = mark }

func asNoun(l lexeme.Lexeme) (lexeme.Noun, bool) {
	n, ok := l.(lexeme.Noun)

	return n, ok
}

// parseVar canonicalizes a sigil name to a Num leaf when magic mode allows
// it, mirroring the reference interpreter's parseVar.
func (p *Parser) parseVar(name string) tree.Node {
	if p.magic {
		if m := digitVarPattern.FindStringSubmatch(name); m != nil {
			n := 0
			for _, r := range m[1] {
				n = n*10 + int(r-'0')
			}

			return tree.NewNum(n)
		}
		if name == "$nolla" {
			return tree.NewNum(0)
		}
	}

	return tree.NewVar(name)
}

func bareSigil(l lexeme.Lexeme) string {
	s := l.String()
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}

	return s
}

func sigilIn(s string, set []string) bool {
	for _, c := range set {
		if s == c {
			return true
		}
	}

	return false
}

func checkCase(got, expected morph.Case, place string) error {
	if got != expected {
		return errorf("illegal case: expected %s, got %s (%s)", expected, got, place)
	}

	return nil
}

// ParseEq parses one "X on Y" / "X esitetään Y" equation, or (if
// allowQuery) a bare pattern with no verb, used by the REPL to evaluate an
// expression typed at the prompt.
func (p *Parser) ParseEq(allowQuery bool) (*store.Equation, error) {
	c, left, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if err := checkCase(c, morph.Nominative, left.String()); err != nil {
		return nil, err
	}

	if p.atEnd() && allowQuery {
		return &store.Equation{Operator: "", Always: true, Left: left}, nil
	}

	w, err := p.nextWord()
	if err != nil {
		return nil, err
	}
	if w.String() != "#olla" && w.String() != "#esittää" {
		return nil, errorf("expected 'on' or 'esitetään' (at %s)", w.String())
	}

	always := true
	if p.isNext(".epäpuhdas:N") {
		p.pos++
		always = false
	}

	c2, right, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if err := checkCase(c2, morph.Nominative, right.String()); err != nil {
		return nil, err
	}

	var where []store.WhereBinding
	if p.isNext("?mikä:S_") {
		p.pos++
		varW, err := p.nextWord()
		if err != nil {
			return nil, err
		}
		nv, ok := asNoun(varW)
		if !ok {
			return nil, errorf("expected noun (%s)", varW.String())
		}
		if err := checkCase(nv.Case, morph.Nominative, varW.String()); err != nil {
			return nil, err
		}
		varName := nv.Sigil()

		w2, err := p.nextWord()
		if err != nil {
			return nil, err
		}
		if w2.String() != "#olla" {
			return nil, errorf("expected 'on' (at %s)", w2.String())
		}

		c3, body, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if err := checkCase(c3, morph.Nominative, body.String()); err != nil {
			return nil, err
		}

		where = append(where, store.WhereBinding{Name: varName, Body: body})
		left = left.Substitute(map[string]tree.Node{varName: body}, map[*tree.Call]*tree.Call{})
	}

	return &store.Equation{Operator: w.String(), Always: always, Left: left, Right: right, Where: where}, nil
}

// ParseWhen parses one top-level statement, desugaring a trailing chain of
// "kun X on Y" clauses into the intermediate phase-function equations the
// evaluator needs to thread each witness value to the next clause (§9a).
// A statement with no "kun" clauses (or whose head equation is a query or
// an impure definition) parses as exactly one equation.
func (p *Parser) ParseWhen() ([]*store.Equation, error) {
	eq, err := p.ParseEq(false)
	if err != nil {
		return nil, err
	}
	if eq.Operator != "#olla" || !eq.Always {
		return []*store.Equation{eq}, nil
	}

	var eqs []*store.Equation
	var variables []*tree.Var
	for p.isNext("&kun") {
		p.pos++
		*p.counter++

		when, err := p.ParseEq(false)
		if err != nil {
			return nil, err
		}

		arg := makeArgChain(append([]tree.Node{createEqName(*p.counter + 1)}, varsToNodes(variables)...))
		right, err := tree.NewCall(tree.NewVar("$liitetty"), []tree.Node{when.Right, arg}, morph.Essive, []morph.Case{morph.CaseNone, morph.Illative}, p.free)
		if err != nil {
			return nil, err
		}

		if len(eqs) == 0 {
			eqs = append(eqs, &store.Equation{Operator: "#olla", Always: true, Left: eq.Left, Right: right, Where: when.Where})
		} else {
			name := createEqName(*p.counter)
			arg := makeArgChain(append([]tree.Node{tree.NewVar("$m")}, varsToNodes(variables[1:])...))
			left, err := tree.NewCall(name, []tree.Node{variables[0], arg}, morph.Essive, []morph.Case{morph.Nominative, morph.Allative}, p.free)
			if err != nil {
				return nil, err
			}
			eqs = append(eqs, &store.Equation{Operator: "#olla", Always: true, Left: left, Right: right, Where: when.Where})
		}

		whenVar, ok := when.Left.(*tree.Var)
		if !ok {
			return nil, errorf("expected identifier after 'kun', got a more complex expression (%s)", when.Left.String())
		}
		variables = append([]*tree.Var{whenVar}, variables...)
	}

	if len(eqs) == 0 {
		return []*store.Equation{eq}, nil
	}

	*p.counter++
	name := createEqName(*p.counter)
	arg := makeArgChain(append([]tree.Node{tree.NewVar("$m")}, varsToNodes(variables[1:])...))
	left, err := tree.NewCall(name, []tree.Node{variables[0], arg}, morph.Essive, []morph.Case{morph.Nominative, morph.Allative}, p.free)
	if err != nil {
		return nil, err
	}
	eqs = append(eqs, &store.Equation{Operator: "#olla", Always: true, Left: left, Right: eq.Right, Where: eq.Where})

	return eqs, nil
}

func varsToNodes(vars []*tree.Var) []tree.Node {
	out := make([]tree.Node, len(vars))
	for i, v := range vars {
		out[i] = v
	}

	return out
}

// createEqName synthesizes the phase-name variable a desugared "kun"
// clause chain calls into, e.g. "$<vaihe 3>". It always inflects as the
// fixed alias "$funktio" ("function") rather than its own unpronounceable
// name, matching the reference interpreter's own odd but deliberate choice
// there.
func createEqName(counter int) *tree.Var {
	return tree.NewAliasedVar("$<vaihe "+itoa(counter)+">", "$funktio")
}

// makeArgChain right-folds a list of argument nodes into a chain of binary
// "ja" (and) calls, the internal representation of a phase function's
// multi-argument closure.
func makeArgChain(args []tree.Node) tree.Node {
	arg := args[len(args)-1]
	for i := len(args) - 2; i >= 0; i-- {
		arg, _ = tree.NewCall(tree.NewVar("&ja"), []tree.Node{args[i], arg}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, true)
	}

	return arg
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}

// parsePattern parses a noun-phrase pattern, folding in any
// conjunction/binary-operator chain that follows it (§4.3).
func (p *Parser) parsePattern() (morph.Case, tree.Node, error) {
	c, root, err := p.parseUnary(true)
	if err != nil {
		return 0, nil, err
	}

	for {
		w, ok := p.peekWord()
		if !ok {
			break
		}
		s := w.String()
		isConj := sigilIn(s, conjunctionForms)
		if !isConj && !sigilIn(s, operatorForms) {
			break
		}
		p.pos++

		case2, arg, err := p.parseUnary(true)
		if err != nil {
			return 0, nil, err
		}
		if isConj {
			if err := checkCase(case2, c, s); err != nil {
				return 0, nil, err
			}
		}
		c = case2

		newRoot, err := tree.NewCall(p.parseVar(bareSigil(w)), []tree.Node{root, arg}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, p.free)
		if err != nil {
			return 0, nil, err
		}
		root = newRoot
	}

	return c, root, nil
}

// parseUnary parses a single noun phrase: a base noun, any immediate
// essive-headed calls attached to it, any chain of genitive-owner prefix
// words, and (when the accumulated case permits it) a reverse-order
// argument attachment.
func (p *Parser) parseUnary(allowReverse bool) (morph.Case, tree.Node, error) {
	w, err := p.nextWord()
	if err != nil {
		return 0, nil, err
	}
	nw, ok := asNoun(w)
	if !ok {
		return 0, nil, errorf("expected noun (at %s)", w.String())
	}

	root := p.parseVar(nw.Sigil())
	root, err = p.parseEssive(root, false)
	if err != nil {
		return 0, nil, err
	}

	cur := nw
	for cur.Case == morph.Genitive {
		next, err := p.nextWord()
		if err != nil {
			return 0, nil, err
		}
		newRoot, err := tree.NewCall(p.parseVar(bareSigil(next)), []tree.Node{root}, morph.CaseNone, []morph.Case{morph.Genitive}, p.free)
		if err != nil {
			return 0, nil, err
		}
		root = newRoot
		nextNoun, ok := asNoun(next)
		if !ok {
			return 0, nil, errorf("expected noun, got %s", next.String())
		}
		cur = nextNoun
	}

	if cur.Case != morph.Nominative && cur.Case != morph.Genitive && p.isNext(conjunctionForms...) {
		save := p.mark()
		conjW, _ := p.peekWord()
		p.pos++

		case2, arg, err := p.parseUnary(true)
		if err == nil && case2 == cur.Case {
			newRoot, cerr := tree.NewCall(p.parseVar(bareSigil(conjW)), []tree.Node{root, arg}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, p.free)
			if cerr != nil {
				return 0, nil, cerr
			}
			root = newRoot
		} else {
			p.reset(save)
		}
	} else {
		root, err = p.parseEssive(root, allowReverse)
		if err != nil {
			return 0, nil, err
		}
	}

	return cur.Case, root, nil
}

// parseEssive attaches any essive-cased ("olento") function-call noun
// phrases that immediately follow root, and, when allowReverse permits it,
// a single reverse-order argument construction (§4.3's two supported call
// syntaxes).
func (p *Parser) parseEssive(root tree.Node, allowReverse bool) (tree.Node, error) {
	for {
		w, ok := p.peekWord()
		// "missä" opens ParseEq's where clause; it is never an argument.
		if !ok || p.isNext("?mikä:S_") {
			break
		}
		nw, isNoun := asNoun(w)
		if !isNoun {
			break
		}
		save := p.mark()
		p.pos++

		var owners []lexeme.Noun
		cur := nw
		for cur.Case == morph.Genitive {
			owners = append(owners, cur)
			next, err := p.nextWord()
			if err != nil {
				return nil, err
			}
			nextNoun, ok := asNoun(next)
			if !ok {
				return nil, errorf("expected noun, got %s", next.String())
			}
			cur = nextNoun
		}

		switch {
		case cur.Case == morph.Essive:
			var args []tree.Node
			var argCases []morph.Case
			if peeked, ok := p.peekWord(); ok {
				if _, isNoun := asNoun(peeked); isNoun {
					innerMark := p.mark()
					argCase, arg, err := p.parseUnary(false)
					if err != nil {
						return nil, err
					}
					if argCase == morph.Nominative || argCase == morph.Genitive || argCase == morph.Essive {
						p.reset(innerMark)
					} else {
						args = append(args, arg)
						argCases = append(argCases, argCase)
					}
				}
			}
			root2, err := p.applyOwners(p.parseVar(cur.Sigil()), owners)
			if err != nil {
				return nil, err
			}
			allArgs := append([]tree.Node{root}, args...)
			allCases := append([]morph.Case{morph.CaseNone}, argCases...)
			newRoot, err := tree.NewCall(root2, allArgs, morph.Essive, allCases, p.free)
			if err != nil {
				return nil, err
			}
			root = newRoot

		case allowReverse && cur.Case != morph.Nominative && cur.Case != morph.Genitive:
			caseX := cur.Case
			arg, err := p.applyOwners(p.parseVar(cur.Sigil()), owners)
			if err != nil {
				return nil, err
			}

			if p.isNext(conjunctionForms...) {
				cWord, err := p.nextWord()
				if err != nil {
					return nil, err
				}
				owners2, w2, err := p.parseOwners()
				if err != nil {
					return nil, err
				}
				if err := checkCase(w2.Case, caseX, w2.String()); err != nil {
					return nil, err
				}
				arg2, err := p.applyOwners(p.parseVar(w2.Sigil()), owners2)
				if err != nil {
					return nil, err
				}
				combined, err := tree.NewCall(p.parseVar(bareSigil(cWord)), []tree.Node{arg, arg2}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, p.free)
				if err != nil {
					return nil, err
				}
				arg = combined
			}

			owners3, w3, err := p.parseOwners()
			if err != nil {
				return nil, err
			}
			if err := checkCase(w3.Case, morph.Essive, w3.String()); err != nil {
				return nil, err
			}
			root2, err := p.applyOwners(p.parseVar(w3.Sigil()), owners3)
			if err != nil {
				return nil, err
			}
			newRoot, err := tree.NewCall(root2, []tree.Node{root, arg}, morph.Essive, []morph.Case{morph.CaseNone, caseX}, p.free)
			if err != nil {
				return nil, err
			}
			root = newRoot

		default:
			p.reset(save)

			return root, nil
		}
	}

	return root, nil
}

// parseOwners consumes a chain of genitive-cased owner words followed by
// the non-genitive noun they modify.
func (p *Parser) parseOwners() ([]lexeme.Noun, lexeme.Noun, error) {
	var owners []lexeme.Noun
	w, err := p.nextWord()
	if err != nil {
		return nil, lexeme.Noun{}, err
	}
	nw, ok := asNoun(w)
	if !ok {
		return nil, lexeme.Noun{}, errorf("expected noun, got %s", w.String())
	}
	for nw.Case == morph.Genitive {
		owners = append(owners, nw)
		w2, err := p.nextWord()
		if err != nil {
			return nil, lexeme.Noun{}, err
		}
		nw2, ok := asNoun(w2)
		if !ok {
			return nil, lexeme.Noun{}, errorf("expected noun, got %s", w2.String())
		}
		nw = nw2
	}

	return owners, nw, nil
}

// applyOwners wraps root in a right-nested chain of genitive-argument
// calls, one per owner, innermost owner first. In restricted mode each
// step after the first makes the head of the new call the previous call
// itself; NewCall's own restricted-head check is what actually rejects
// that, exactly as it does in the reference interpreter.
func (p *Parser) applyOwners(root tree.Node, owners []lexeme.Noun) (tree.Node, error) {
	for i := len(owners) - 1; i >= 0; i-- {
		next, err := tree.NewCall(root, []tree.Node{p.parseVar(owners[i].Sigil())}, morph.CaseNone, []morph.Case{morph.Genitive}, p.free)
		if err != nil {
			return nil, err
		}
		root = next
	}

	return root, nil
}
