package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/lexer"
	"github.com/tampio-lang/tampio/pkg/morph"
	"github.com/tampio-lang/tampio/pkg/parser"
)

func parseEquation(t *testing.T, line string, free, magic bool) *store.Equation {
	t.Helper()
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex(line, an)
	p := parser.New(words, free, magic, nil)
	eq, err := p.ParseEq(false)
	require.NoError(t, err)

	return eq
}

func TestParseEqSimpleDefinition(t *testing.T) {
	eq := parseEquation(t, "talo on iso.", false, true)
	assert.Equal(t, "#olla", eq.Operator)
	assert.True(t, eq.Always)
	assert.Equal(t, tree.NewVar("$talo"), eq.Left)
	assert.Equal(t, tree.NewVar("$iso"), eq.Right)
}

// "x:n seuraaja" parses to Call($seuraaja, [x], CaseNone, [Genitive]) — the
// genitive-owner loop wraps the preceding word around the following one.
func TestParseEqSeuraajaGenitiveOwner(t *testing.T) {
	eq := parseEquation(t, "x:n seuraaja on y.", false, true)
	want, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$x")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(eq.Left), "got %s", eq.Left.String())
}

// "n:n seuraajan tekijä" chains the genitive-owner loop twice: "seuraajan"
// is itself genitive-cased, so consuming it re-enters the loop before
// "tekijä" (nominative) ends it.
func TestParseEqDoubleGenitiveChain(t *testing.T) {
	eq := parseEquation(t, "n:n seuraajan tekijä on s.", false, true)
	inner, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$n")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	want, err := tree.NewCall(tree.NewVar("$tekijä"), []tree.Node{inner}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(eq.Left), "got %s", eq.Left.String())
}

// "x:n lisättynä t:hen pituus" requires the first word to carry explicit
// genitive case even though it is also essive-attached: parseUnary's
// genitive-owner loop is gated on the ORIGINAL first word's case, captured
// before the essive-attachment step overwrites the working root.
func TestParseEqGenitiveOwnerOverEssiveCall(t *testing.T) {
	eq := parseEquation(t, "x:n lisättynä t:hen pituus on s.", false, true)
	essive, err := tree.NewCall(tree.NewVar("$lisätty"), []tree.Node{tree.NewVar("$x"), tree.NewVar("$t")}, morph.Essive, []morph.Case{morph.CaseNone, morph.Illative}, false)
	require.NoError(t, err)
	want, err := tree.NewCall(tree.NewVar("$pituus"), []tree.Node{essive}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(eq.Left), "got %s", eq.Left.String())
}

// "x kerrottuna y:n seuraajalla" is an essive call whose second argument is
// itself a genitive-owner chain, cased Adessive.
func TestParseEqEssiveWithGenitiveArgument(t *testing.T) {
	eq := parseEquation(t, "x kerrottuna y:n seuraajalla on s.", false, true)
	owner, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$y")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	want, err := tree.NewCall(tree.NewVar("$kerrottu"), []tree.Node{tree.NewVar("$x"), owner}, morph.Essive, []morph.Case{morph.CaseNone, morph.Adessive}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(eq.Left), "got %s", eq.Left.String())
}

// "x:n seuraaja miinus y:n seuraaja" is parsePattern's own infix-operator
// loop, not an essive reverse-order call; "miinus" is always bare
// Nominative so parseUnary never swallows it.
func TestParseEqInfixOperator(t *testing.T) {
	eq := parseEquation(t, "x:n seuraaja miinus y:n seuraaja on s.", false, true)
	left, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$x")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	right, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$y")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)
	want, err := tree.NewCall(tree.NewVar("$miinus"), []tree.Node{left, right}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(eq.Left), "got %s", eq.Left.String())
}

// Digit and "nolla" sigils canonicalize to Num leaves only when magic is
// enabled; disabled, they stay ordinary pattern-matching Vars.
func TestParseVarMagicCanonicalization(t *testing.T) {
	magic := parseEquation(t, "x on 5.", false, true)
	assert.Equal(t, tree.NewNum(5), magic.Right)

	noMagic := parseEquation(t, "x on 5.", false, false)
	assert.Equal(t, tree.NewVar("$5"), noMagic.Right)
}

// A query with no trailing verb is only accepted when allowQuery is true.
func TestParseEqBareQuery(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("talo", an)
	p := parser.New(words, false, true, nil)
	eq, err := p.ParseEq(true)
	require.NoError(t, err)
	assert.True(t, eq.IsQuery())
	assert.Equal(t, tree.NewVar("$talo"), eq.Left)
}

func TestParseEqRejectsGarbage(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("&& !!", an)
	p := parser.New(words, false, true, nil)
	_, err := p.ParseEq(false)
	assert.Error(t, err)
}

// A "missä" clause binds a name on the left-hand side at parse time and
// records it in Where, which the evaluator binds on a match.
func TestParseEqWhereClause(t *testing.T) {
	eq := parseEquation(t, "x on s, missä s on 1.", false, true)
	require.Len(t, eq.Where, 1)
	assert.Equal(t, "$s", eq.Where[0].Name)
	assert.Equal(t, tree.NewNum(1), eq.Where[0].Body)
}
