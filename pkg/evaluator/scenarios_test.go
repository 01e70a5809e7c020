package evaluator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/internal/prelude"
	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/evaluator"
	"github.com/tampio-lang/tampio/pkg/morph"
)

// newSession builds an Evaluator with the standard prelude already loaded,
// matching what internal/cli does before running a user's own file.
func newSession(t *testing.T, free, magic bool) *evaluator.Evaluator {
	t.Helper()

	s := store.New(free)
	e := evaluator.New(s, morph.NewRuleBasedAnalyzer())
	e.Magic = magic
	var out strings.Builder
	e.Stdout = &out
	e.Stderr = &out

	require.NoError(t, e.EvalFile(prelude.Lines()))
	require.Empty(t, e.Store.Check())

	return e
}

func evalExpr(t *testing.T, e *evaluator.Evaluator, line string) tree.Node {
	t.Helper()
	result, err := e.EvalExpression(line)
	require.NoError(t, err)

	return result
}

// Scenario 1: "yksi plus kaksi" reduces to the word for three.
func TestScenarioAddition(t *testing.T) {
	e := newSession(t, false, true)
	result := evalExpr(t, e, "yksi plus kaksi")
	assert.Equal(t, "kolme", result.Inflect(morph.Nominative, e.Analyzer, nil))
}

// Scenario 2: factorial of five is one hundred twenty, via the recursive
// "tekijä" equations and the arithmetic peephole.
func TestScenarioFactorial(t *testing.T) {
	e := newSession(t, false, true)
	result := evalExpr(t, e, "viiden tekijä")
	num, ok := result.(*tree.Num)
	require.True(t, ok, "expected a native integer, got %s", result.String())
	assert.Equal(t, 120, num.Value)
}

// Scenario 3: building a three-element list by consing onto "tyhjyys" and
// taking its length.
func TestScenarioListLength(t *testing.T) {
	e := newSession(t, false, true)
	require.NoError(t, e.EvalFile([]string{
		"loppu on 3 lisättynä tyhjyyteen.",
		"keski on 2 lisättynä loppu:hun.",
		"lista on 1 lisättynä keski:hin.",
	}))
	result := evalExpr(t, e, "listan pituus")
	num, ok := result.(*tree.Num)
	require.True(t, ok, "expected a native integer, got %s", result.String())
	assert.Equal(t, 3, num.Value)
}

// Scenario 4: top-level bindings are ordinary first-match-wins equations, so
// a later "summa on ..." never changes what an earlier reference to summa
// evaluated to once it has already been substituted in.
func TestScenarioFirstMatchWins(t *testing.T) {
	e := newSession(t, false, true)
	require.NoError(t, e.EvalFile([]string{
		"luku on 5.",
		"summa on luku plus 1.",
	}))
	result := evalExpr(t, e, "summa")
	num, ok := result.(*tree.Num)
	require.True(t, ok, "expected a native integer, got %s", result.String())
	assert.Equal(t, 6, num.Value)

	require.NoError(t, e.EvalFile([]string{"summa on 100."}))
	result = evalExpr(t, e, "summa")
	num, ok = result.(*tree.Num)
	require.True(t, ok, "expected a native integer, got %s", result.String())
	assert.Equal(t, 6, num.Value, "first matching equation for summa must still win")
}

// Scenario 5: with the peephole disabled, the factorial still reduces
// correctly by walking the Peano-encoded standard library equations.
func TestScenarioNoMagicFactorial(t *testing.T) {
	e := newSession(t, false, false)
	result := evalExpr(t, e, "kolmen tekijä")
	assert.Equal(t, "kuusi", result.Inflect(morph.Nominative, e.Analyzer, nil))
}

// Scenario 6: restricted mode rejects an equation whose left-hand side
// pattern-matches against an argument of a registered function; free mode
// accepts the same definition, and the peephole still fires once the
// numeral words have reduced to native integers.
func TestScenarioRestrictedModeCheck(t *testing.T) {
	e := newSession(t, false, true)
	require.NoError(t, e.EvalFile([]string{
		"x:n tekijän tulostin on x.",
	}))
	errs := e.Store.Check()
	assert.NotEmpty(t, errs, "an equation matching a registered function's argument shape must be rejected")

	free := newSession(t, true, true)
	require.NoError(t, free.EvalFile([]string{
		"x:n tekijän tulostin on x.",
	}))
	assert.Empty(t, free.Store.Check(), "free mode must not enforce the restricted-mode check")

	result := evalExpr(t, free, "yksi plus kaksi")
	num, ok := result.(*tree.Num)
	require.True(t, ok)
	assert.Equal(t, 3, num.Value)
}
