package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/internal/store"
	"github.com/tampio-lang/tampio/pkg/lexer"
	"github.com/tampio-lang/tampio/pkg/morph"
	"github.com/tampio-lang/tampio/pkg/parser"
)

func mustParse(t *testing.T, free bool, line string) *store.Equation {
	t.Helper()
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex(line, an)
	p := parser.New(words, free, true, nil)
	eq, err := p.ParseEq(true)
	require.NoError(t, err)

	return eq
}

func TestStoreEquationsPreservesAddOrder(t *testing.T) {
	s := store.New(true)
	a := mustParse(t, true, "talo on iso.")
	b := mustParse(t, true, "auto on nopea.")
	s.Add(*a)
	s.Add(*b)
	got := s.Equations()
	require.Len(t, got, 2)
	assert.True(t, a.Left.Equal(got[0].Left))
	assert.True(t, b.Left.Equal(got[1].Left))
}

func TestStoreFreeModeNeverReportsViolations(t *testing.T) {
	s := store.New(true)
	s.Add(*mustParse(t, true, "nollan tekijä on yksi."))
	s.Add(*mustParse(t, true, "x:n tekijän tulostin on x."))
	assert.Empty(t, s.Check())
	assert.True(t, s.Free())
}

// A later equation whose argument contains a nested call shaped exactly
// like a previously registered function head is rejected: it would let a
// program branch on the internal structure of that function's result.
func TestStoreCheckRejectsNestedFunctionShapedArgument(t *testing.T) {
	s := store.New(false)
	s.Add(*mustParse(t, false, "nollan tekijä on yksi."))
	s.Add(*mustParse(t, false, "x:n tekijän tulostin on x."))
	errs := s.Check()
	require.Len(t, errs, 1)
	var target *store.FunctionMatchingError
	assert.ErrorAs(t, errs[0], &target)
}

// Defining several clauses against the same function head is legal — the
// restriction is on matching against an *argument's* internal shape, not on
// repeated definitions of one function.
func TestStoreCheckAllowsMultipleClausesOfSameFunction(t *testing.T) {
	s := store.New(false)
	s.Add(*mustParse(t, false, "nollan tekijä on yksi."))
	s.Add(*mustParse(t, false, "x:n seuraajan tekijä on x."))
	assert.Empty(t, s.Check())
}

func TestStoreAddDoesNotRegisterBareQueries(t *testing.T) {
	s := store.New(false)
	query := mustParse(t, false, "talo")
	require.True(t, query.IsQuery())
	s.Add(*query)
	s.Add(*mustParse(t, false, "x:n tekijän tulostin on x."))
	assert.Empty(t, s.Check())
}

func TestEquationStringFormsDefinitionAndQuery(t *testing.T) {
	def := mustParse(t, true, "talo on iso.")
	assert.Equal(t, "$talo = $iso", def.String())

	query := mustParse(t, true, "talo")
	assert.True(t, query.IsQuery())
	assert.Equal(t, "$talo", query.String())
}
