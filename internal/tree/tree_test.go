package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/internal/tree"
	"github.com/tampio-lang/tampio/pkg/morph"
)

func TestVarMatchPatternVariable(t *testing.T) {
	x := tree.NewVar("$x")
	subs, ok := x.Match(tree.NewNum(5))
	require.True(t, ok)
	assert.Equal(t, tree.NewNum(5), subs["$x"])
}

func TestVarMatchFixedWordRequiresAgreement(t *testing.T) {
	seuraaja := tree.NewVar("$seuraaja")
	_, ok := seuraaja.Match(tree.NewVar("$tekijä"))
	assert.False(t, ok, "two distinct fixed words must not match each other")

	same := tree.NewVar("$seuraaja")
	subs, ok := seuraaja.Match(same)
	require.True(t, ok)
	assert.Empty(t, subs)
}

func TestVarMatchZeroAlias(t *testing.T) {
	nolla := tree.NewVar("$nolla")
	_, ok := nolla.Match(tree.NewNum(0))
	assert.True(t, ok, "$nolla must match Num(0)")

	_, ok = nolla.Match(tree.NewNum(1))
	assert.False(t, ok)
}

func TestNumMatchesNumeralVarName(t *testing.T) {
	three := tree.NewNum(3)
	_, ok := three.Match(tree.NewVar("$3"))
	assert.True(t, ok)

	_, ok = three.Match(tree.NewVar("$4"))
	assert.False(t, ok)
}

// Call.Match peels one successor off a positive Num when the pattern head
// is "$seuraaja" with a bare genitive argument, the bridge between the
// Peano-encoded standard library and native integers.
func TestCallMatchSeuraajaPeelsSuccessor(t *testing.T) {
	pattern, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$n")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)

	subs, ok := pattern.Match(tree.NewNum(5))
	require.True(t, ok)
	assert.Equal(t, tree.NewNum(4), subs["$n"])
}

func TestCallMatchSeuraajaRejectsZero(t *testing.T) {
	pattern, err := tree.NewCall(tree.NewVar("$seuraaja"), []tree.Node{tree.NewVar("$n")}, morph.CaseNone, []morph.Case{morph.Genitive}, false)
	require.NoError(t, err)

	_, ok := pattern.Match(tree.NewNum(0))
	assert.False(t, ok, "zero has no predecessor")
}

func TestCopyPreservesStructureIndependently(t *testing.T) {
	call, err := tree.NewCall(tree.NewVar("$plus"), []tree.Node{tree.NewNum(1), tree.NewNum(2)}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, false)
	require.NoError(t, err)

	cp := call.Copy(map[*tree.Call]*tree.Call{})
	assert.True(t, call.Equal(cp))
	assert.NotSame(t, call, cp)
}

func TestSubstituteReplacesBoundNames(t *testing.T) {
	call, err := tree.NewCall(tree.NewVar("$plus"), []tree.Node{tree.NewVar("$x"), tree.NewNum(2)}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, false)
	require.NoError(t, err)

	result := call.Substitute(map[string]tree.Node{"$x": tree.NewNum(1)}, map[*tree.Call]*tree.Call{})
	want, err := tree.NewCall(tree.NewVar("$plus"), []tree.Node{tree.NewNum(1), tree.NewNum(2)}, morph.CaseNone, []morph.Case{morph.CaseNone, morph.CaseNone}, false)
	require.NoError(t, err)
	assert.True(t, want.Equal(result))
}
