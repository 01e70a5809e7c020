package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/pkg/lexer"
	"github.com/tampio-lang/tampio/pkg/morph"
)

func TestLexStripsCommentAndPeriod(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("talo on iso. # a trailing comment", an)
	require.Len(t, words, 3)
	assert.Equal(t, "talo", words[0].Surface)
	assert.Equal(t, "on", words[1].Surface)
	assert.Equal(t, "iso", words[2].Surface)
}

func TestLexBlankAndCommentOnlyLinesReturnNil(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Nil(t, lexer.Lex("", an))
	assert.Nil(t, lexer.Lex("   ", an))
	assert.Nil(t, lexer.Lex("# just a comment", an))
}

// "muuttuja:lle" forces the allative case regardless of what the
// closed-vocabulary analyzer would otherwise propose for "muuttuja".
func TestLexCaseOverrideSuffix(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("muuttuja:lle on x.", an)
	require.NotEmpty(t, words)
	got := lexer.Disambiguate(words[0].Alternatives)
	assert.Equal(t, "$muuttuja", got.Sigil())
	assert.Equal(t, "$muuttuja:"+morph.Allative.Abbreviation(), got.String())
}

func TestLexCaseOverrideGenitive(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("x:n seuraaja", an)
	require.Len(t, words, 2)
	first := lexer.Disambiguate(words[0].Alternatives)
	assert.Equal(t, "$x", first.Sigil())
	assert.Equal(t, morph.Genitive.Abbreviation(), first.String()[len(first.Sigil())+1:])
}

// The priority disambiguation rule always prefers "yksi"'s numeral/noun
// reading over any competing pronoun reading.
func TestDisambiguatePromotesYksi(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("yksi on x.", an)
	require.NotEmpty(t, words)
	got := lexer.Disambiguate(words[0].Alternatives)
	assert.Equal(t, "$yksi", got.Sigil())
}

func TestLexUnknownWordFallsBackToNominativeNoun(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("floop on x.", an)
	require.NotEmpty(t, words)
	got := lexer.Disambiguate(words[0].Alternatives)
	assert.Equal(t, "$floop", got.Sigil())
}

func TestIsNextMatchesDisambiguatedSigilAndCase(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	words := lexer.Lex("x:n seuraaja", an)
	assert.True(t, lexer.IsNext(words, "$x:G"))
	assert.False(t, lexer.IsNext(words, "$x:N"))
}

func TestIsNextEmptyWordsIsFalse(t *testing.T) {
	assert.False(t, lexer.IsNext(nil, "$x:N"))
}
