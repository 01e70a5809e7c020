package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampio-lang/tampio/pkg/morph"
)

func TestAnalyzeKnownVerb(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	analyses := an.Analyze("on")
	require.Len(t, analyses, 1)
	assert.Equal(t, "olla", analyses[0].Lemma)
	assert.Equal(t, morph.ClassVerb, analyses[0].Class)
}

func TestAnalyzeUnknownWordReturnsNil(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Nil(t, an.Analyze("floopiensorba"))
}

func TestAnalyzeDigitsYieldsNumeralClass(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	analyses := an.Analyze("42")
	require.Len(t, analyses, 1)
	assert.Equal(t, morph.ClassNumeral, analyses[0].Class)
	assert.Equal(t, "42", analyses[0].Lemma)
}

// "tyhjyys" overrides its genitive form irregularly instead of taking the
// regular suffix table's "+n".
func TestInflectIrregularGenitiveOverride(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Equal(t, "tyhjyyden", an.Inflect("tyhjyys", morph.Genitive))
}

// "lista" has no Genitive override in the dictionary, so it falls through
// to the regular back-harmony suffix table ("lista" + "n").
func TestInflectRegularSuffixFallback(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Equal(t, "listan", an.Inflect("lista", morph.Genitive))
}

func TestInflectUnknownLemmaFallsBackToPlaceholder(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Equal(t, "floop:genitive", an.Inflect("floop", morph.Genitive))
}

func TestInflectNumberZeroIsNollaInNominative(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Equal(t, "nolla", an.InflectNumber(0, morph.Nominative))
}

func TestInflectNumberCompound(t *testing.T) {
	assert.Equal(t, "satakaksikymmentä", morph.CardinalWord(120))
}

// Single-letter lemmas take the special-cased inflection path instead of
// the regular suffix table, to avoid the unpronounceable clusters regular
// suffixing would produce on a bare consonant.
func TestInflectSingleLetterCase(t *testing.T) {
	an := morph.NewRuleBasedAnalyzer()
	assert.Equal(t, "xllä", an.Inflect("x", morph.Adessive))
}

func TestCaseAbbreviationTable(t *testing.T) {
	assert.Equal(t, "G", morph.Genitive.Abbreviation())
	assert.Equal(t, "*", morph.CaseNone.Abbreviation())
}

func TestCaseEllipsisSuffix(t *testing.T) {
	assert.Equal(t, ":n", morph.Genitive.EllipsisSuffix())
	assert.Equal(t, "", morph.Nominative.EllipsisSuffix())
}

func TestCaseStringIsDiagnosticName(t *testing.T) {
	assert.Equal(t, "genitive", morph.Genitive.String())
}
