package morph

// Analysis is one candidate morphological reading of a surface word, as
// produced by an Analyzer. The lexer keeps every candidate the analyzer
// returns; disambiguation between them happens later, in the parser's
// priority rule (see pkg/lexer and pkg/parser).
type Analysis struct {
	Lemma  string
	Class  Class
	Case   Case
	Number Number
}

// Analyzer is the external morphological service boundary named in the
// spec: given a surface word, return every analysis the underlying
// morphology engine considers plausible; given a lemma and a target case,
// produce the inflected surface form. The interpreter core never looks at
// raw Finnish characters beyond what Analyzer and a small set of surface
// regex overrides in pkg/lexer provide.
type Analyzer interface {
	Analyze(word string) []Analysis
	// Inflect returns the surface form of lemma in case c. lemma may carry
	// a leading "@" to request the plural, mirroring the sigil convention
	// used internally for plural Var names.
	Inflect(lemma string, c Case) string
	// InflectNumber is the numeral-specific counterpart of Inflect, used by
	// the evaluator's Num leaves, which are not backed by any lemma string.
	InflectNumber(n int, c Case) string
}
