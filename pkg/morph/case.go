package morph

import "fmt"

// Case is a Finnish grammatical case, or the adverb pseudo-case used for
// adverbs recoded as nouns (see §4.2 of the spec this package implements).
type Case int

const (
	Nominative Case = iota
	Genitive
	Partitive
	Essive
	Translative
	Allative
	Adessive
	Ablative
	Illative
	Inessive
	Elative
	Abessive
	Instructive
	Comitative
	Adverb
	// CaseNone marks a call's head or argument as not carrying any case at
	// all (CASES_ABRV[""] == "*" in the reference interpreter) — used for
	// synthetic calls the parser builds for conjunctions, binary
	// operators, and genitive-owner chains, where no case governs the
	// relationship.
	CaseNone
)

// caseNames gives the English name of each case used in diagnostics
// (diagnostics are in English).
var caseNames = [...]string{
	Nominative:  "nominative",
	Genitive:    "genitive",
	Partitive:   "partitive",
	Essive:      "essive",
	Translative: "translative",
	Allative:    "allative",
	Adessive:    "adessive",
	Ablative:    "ablative",
	Illative:    "illative",
	Inessive:    "inessive",
	Elative:     "elative",
	Abessive:    "abessive",
	Instructive: "instructive",
	Comitative:  "comitative",
	Adverb:      "adverb",
	CaseNone:    "none",
}

// abbreviations match CASES_ABRV from the reference interpreter; used when
// rendering a Call's or a noun lexeme's internal debug string (the form the
// parser's isNext compares against).
var abbreviations = [...]string{
	Nominative:  "N",
	Genitive:    "G",
	Partitive:   "P",
	Essive:      "E",
	Translative: "T",
	Allative:    "U<",
	Adessive:    "U_",
	Ablative:    "U>",
	Illative:    "S<",
	Inessive:    "S_",
	Elative:     "S>",
	Abessive:    "A",
	Instructive: "I",
	Comitative:  "K",
	Adverb:      "D",
	CaseNone:    "*",
}

func (c Case) String() string {
	if int(c) < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("Case(%d)", int(c))
	}

	return caseNames[c]
}

// Abbreviation returns the short debug tag for the case, as used by the
// reference interpreter's internal str() representation of a Call.
func (c Case) Abbreviation() string {
	if int(c) < 0 || int(c) >= len(abbreviations) {
		return "?"
	}

	return abbreviations[c]
}

// ellipsisSuffixes matches CASES_ELLIPSI from the reference interpreter: a
// fixed, harmony-invariant suffix table used only to render a cyclic
// self-reference ("..." plus the case suffix the omitted subtree would have
// carried) instead of inflecting a word that isn't actually there.
var ellipsisSuffixes = [...]string{
	Nominative:  "",
	Genitive:    ":n",
	Partitive:   ":ä",
	Essive:      ":nä",
	Translative: ":ksi",
	Allative:    ":lle",
	Adessive:    ":llä",
	Ablative:    ":ltä",
	Illative:    ":iin",
	Inessive:    ":ssä",
	Elative:     ":stä",
	Abessive:    ":ttä",
	Instructive: ":ein",
	Comitative:  ":eineen",
	Adverb:      ":sti",
	CaseNone:    "",
}

// EllipsisSuffix returns the case's CASES_ELLIPSI suffix, used by
// Call.Inflect's cycle guard to render "...:n" instead of recursing into an
// already-visited subtree.
func (c Case) EllipsisSuffix() string {
	if int(c) < 0 || int(c) >= len(ellipsisSuffixes) {
		return ""
	}

	return ellipsisSuffixes[c]
}

// Number is grammatical number. NumberAdverb marks a noun synthesized from
// an adverb analysis (the lexer recodes adverbs as nouns with this number,
// per §4.2).
type Number int

const (
	NumberNone Number = iota
	Singular
	Plural
	NumberAdverb
)

func (n Number) String() string {
	switch n {
	case Singular:
		return "singular"
	case Plural:
		return "plural"
	case NumberAdverb:
		return "na"
	default:
		return ""
	}
}

// Class is the morphological word class recognized by the analyzer. Classes
// not in this set are dropped by the lexer (a debug diagnostic only, per
// §4.2).
type Class int

const (
	ClassCommonNoun Class = iota
	ClassAbbreviation
	ClassNumeral
	ClassAdjective
	ClassNounAdjective
	ClassProperName
	ClassPronoun
	ClassAdverb
	ClassVerb
	ClassNegationVerb
	ClassConjunction
	ClassOther // dropped
)
