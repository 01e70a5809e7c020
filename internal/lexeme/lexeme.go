// Package lexeme models the lexer's output alphabet: one candidate reading
// of a single surface word, tagged with the sigil convention the whole
// interpreter uses as its canonical internal naming scheme (§3 of the
// spec): "$" for nominal lemmas, "#" for verbs, "&" for conjunctions, "."
// for adverb-recoded nouns, "?" for pronouns, and "@" marking plural
// number.
package lexeme

import "github.com/tampio-lang/tampio/pkg/morph"

// Kind distinguishes the three lexeme shapes the grammar cares about.
type Kind int

const (
	KindNoun Kind = iota
	KindVerb
	KindConjunction
)

// SubClass further distinguishes nominal lexemes the way the spec's data
// model does: an ordinary noun, or a pronoun (decoded identically but
// carrying the "?" sigil).
type SubClass int

const (
	SubNoun SubClass = iota
	SubPronoun
)

// Lexeme is one candidate analysis alternative for a single word token.
// Parser code almost never switches on concrete type; it instead calls
// Sigil (the disambiguated "word") and, for nouns, inspects Case directly.
type Lexeme interface {
	// Sigil returns the canonical sigil-prefixed lemma, with no case
	// suffix — this is the string used as a Var's name once the lexeme
	// becomes part of an expression tree.
	Sigil() string
	// Kind reports which of Noun/Verb/Conjunction this is.
	Kind() Kind
	// String returns the full debug form including the case abbreviation
	// for nouns (matching the reference interpreter's own str()).
	String() string
}

// Noun is a nominal lexeme: a common noun, proper name, numeral, adjective,
// or pronoun, all of which the lexer folds into this one representation
// because the grammar treats them identically (§4.1 lists the morphological
// classes that map onto Noun).
type Noun struct {
	Lemma  string
	Case   morph.Case
	Number morph.Number
	Sub    SubClass
}

func (n Noun) Kind() Kind { return KindNoun }

// Sigil implements the priority-ordered sigil selection from the spec's
// data model: pronoun beats number, singular is "$", plural is "@",
// anything else (the adverb-recoded "na" number) is ".".
func (n Noun) Sigil() string {
	switch {
	case n.Sub == SubPronoun:
		return "?" + n.Lemma
	case n.Number == morph.Singular:
		return "$" + n.Lemma
	case n.Number == morph.Plural:
		return "@" + n.Lemma
	default:
		return "." + n.Lemma
	}
}

func (n Noun) String() string {
	return n.Sigil() + ":" + n.Case.Abbreviation()
}

// Verb is a verb-of-being lexeme; the grammar only ever inspects its sigil
// form to check for "#olla" ("is") or "#esittää" ("presents").
type Verb struct {
	Lemma string
}

func (v Verb) Kind() Kind     { return KindVerb }
func (v Verb) Sigil() string  { return "#" + v.Lemma }
func (v Verb) String() string { return v.Sigil() }

// Conjunction is a coordinating-conjunction lexeme ("ja", "sekä", "tai") or
// the "kun" ("when") witness-clause marker.
type Conjunction struct {
	Lemma string
}

func (c Conjunction) Kind() Kind     { return KindConjunction }
func (c Conjunction) Sigil() string  { return "&" + c.Lemma }
func (c Conjunction) String() string { return c.Sigil() }
