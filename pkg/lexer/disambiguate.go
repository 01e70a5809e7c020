package lexer

import "github.com/tampio-lang/tampio/internal/lexeme"

// promoted lists the lemmas the priority rule always prefers over any
// other candidate reading, regardless of word class — mirroring PROMOTE
// from the reference interpreter. "yksi" ("one") is frequently ambiguous
// with a pronoun reading, and "ehto" ("condition") with other noun
// readings; the grammar needs the numeral/noun sense every time.
var promoted = map[string]bool{
	"yksi": true,
	"ehto": true,
}

func priority(l lexeme.Lexeme) int {
	if n, ok := l.(lexeme.Noun); ok && promoted[n.Lemma] {
		return 2
	}
	if l.Kind() == lexeme.KindNoun {
		return 1
	}

	return 0
}

// Disambiguate picks the single reading a Word's alternative set resolves
// to, the Go port of the reference interpreter's as2w: stable-sort by
// priority and take the last, so of several equal-priority candidates the
// one that sorted latest (i.e. appeared last in the analyzer's own
// alternative order) wins.
func Disambiguate(alts []lexeme.Lexeme) lexeme.Lexeme {
	best := alts[0]
	bestPriority := priority(best)
	for _, l := range alts[1:] {
		if p := priority(l); p >= bestPriority {
			best = l
			bestPriority = p
		}
	}

	return best
}

// IsNext reports whether the next word of words, once disambiguated,
// renders (with its case) to one of the given sigil[:case] strings.
func IsNext(words []Word, candidates ...string) bool {
	if len(words) == 0 {
		return false
	}
	s := Disambiguate(words[0].Alternatives).String()
	for _, c := range candidates {
		if s == c {
			return true
		}
	}

	return false
}
