// Package lexer turns one line of Tampio source into a sequence of
// lexeme alternative sets: for each surface word, every reading the
// morphological analyzer considers plausible, left undisambiguated until
// the parser consumes it (§4.2 of the spec).
package lexer

import (
	"regexp"
	"strings"

	"github.com/tampio-lang/tampio/internal/lexeme"
	"github.com/tampio-lang/tampio/pkg/morph"
)

// Word is one tokenized source word together with every lexeme reading the
// analyzer proposes for it.
type Word struct {
	Surface      string
	Alternatives []lexeme.Lexeme
}

// caseOverride is a literal "word:suffix" annotation a Tampio program can
// use to force a case reading the closed-vocabulary analyzer would not
// otherwise propose, e.g. "muuttuja:lle" forces the allative case. This
// mirrors CASE_REGEXES from the reference interpreter: suffixes are
// recognized by shape, not by dictionary lookup, so they work for any
// lemma.
type caseOverride struct {
	re     *regexp.Regexp
	c      morph.Case
	plural bool
}

var caseOverrides = []caseOverride{
	{regexp.MustCompile(`^(.+):n$`), morph.Genitive, false},
	{regexp.MustCompile(`^(.+):(aa?|ää?|t[aä])$`), morph.Partitive, false},
	{regexp.MustCompile(`^(.+):(n[aä])$`), morph.Essive, false},
	{regexp.MustCompile(`^(.+):ksi$`), morph.Translative, false},
	{regexp.MustCompile(`^(.+):lle$`), morph.Allative, false},
	{regexp.MustCompile(`^(.+):ll[aä]$`), morph.Adessive, false},
	{regexp.MustCompile(`^(.+):lt[aä]$`), morph.Ablative, false},
	{regexp.MustCompile(`^(.+):(aan|ään|h[aeiouyäöå]n)$`), morph.Illative, false},
	{regexp.MustCompile(`^(.+):ss[aä]$`), morph.Inessive, false},
	{regexp.MustCompile(`^(.+):st[aä]$`), morph.Elative, false},
	{regexp.MustCompile(`^(.+):tt[aä]$`), morph.Abessive, false},
	{regexp.MustCompile(`^(.+):ien$`), morph.Genitive, true},
	{regexp.MustCompile(`^(.+):(ia?|iä?|it[aä])$`), morph.Partitive, true},
	{regexp.MustCompile(`^(.+):(in[aä])$`), morph.Essive, true},
	{regexp.MustCompile(`^(.+):iksi$`), morph.Translative, true},
	{regexp.MustCompile(`^(.+):ille$`), morph.Allative, true},
	{regexp.MustCompile(`^(.+):ill[aä]$`), morph.Adessive, true},
	{regexp.MustCompile(`^(.+):ilt[aä]$`), morph.Ablative, true},
	{regexp.MustCompile(`^(.+):(iin|ih[aeiouyäöå]n)$`), morph.Illative, true},
	{regexp.MustCompile(`^(.+):iss[aä]$`), morph.Inessive, true},
	{regexp.MustCompile(`^(.+):ist[aä]$`), morph.Elative, true},
	{regexp.MustCompile(`^(.+):itt[aä]$`), morph.Abessive, true},
	{regexp.MustCompile(`^(.+):in$`), morph.Instructive, true},
	{regexp.MustCompile(`^(.+):ine[^:]*$`), morph.Comitative, true},
	{regexp.MustCompile(`^(.+):sti$`), morph.Adverb, false},
}

var wordPattern = regexp.MustCompile(`[\p{L}0-9:$@?.&]+`)

// Lex tokenizes one source line, stripping any "#"-introduced trailing
// comment, and returns the lexeme alternative sets for each word. A blank
// or comment-only line returns nil.
func Lex(line string, an morph.Analyzer) []Word {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	// A real tokenizer (voikko.tokens in the reference interpreter)
	// classifies a sentence-final period as punctuation, not a word, and
	// drops it; the regex tokenizer below has no such notion, so the
	// terminating period is stripped here before it can glue onto the
	// last word's surface form.
	line = strings.TrimSuffix(line, ".")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	var out []Word
	for _, tok := range wordPattern.FindAllString(line, -1) {
		out = append(out, lexWord(tok, an))
	}

	return out
}

func lexWord(word string, an morph.Analyzer) Word {
	for _, ov := range caseOverrides {
		if m := ov.re.FindStringSubmatch(word); m != nil {
			lemma := m[1]
			num := morph.Singular
			if ov.plural {
				num = morph.Plural
			}

			return Word{
				Surface:      word,
				Alternatives: []lexeme.Lexeme{lexeme.Noun{Lemma: lemma, Case: ov.c, Number: num}},
			}
		}
	}

	analyses := an.Analyze(word)
	var alts []lexeme.Lexeme
	for _, a := range analyses {
		switch a.Class {
		case morph.ClassVerb, morph.ClassNegationVerb:
			alts = append(alts, lexeme.Verb{Lemma: a.Lemma})
		case morph.ClassConjunction:
			alts = append(alts, lexeme.Conjunction{Lemma: a.Lemma})
		case morph.ClassAdverb:
			alts = append(alts, lexeme.Noun{Lemma: a.Lemma, Case: morph.Nominative, Number: morph.NumberAdverb})
		case morph.ClassPronoun:
			alts = append(alts, lexeme.Noun{Lemma: a.Lemma, Case: a.Case, Number: a.Number, Sub: lexeme.SubPronoun})
		case morph.ClassOther:
			// Dropped: a debug-only diagnostic in the reference
			// interpreter, no semantic role here.
		default:
			alts = append(alts, lexeme.Noun{Lemma: a.Lemma, Case: a.Case, Number: a.Number})
		}
	}
	if len(alts) == 0 {
		alts = []lexeme.Lexeme{lexeme.Noun{Lemma: word, Case: morph.Nominative, Number: morph.Singular}}
	}

	return Word{Surface: word, Alternatives: alts}
}
