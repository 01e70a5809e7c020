package morph

import (
	"fmt"
	"strconv"
	"strings"
)

// RuleBasedAnalyzer is the concrete, dependency-free Analyzer shipped with
// this interpreter. It knows a closed vocabulary (see dictionary.go) plus
// the numeral and single-character special cases the reference
// interpreter's own inflect() function special-cases before ever consulting
// a dictionary.
//
// Known limitations, mirroring the documentation style of a real
// morphological analyzer:
//   - Vocabulary is closed: words outside it fall back to the unmarked
//     nominative-singular analysis (§4.2) and, for inflection, to the
//     "lemma:case" placeholder form (§4.1).
//   - Consonant gradation (kpt-gradation) beyond the hand-entered
//     dictionary overrides is not modeled.
//   - Compound numerals only decline their final component.
type RuleBasedAnalyzer struct {
	byLemma map[string]lemmaEntry
}

// NewRuleBasedAnalyzer builds the analyzer's reverse indices. Safe to call
// more than once; the result is immutable and safe for concurrent reads.
func NewRuleBasedAnalyzer() *RuleBasedAnalyzer {
	byLemma := make(map[string]lemmaEntry, len(vocabulary))
	for _, e := range vocabulary {
		byLemma[e.lemma] = e
	}

	return &RuleBasedAnalyzer{byLemma: byLemma}
}

// Analyze implements Analyzer.
func (a *RuleBasedAnalyzer) Analyze(word string) []Analysis {
	if analyses, ok := index[word]; ok {
		out := make([]Analysis, len(analyses))
		copy(out, analyses)

		return out
	}
	if n, ok := parseDigits(word); ok {
		return []Analysis{{Lemma: strconv.Itoa(n), Class: ClassNumeral, Case: Nominative, Number: Singular}}
	}

	return nil
}

// Inflect implements Analyzer.
func (a *RuleBasedAnalyzer) Inflect(lemma string, c Case) string {
	plural := false
	if strings.HasPrefix(lemma, "@") {
		plural = true
		lemma = lemma[1:]
	} else if len(lemma) > 1 && strings.ContainsAny(lemma[:1], "$.?") {
		lemma = lemma[1:]
	}

	if n, ok := parseDigits(lemma); ok {
		return InflectNumber(n, c)
	}

	if len([]rune(lemma)) == 1 {
		return inflectSingleLetter(lemma, c)
	}

	if e, ok := a.byLemma[lemma]; ok {
		if surface, ok := e.overrides[c]; ok {
			return surface
		}
		stem := e.stem
		if stem == "" {
			stem = e.lemma
		}

		return stem + suffixFor(stem, c, plural)
	}

	// No known inflection: fall back to the documented placeholder form.
	return fmt.Sprintf("%s:%s", lemma, c)
}

// InflectNumber implements Analyzer.
func (a *RuleBasedAnalyzer) InflectNumber(n int, c Case) string {
	return InflectNumber(n, c)
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// inflectSingleLetter ports the reference interpreter's special-case
// handling for one-letter words, where Finnish's usual suffix rules would
// produce an unpronounceable cluster.
func inflectSingleLetter(letter string, c Case) string {
	consonantsFront := "flmnrsx"
	if strings.Contains(consonantsFront, letter) {
		return letter + suffixFront[clampCase(c)]
	}

	if c == Illative {
		switch {
		case strings.ContainsAny(letter, "aeiouyäöå"):
			return letter + "h" + letter + "n"
		case strings.ContainsAny(letter, "bcdgptvw"):
			return letter + "hen"
		case strings.ContainsAny(letter, "hk"):
			return letter + "hon"
		case letter == "j":
			return "jhin"
		case letter == "q":
			return "qhun"
		case letter == "z":
			return "zaan"
		}
	}

	if strings.ContainsAny(letter, "ahkoquzå") {
		return letter + suffixBack[clampCase(c)]
	}

	return letter + suffixFront[clampCase(c)]
}

func clampCase(c Case) Case {
	if int(c) < 0 || int(c) >= len(suffixBack) {
		return Nominative
	}

	return c
}
