package morph

// suffixBack and suffixFront give the case-ending suffix tables for
// back-harmony (a/o/u) and front-harmony (ä/ö/y) stems respectively. These
// are the Go port of CASES_A and CASES_F from the reference interpreter.
// The empty-string entry (Nominative) is the unmarked case.
var suffixBack = [...]string{
	Nominative:  "",
	Genitive:    "n",
	Partitive:   "ta",
	Essive:      "na",
	Translative: "ksi",
	Allative:    "lle",
	Adessive:    "lla",
	Ablative:    "lta",
	Illative:    "han",
	Inessive:    "ssa",
	Elative:     "sta",
	Abessive:    "tta",
	Instructive: "in",
	Comitative:  "ineen",
	Adverb:      "sti",
}

var suffixFront = [...]string{
	Nominative:  "",
	Genitive:    "n",
	Partitive:   "ää",
	Essive:      "nä",
	Translative: "ksi",
	Allative:    "lle",
	Adessive:    "llä",
	Ablative:    "ltä",
	Illative:    "ään",
	Inessive:    "ssä",
	Elative:     "stä",
	Abessive:    "ttä",
	Instructive: "in",
	Comitative:  "ineen",
	Adverb:      "sti",
}

// suffixPlural covers the cases the reference interpreter's CASE_REGEXES
// table distinguishes for plural nouns: every case except Adverb has a
// plural ending, and suffixFor falls back to the singular tables for Adverb.
var suffixPlural = [...]string{
	Nominative:  "t",
	Genitive:    "ien",
	Partitive:   "ia",
	Essive:      "ina",
	Translative: "iksi",
	Allative:    "ille",
	Adessive:    "illa",
	Ablative:    "ilta",
	Illative:    "iin",
	Inessive:    "issa",
	Elative:     "ista",
	Abessive:    "itta",
	Instructive: "in",
	Comitative:  "ineen",
}

// hasBackHarmony reports whether a Finnish word stem takes back-vowel
// (a/o/u) case endings rather than front-vowel (ä/ö/y) ones. Finnish vowel
// harmony is determined by the last non-neutral vowel in the word; e/i are
// neutral. This is a simplified heuristic (loanwords and some compounds are
// exceptions the real analyzer would know from a dictionary), consistent
// with RuleBasedAnalyzer being an approximation of the external service.
func hasBackHarmony(stem string) bool {
	r := []rune(stem)
	for i := len(r) - 1; i >= 0; i-- {
		switch r[i] {
		case 'a', 'o', 'u', 'A', 'O', 'U':
			return true
		case 'ä', 'ö', 'y':
			return false
		}
	}

	return true
}

// suffixFor returns the case ending for a given stem, singular unless
// plural is true.
func suffixFor(stem string, c Case, plural bool) string {
	if plural && int(c) < len(suffixPlural) && suffixPlural[c] != "" {
		return suffixPlural[c]
	}
	if int(c) < 0 {
		return ""
	}
	if hasBackHarmony(stem) {
		if int(c) < len(suffixBack) {
			return suffixBack[c]
		}
	} else if int(c) < len(suffixFront) {
		return suffixFront[c]
	}

	return ""
}
