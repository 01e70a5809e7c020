package morph

// ones gives the Finnish cardinal numeral stems 0-9; tens and teens are
// built from these by composition, matching how Finnish actually forms its
// numeral words (no separate word list needed above nine).
var ones = [...]string{
	"nolla", "yksi", "kaksi", "kolme", "neljä", "viisi",
	"kuusi", "seitsemän", "kahdeksan", "yhdeksän",
}

// CardinalWord returns the Finnish cardinal numeral for a non-negative
// integer, e.g. CardinalWord(120) == "satakaksikymmentä". This has no
// counterpart in the reference interpreter's own source (which relies on an
// external dictionary lookup that this port does not have access to), but
// is required to satisfy the distilled spec's documented example outputs
// (factorial of five inflects to "satakaksikymmentä").
func CardinalWord(n int) string {
	if n < 0 {
		return "miinus " + CardinalWord(-n)
	}
	if n < 10 {
		return ones[n]
	}
	if n < 20 {
		if n == 10 {
			return "kymmenen"
		}

		return ones[n-10] + "toista"
	}
	if n < 100 {
		tens := n / 10
		rest := n % 10
		word := tensWord(tens) + "kymmentä"
		if rest != 0 {
			word += ones[rest]
		}

		return word
	}
	if n < 1000 {
		hundreds := n / 100
		rest := n % 100
		var word string
		if hundreds == 1 {
			word = "sata"
		} else {
			word = ones[hundreds] + "sataa"
		}
		if rest != 0 {
			word += CardinalWord(rest)
		}

		return word
	}
	if n < 1000000 {
		thousands := n / 1000
		rest := n % 1000
		var word string
		if thousands == 1 {
			word = "tuhat"
		} else {
			word = CardinalWord(thousands) + "tuhatta"
		}
		if rest != 0 {
			word += CardinalWord(rest)
		}

		return word
	}

	return "iso luku"
}

// tensWord returns the stem used before "kymmentä" ("ten") for a tens digit
// 2-9; one ("yksi") never prefixes kymmentä since ten itself is "kymmenen".
func tensWord(digit int) string {
	if digit < len(ones) {
		return ones[digit]
	}

	return ""
}

// InflectNumber renders n in the requested case. Classical Finnish declines
// every component of a compound numeral ("satakaksikymmentä" -> genitive
// "sadankahdenkymmenen"); this port only declines the final component and
// leaves the rest as the nominative stem, the same simplification
// RuleBasedAnalyzer makes elsewhere (see its doc comment).
func InflectNumber(n int, c Case) string {
	word := CardinalWord(n)
	if c == Nominative {
		return word
	}

	return word + suffixFor(word, c, false)
}
