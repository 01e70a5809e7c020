package morph

// lemmaEntry describes one vocabulary item known to RuleBasedAnalyzer.
// Overrides holds irregular case forms (Finnish consonant gradation and
// stem alternation produce plenty of these even in a small closed
// vocabulary); any case missing from Overrides is generated by regular
// suffix rules from the entry's Stem.
type lemmaEntry struct {
	lemma     string
	class     Class
	stem      string // used for regular suffix generation; defaults to lemma
	overrides map[Case]string
	plural    bool // whether this noun inflects a plural form at all
}

// vocabulary is the closed dictionary RuleBasedAnalyzer knows about. It is
// deliberately just large enough to analyze the standard prelude and the
// example programs in the distilled spec — a real deployment would replace
// RuleBasedAnalyzer with one backed by an actual dictionary (e.g. Voikko),
// without any other package needing to change (see the Analyzer interface).
var vocabulary = []lemmaEntry{
	// Numerals. Genitive forms are irregular per real Finnish grammar and
	// matter because the standard prelude's successor pattern
	// ("Nseuraaja" matches against the genitive case) is displayed using
	// them in diagnostics.
	{lemma: "nolla", class: ClassNumeral, overrides: map[Case]string{Genitive: "nollan"}},
	{lemma: "yksi", class: ClassNumeral, overrides: map[Case]string{Genitive: "yhden", Partitive: "yhtä", Essive: "yhtenä"}},
	{lemma: "kaksi", class: ClassNumeral, overrides: map[Case]string{Genitive: "kahden", Partitive: "kahta", Essive: "kahtena"}},
	{lemma: "kolme", class: ClassNumeral, overrides: map[Case]string{Genitive: "kolmen", Partitive: "kolmea"}},
	{lemma: "neljä", class: ClassNumeral, overrides: map[Case]string{Genitive: "neljän", Partitive: "neljää"}},
	{lemma: "viisi", class: ClassNumeral, overrides: map[Case]string{Genitive: "viiden", Partitive: "viittä"}},
	{lemma: "kuusi", class: ClassNumeral, overrides: map[Case]string{Genitive: "kuuden", Partitive: "kuutta"}},
	{lemma: "seitsemän", class: ClassNumeral, overrides: map[Case]string{Genitive: "seitsemän", Partitive: "seitsemää"}},
	{lemma: "kahdeksan", class: ClassNumeral, overrides: map[Case]string{Genitive: "kahdeksan", Partitive: "kahdeksaa"}},
	{lemma: "yhdeksän", class: ClassNumeral, overrides: map[Case]string{Genitive: "yhdeksän", Partitive: "yhdeksää"}},
	{lemma: "kymmenen", class: ClassNumeral, overrides: map[Case]string{Genitive: "kymmenen", Partitive: "kymmentä"}},

	// Verbs of being/presenting — the only two verb lemmas the grammar
	// recognizes (§4.4: parseEq requires one of these after the pattern).
	{lemma: "olla", class: ClassVerb, overrides: map[Case]string{Nominative: "on"}},
	{lemma: "esittää", class: ClassVerb, overrides: map[Case]string{Nominative: "esitetään"}},

	// Coordinating conjunctions.
	{lemma: "ja", class: ClassConjunction},
	{lemma: "sekä", class: ClassConjunction},
	{lemma: "tai", class: ClassConjunction},
	{lemma: "kun", class: ClassConjunction},

	// The "where" pronoun marker and the impurity/condition adverbs.
	{lemma: "mikä", class: ClassPronoun, overrides: map[Case]string{Inessive: "missä", Nominative: "mikä"}},
	{lemma: "epäpuhdas", class: ClassAdverb, overrides: map[Case]string{Adverb: "epäpuhtaasti"}},
	{lemma: "ehto", class: ClassCommonNoun},

	// Arithmetic vocabulary.
	{lemma: "ynnä", class: ClassAdverb, overrides: map[Case]string{Adverb: "ynnä"}},
	{lemma: "plus", class: ClassCommonNoun},
	{lemma: "miinus", class: ClassCommonNoun},
	{lemma: "modulo", class: ClassCommonNoun},
	{lemma: "seuraaja", class: ClassCommonNoun},
	{lemma: "kerrottu", class: ClassCommonNoun, overrides: map[Case]string{Essive: "kerrottuna"}},
	{lemma: "jaettu", class: ClassCommonNoun, overrides: map[Case]string{Essive: "jaettuna"}},
	{lemma: "tekijä", class: ClassCommonNoun},

	// List and pair vocabulary.
	{lemma: "lisätty", class: ClassCommonNoun, overrides: map[Case]string{Essive: "lisättynä", Illative: "lisättyyn"}},
	{lemma: "tyhjyys", class: ClassCommonNoun, overrides: map[Case]string{Genitive: "tyhjyyden", Partitive: "tyhjyyttä", Illative: "tyhjyyteen"}},
	{lemma: "pituus", class: ClassCommonNoun, overrides: map[Case]string{Partitive: "pituutta"}},
	{lemma: "lista", class: ClassCommonNoun, overrides: map[Case]string{Partitive: "listaa"}},
	{lemma: "pari", class: ClassCommonNoun, overrides: map[Case]string{Partitive: "paria"}},

	// World / I/O vocabulary.
	{lemma: "maailma", class: ClassCommonNoun, overrides: map[Case]string{Genitive: "maailman", Partitive: "maailmaa"}},
	{lemma: "luettu", class: ClassCommonNoun, overrides: map[Case]string{Essive: "luettuna"}},
	{lemma: "tulostettu", class: ClassCommonNoun, overrides: map[Case]string{Essive: "tulostettuna"}},
	{lemma: "tulos", class: ClassCommonNoun, overrides: map[Case]string{Partitive: "tulosta"}},
	{lemma: "tyhjä", class: ClassCommonNoun},
}

// index is the reverse surface-form -> analyses lookup built once at
// package initialization, mirroring the way a real dictionary-backed
// analyzer would precompute a trie or hash index over its paradigm tables.
var index = buildIndex()

func buildIndex() map[string][]Analysis {
	idx := make(map[string][]Analysis)
	add := func(surface string, a Analysis) {
		idx[surface] = append(idx[surface], a)
	}

	for _, e := range vocabulary {
		stem := e.stem
		if stem == "" {
			stem = e.lemma
		}

		switch e.class {
		case ClassVerb, ClassConjunction:
			surface := e.lemma
			if s, ok := e.overrides[Nominative]; ok {
				surface = s
			}
			add(surface, Analysis{Lemma: e.lemma, Class: e.class})
		case ClassAdverb:
			surface := stem
			if s, ok := e.overrides[Adverb]; ok {
				surface = s
			}
			add(surface, Analysis{Lemma: e.lemma, Class: ClassAdverb})
		default:
			for c := Nominative; c <= Instructive; c++ {
				surface, ok := e.overrides[c]
				if !ok {
					surface = stem + suffixFor(stem, c, false)
				}
				add(surface, Analysis{Lemma: e.lemma, Class: e.class, Case: c, Number: Singular})
			}
		}
	}

	return idx
}
