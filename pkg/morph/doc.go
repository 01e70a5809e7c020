// Package morph models the morphological layer Tampio depends on: the
// lemma/part-of-speech/case/number analysis of a single Finnish word, and
// the inverse operation, inflecting a lemma back into a surface form for a
// requested case.
//
// The interpreter treats both directions as a replaceable external service
// (see Analyzer). This package ships one concrete, dependency-free
// implementation, RuleBasedAnalyzer, whose suffix tables and inflection
// rules are ported from the Tampio reference interpreter's own wrapper
// around libvoikko. A production deployment could swap in a real
// Voikko-backed Analyzer without touching the lexer, parser, or evaluator.
package morph
