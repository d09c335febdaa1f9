// Package model defines the data structures for mutamorphic testing.
package model

import "strings"

// PosClass is the coarse part-of-speech class a word can be looked up under.
type PosClass string

const (
	// PosNoun is a noun.
	PosNoun PosClass = "noun"
	// PosAdjective is an adjective (including satellite adjectives).
	PosAdjective PosClass = "adjective"
	// PosAdverb is an adverb.
	PosAdverb PosClass = "adverb"
	// PosVerb is a verb.
	PosVerb PosClass = "verb"
	// PosNone marks a word whose tag has no lexical class.
	PosNone PosClass = "none"
)

// Valid reports whether p is one of the classes the lexicon knows about.
func (p PosClass) Valid() bool {
	switch p {
	case PosNoun, PosAdjective, PosAdverb, PosVerb:
		return true
	case PosNone:
		return false
	}

	return false
}

// PosClassFromTag converts a Penn Treebank style tag (NN, NNS, VBD, JJR, RB...)
// into a PosClass. Only the first two letters are significant.
func PosClassFromTag(tag string) PosClass {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if len(tag) < 2 {
		return PosNone
	}

	switch tag[:2] {
	case "NN":
		return PosNoun
	case "JJ":
		return PosAdjective
	case "RB":
		return PosAdverb
	case "VB":
		return PosVerb
	}

	return PosNone
}

// Word is an annotated token of a sentence.
type Word struct {
	Index      int // position in the sentence
	Value      string
	Pos        PosClass
	IsStopword bool
	Variants   map[string]int // candidate replacement -> suggestion count
}

// IsNontrivial reports whether the word can be replaced by one of its variants.
func (w Word) IsNontrivial() bool {
	return !w.IsStopword && w.Pos.Valid() && len(w.Variants) > 0
}

// TaggedToken is a token paired with its part-of-speech tag.
type TaggedToken struct {
	Token string
	Tag   string
}

// SenseSet groups lexical forms sharing one meaning. Hypernyms holds the
// directly broader senses.
type SenseSet struct {
	ID        string
	Pos       PosClass
	Lemmas    []string
	Hypernyms []SenseSet
}
