// Package adapter contains the infrastructure collaborators of the mutation
// engine: the lexical annotator and the report store.
package adapter

import (
	"errors"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// ErrNotInitialized is returned when a lexicon is queried before Initialize.
var ErrNotInitialized = errors.New("lexicon not initialized")

// LexicalAnnotator turns raw text into annotated tokens and answers sense
// queries against a lexical knowledge base.
type LexicalAnnotator interface {
	// Tokenize splits text into word and punctuation tokens.
	Tokenize(text string) []string

	// TagPartsOfSpeech pairs every token with a Penn Treebank style tag.
	TagPartsOfSpeech(tokens []string) ([]m.TaggedToken, error)

	// LookupSenses returns the sense sets of word restricted to pos, each
	// carrying its directly broader sense sets.
	LookupSenses(word string, pos m.PosClass) ([]m.SenseSet, error)

	// IsStopword reports whether word belongs to the stopword list.
	IsStopword(word string) bool
}
