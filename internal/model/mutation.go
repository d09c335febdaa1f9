package model

import (
	"sort"
	"strconv"
	"strings"
)

// Mutation replaces a single word with one of its variants.
type Mutation struct {
	Word    Word
	Variant string
}

// MutationSet is the collection of mutations that defines one output sentence.
// Every mutation references a distinct word.
type MutationSet []Mutation

// Key returns an order independent identity for the set. Two sets with the
// same (word, variant) pairs share a key.
func (ms MutationSet) Key() string {
	parts := make([]string, 0, len(ms))
	for _, mutation := range ms {
		parts = append(parts, strconv.Itoa(mutation.Word.Index)+"\x00"+mutation.Variant)
	}

	sort.Strings(parts)

	return strings.Join(parts, "\x01")
}

// Equal reports whether both sets hold the same pairs regardless of order.
func (ms MutationSet) Equal(other MutationSet) bool {
	return len(ms) == len(other) && ms.Key() == other.Key()
}
