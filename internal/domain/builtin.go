package domain

import (
	"fmt"
	"sort"
	"strings"

	"mutatest.dev/pkg/mutatest/internal/adapter"
)

// Built-in model names usable from the command line.
const (
	ModelTokens = "tokens"
	ModelBag    = "bag"
)

// Built-in similarity names usable from the command line.
const (
	SimilarityJaccard    = "jaccard"
	SimilarityDice       = "dice"
	SimilarityPositional = "positional"
)

// BuiltinModel returns a stand-in model whose output is the lowercase token
// sequence of the sentence ("tokens") or the same tokens sorted ("bag").
func BuiltinModel(name string, annotator adapter.LexicalAnnotator) (ModelFunc[[]string], error) {
	tokens := func(sentence string) []string {
		raw := annotator.Tokenize(sentence)

		out := make([]string, len(raw))
		for i, token := range raw {
			out[i] = strings.ToLower(token)
		}

		return out
	}

	switch name {
	case ModelTokens:
		return func(sentence string) ([]string, error) {
			return tokens(sentence), nil
		}, nil
	case ModelBag:
		return func(sentence string) ([]string, error) {
			out := tokens(sentence)
			sort.Strings(out)

			return out, nil
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown model %q", ErrConfiguration, name)
}

// BuiltinSimilarity returns a token similarity in [0, 1].
func BuiltinSimilarity(name string) (SimilarityFunc[[]string], error) {
	switch name {
	case SimilarityJaccard:
		return func(a, b []string) (float64, error) { return jaccard(a, b), nil }, nil
	case SimilarityDice:
		return func(a, b []string) (float64, error) { return dice(a, b), nil }, nil
	case SimilarityPositional:
		return func(a, b []string) (float64, error) { return positional(a, b), nil }, nil
	}

	return nil, fmt.Errorf("%w: unknown similarity %q", ErrConfiguration, name)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	return set
}

func intersection(a, b map[string]struct{}) int {
	shared := 0

	for token := range a {
		if _, ok := b[token]; ok {
			shared++
		}
	}

	return shared
}

func jaccard(a, b []string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)

	shared := intersection(setA, setB)

	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 1
	}

	return float64(shared) / float64(union)
}

func dice(a, b []string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA)+len(setB) == 0 {
		return 1
	}

	return 2 * float64(intersection(setA, setB)) / float64(len(setA)+len(setB))
}

func positional(a, b []string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	same := 0

	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] == b[i] {
			same++
		}
	}

	return float64(same) / float64(longest)
}
