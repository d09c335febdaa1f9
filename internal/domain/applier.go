package domain

import (
	"strings"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// RenderMutations applies set to the sentence words and joins the result with
// single spaces. Each mutation keeps one token per position: spaces inside a
// variant become hyphens and an empty variant becomes "-<original>-".
func RenderMutations(words []m.Word, set m.MutationSet) string {
	tokens := wordValues(words)

	for _, mutation := range set {
		index := mutation.Word.Index
		if index < 0 || index >= len(tokens) {
			continue
		}

		replacement := renderVariant(mutation.Variant)
		if replacement == "" {
			replacement = "-" + mutation.Word.Value + "-"
		}

		tokens[index] = replacement
	}

	return strings.Join(tokens, " ")
}

// renderVariant is the single token a variant occupies in a rendered sentence.
func renderVariant(variant string) string {
	return strings.ReplaceAll(variant, " ", "-")
}
