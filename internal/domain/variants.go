// Package domain contains the mutation generation engine and the mutamorphic
// test harness.
package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"mutatest.dev/pkg/mutatest/internal/adapter"
	m "mutatest.dev/pkg/mutatest/internal/model"
)

// WordVariantModel derives replacement candidates for annotated words from the
// synonyms and hypernyms of their senses.
type WordVariantModel struct {
	annotator adapter.LexicalAnnotator
}

// NewWordVariantModel constructs a WordVariantModel backed by annotator.
func NewWordVariantModel(annotator adapter.LexicalAnnotator) *WordVariantModel {
	return &WordVariantModel{annotator: annotator}
}

// Variants maps every candidate replacement of word to the number of times the
// lexicon suggests it. Stopwords and words without a lexical class have no
// variants and are never looked up.
func (vm *WordVariantModel) Variants(word m.Word) (map[string]int, error) {
	variants := map[string]int{}

	if word.IsStopword || !word.Pos.Valid() {
		return variants, nil
	}

	senses, err := vm.annotator.LookupSenses(word.Value, word.Pos)
	if err != nil {
		return nil, fmt.Errorf("lookup senses for %q: %w", word.Value, err)
	}

	for _, candidate := range synonyms(senses) {
		countVariant(variants, word.Value, candidate)
	}

	for _, candidate := range hypernyms(senses) {
		countVariant(variants, word.Value, candidate)
	}

	slog.Debug("Computed word variants", "word", word.Value, "pos", word.Pos, "senses", len(senses), "variants", len(variants))

	return variants, nil
}

func synonyms(senses []m.SenseSet) []string {
	var forms []string
	for _, sense := range senses {
		forms = append(forms, sense.Lemmas...)
	}

	return forms
}

func hypernyms(senses []m.SenseSet) []string {
	var forms []string

	for _, sense := range senses {
		for _, broader := range sense.Hypernyms {
			forms = append(forms, broader.Lemmas...)
		}
	}

	return forms
}

// countVariant counts lemma as a candidate for original. Candidates are told
// apart by their rendered token: one that renders back to original is dropped
// and candidates rendering alike share the count of the first one seen.
func countVariant(variants map[string]int, original, lemma string) {
	candidate := normalizeForm(lemma)
	if candidate == "" {
		return
	}

	rendered := renderVariant(candidate)
	if strings.EqualFold(rendered, renderVariant(original)) {
		return
	}

	for existing := range variants {
		if renderVariant(existing) == rendered {
			variants[existing]++
			return
		}
	}

	variants[candidate]++
}

// normalizeForm turns the word separators of a multi-word lemma into single
// spaces ("Canis_familiaris" -> "Canis familiaris").
func normalizeForm(lemma string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(lemma, "_", " ")), " ")
}
