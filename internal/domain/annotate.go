package domain

import (
	"fmt"
	"log/slog"
	"strings"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// Annotate tokenizes and tags sentence. The returned words carry no variants.
func (vm *WordVariantModel) Annotate(sentence string) ([]m.Word, error) {
	tokens := vm.annotator.Tokenize(sentence)

	tagged, err := vm.annotator.TagPartsOfSpeech(tokens)
	if err != nil {
		slog.Error("Failed to tag sentence", "sentence", sentence, "error", err)
		return nil, fmt.Errorf("tag sentence: %w", err)
	}

	words := make([]m.Word, 0, len(tagged))

	for index, token := range tagged {
		value := strings.ToLower(token.Token)
		words = append(words, m.Word{
			Index:      index,
			Value:      value,
			Pos:        m.PosClassFromTag(token.Tag),
			IsStopword: vm.annotator.IsStopword(value),
		})
	}

	return words, nil
}

// Enrich fills the Variants of every word in place.
func (vm *WordVariantModel) Enrich(words []m.Word) error {
	for i := range words {
		variants, err := vm.Variants(words[i])
		if err != nil {
			return err
		}

		words[i].Variants = variants
	}

	return nil
}

// Preprocess annotates sentence and computes the variants of every word.
func (vm *WordVariantModel) Preprocess(sentence string) ([]m.Word, error) {
	words, err := vm.Annotate(sentence)
	if err != nil {
		return nil, err
	}

	if err := vm.Enrich(words); err != nil {
		return nil, err
	}

	return words, nil
}

// nontrivialWords keeps the words eligible for replacement, in sentence order.
func nontrivialWords(words []m.Word) []m.Word {
	result := make([]m.Word, 0, len(words))

	for _, word := range words {
		if word.IsNontrivial() {
			result = append(result, word)
		}
	}

	return result
}

// replaceableWords is nontrivialWords with variants folded by rendered token.
// Variants rendering to the original token are dropped and variants rendering
// alike are merged into the lexicographically first one, summing counts. Words
// left without variants are dropped. The input is not modified.
func replaceableWords(words []m.Word) []m.Word {
	result := make([]m.Word, 0, len(words))

	for _, word := range nontrivialWords(words) {
		folded := map[string]int{}
		kept := map[string]string{}

		for _, variant := range sortedKeys(word.Variants) {
			rendered := renderVariant(variant)
			if strings.EqualFold(rendered, renderVariant(word.Value)) {
				continue
			}

			if first, ok := kept[rendered]; ok {
				folded[first] += word.Variants[variant]
				continue
			}

			kept[rendered] = variant
			folded[variant] = word.Variants[variant]
		}

		if len(folded) == 0 {
			continue
		}

		word.Variants = folded
		result = append(result, word)
	}

	return result
}

func wordValues(words []m.Word) []string {
	values := make([]string, len(words))
	for i, word := range words {
		values[i] = word.Value
	}

	return values
}
