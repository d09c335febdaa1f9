package domain

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// maxRandomRetries bounds the duplicate draws of the random strategy per run.
const maxRandomRetries = 500

// ParseStrategy resolves a selection strategy name.
func ParseStrategy(name string) (m.Strategy, error) {
	switch strategy := m.Strategy(name); strategy {
	case m.StrategyRandom, m.StrategyMostCommonFirst:
		return strategy, nil
	}

	return "", fmt.Errorf("%w: unknown selection strategy %q", ErrConfiguration, name)
}

func selectMutations(strategy m.Strategy, words []m.Word, k, numVariants int, rng *rand.Rand, strict bool) ([]m.MutationSet, error) {
	switch strategy {
	case m.StrategyRandom:
		return SelectRandom(words, k, numVariants, rng, strict), nil
	case m.StrategyMostCommonFirst:
		return SelectMostCommonFirst(words, k, numVariants, rng, strict), nil
	}

	return nil, fmt.Errorf("%w: unknown selection strategy %q", ErrConfiguration, strategy)
}

// SelectRandom draws numVariants distinct mutation sets. Each set replaces k
// words sampled without replacement, each with a uniformly chosen variant.
// Once the duplicate draws of the run reach the retry budget the whole result
// is dropped. When k exceeds the available words it is clamped, or the result
// is empty in strict mode.
func SelectRandom(words []m.Word, k, numVariants int, rng *rand.Rand, strict bool) []m.MutationSet {
	words = replaceableWords(words)
	if len(words) == 0 || numVariants <= 0 || k < 0 {
		return nil
	}

	if k > len(words) {
		if strict {
			return nil
		}

		k = len(words)
	}

	if k == 0 {
		// the empty set is the only one there is
		if strict && numVariants > 1 {
			return nil
		}

		return []m.MutationSet{{}}
	}

	choices := sortedVariantKeys(words)
	accepted := map[string]struct{}{}
	result := make([]m.MutationSet, 0, numVariants)
	retries := 0

	for len(result) < numVariants {
		set := make(m.MutationSet, 0, k)
		for _, index := range sampleIndexes(rng, len(words), k) {
			variants := choices[index]
			set = append(set, m.Mutation{Word: words[index], Variant: variants[rng.IntN(len(variants))]})
		}

		key := set.Key()
		if _, dup := accepted[key]; dup {
			retries++
			if retries >= maxRandomRetries {
				slog.Debug("Random selection exhausted retries", "accepted", len(result), "wanted", numVariants)
				return nil
			}

			continue
		}

		accepted[key] = struct{}{}
		result = append(result, set)
	}

	return result
}

// SelectMostCommonFirst fills each output sentence greedily from the variants
// suggested most often, choosing uniformly among ties and never replacing the
// same word twice in one sentence. A (word, variant) pair is consumed once
// used, so it never appears in two sentences of the same run. When supply runs
// out the sentences built so far are returned, or nothing in strict mode.
func SelectMostCommonFirst(words []m.Word, k, numVariants int, rng *rand.Rand, strict bool) []m.MutationSet {
	words = replaceableWords(words)
	if len(words) == 0 || numVariants <= 0 || k < 0 {
		return nil
	}

	buckets, counts, contributing := groupByCount(words)
	if len(words) < k || contributing < k {
		return nil
	}

	accepted := map[string]struct{}{}
	result := make([]m.MutationSet, 0, numVariants)

	for len(result) < numVariants {
		set := fillMostCommon(buckets, counts, k, rng)

		_, dup := accepted[set.Key()]
		if len(set) < k || dup {
			slog.Debug("Most-common-first supply exhausted", "accepted", len(result), "wanted", numVariants, "strict", strict)

			if strict {
				return nil
			}

			break
		}

		accepted[set.Key()] = struct{}{}
		result = append(result, set)
	}

	return result
}

func fillMostCommon(buckets map[int][]m.Mutation, counts []int, k int, rng *rand.Rand) m.MutationSet {
	set := make(m.MutationSet, 0, k)
	chosen := map[int]struct{}{}

	for b := 0; len(set) < k && b < len(counts); {
		bucket := buckets[counts[b]]

		candidates := make([]int, 0, len(bucket))
		for i, pair := range bucket {
			if _, used := chosen[pair.Word.Index]; !used {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) == 0 {
			b++
			continue
		}

		pick := candidates[rng.IntN(len(candidates))]
		pair := bucket[pick]

		chosen[pair.Word.Index] = struct{}{}
		set = append(set, pair)
		buckets[counts[b]] = append(bucket[:pick], bucket[pick+1:]...)
	}

	return set
}

// groupByCount buckets every (word, variant) pair by suggestion count. Buckets
// keep sentence order, then variant order; counts are sorted descending.
func groupByCount(words []m.Word) (map[int][]m.Mutation, []int, int) {
	buckets := map[int][]m.Mutation{}
	contributing := 0

	for _, word := range words {
		variants := sortedKeys(word.Variants)
		if len(variants) > 0 {
			contributing++
		}

		for _, variant := range variants {
			count := word.Variants[variant]
			buckets[count] = append(buckets[count], m.Mutation{Word: word, Variant: variant})
		}
	}

	counts := make([]int, 0, len(buckets))
	for count := range buckets {
		counts = append(counts, count)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	return buckets, counts, contributing
}

// sampleIndexes picks k distinct indexes out of n with a partial Fisher-Yates
// shuffle.
func sampleIndexes(rng *rand.Rand, n, k int) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	return indexes[:k]
}

func sortedVariantKeys(words []m.Word) [][]string {
	keys := make([][]string, len(words))
	for i, word := range words {
		keys[i] = sortedKeys(word.Variants)
	}

	return keys
}

func sortedKeys(variants map[string]int) []string {
	keys := make([]string, 0, len(variants))
	for key := range variants {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
