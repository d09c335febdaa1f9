package domain

import (
	"log/slog"
	"sort"
	"strings"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

// GenerateDropouts returns up to limit sentences with exactly k non-stopword
// values removed. Combinations are enumerated in lexicographic order over the
// sorted distinct values, so the output never depends on map iteration. With
// strict set, anything short of limit sentences yields an empty result.
func GenerateDropouts(words []m.Word, k, limit int, strict bool) []string {
	if k < 0 || limit <= 0 {
		return nil
	}

	candidates := distinctDroppable(words)
	original := wordValues(words)
	sentences := make([]string, 0, limit)

	forEachCombination(len(candidates), k, func(combination []int) bool {
		remaining := append([]string(nil), original...)
		for _, index := range combination {
			remaining = removeFirst(remaining, candidates[index])
		}

		sentences = append(sentences, strings.Join(remaining, " "))

		return len(sentences) < limit
	})

	if strict && len(sentences) < limit {
		slog.Debug("Not enough dropout combinations", "wanted", limit, "got", len(sentences), "candidates", len(candidates), "k", k)
		return nil
	}

	return sentences
}

func distinctDroppable(words []m.Word) []string {
	seen := map[string]struct{}{}
	values := make([]string, 0, len(words))

	for _, word := range words {
		if word.IsStopword {
			continue
		}

		if _, dup := seen[word.Value]; dup {
			continue
		}

		seen[word.Value] = struct{}{}
		values = append(values, word.Value)
	}

	sort.Strings(values)

	return values
}

// forEachCombination visits the k-combinations of 0..n-1 in lexicographic
// order until visit returns false.
func forEachCombination(n, k int, visit func([]int) bool) {
	if k > n {
		return
	}

	combination := make([]int, k)
	for i := range combination {
		combination[i] = i
	}

	for {
		if !visit(combination) {
			return
		}

		i := k - 1
		for i >= 0 && combination[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		combination[i]++
		for j := i + 1; j < k; j++ {
			combination[j] = combination[j-1] + 1
		}
	}
}

func removeFirst(values []string, target string) []string {
	for i, value := range values {
		if value == target {
			return append(values[:i], values[i+1:]...)
		}
	}

	return values
}
