package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	m "mutatest.dev/pkg/mutatest/internal/model"
)

func sentenceWords(sentence string, stopwords ...string) []m.Word {
	stop := map[string]bool{}
	for _, word := range stopwords {
		stop[word] = true
	}

	fields := strings.Fields(sentence)
	words := make([]m.Word, len(fields))

	for i, value := range fields {
		words[i] = m.Word{Index: i, Value: value, Pos: m.PosNoun, IsStopword: stop[value]}
	}

	return words
}

func TestGenerateDropouts(t *testing.T) {
	fox := sentenceWords("the quick brown fox jumps over the lazy dog", "the", "over")

	tests := []struct {
		name   string
		words  []m.Word
		k      int
		limit  int
		strict bool
		want   []string
	}{
		{
			name:   "first combinations in lexicographic order",
			words:  fox,
			k:      1,
			limit:  3,
			strict: true,
			want: []string{
				"the quick fox jumps over the lazy dog",
				"the quick brown fox jumps over the lazy",
				"the quick brown jumps over the lazy dog",
			},
		},
		{
			name:  "two words at once",
			words: fox,
			k:     2,
			limit: 2,
			want: []string{
				"the quick fox jumps over the lazy",
				"the quick jumps over the lazy dog",
			},
		},
		{
			name:  "repeated value drops one occurrence",
			words: sentenceWords("cat sees cat", "sees"),
			k:     1,
			limit: 5,
			want:  []string{"sees cat"},
		},
		{
			name:   "strict short supply is empty",
			words:  sentenceWords("cat sees cat", "sees"),
			k:      1,
			limit:  2,
			strict: true,
			want:   nil,
		},
		{
			name:  "k larger than candidates",
			words: sentenceWords("the cat", "the"),
			k:     2,
			limit: 1,
			want:  []string{},
		},
		{
			name:  "zero k keeps the sentence",
			words: sentenceWords("the cat", "the"),
			k:     0,
			limit: 3,
			want:  []string{"the cat"},
		},
		{
			name:  "zero limit",
			words: fox,
			k:     1,
			limit: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateDropouts(tt.words, tt.k, tt.limit, tt.strict))
		})
	}
}

func TestGenerateDropouts_Properties(t *testing.T) {
	words := sentenceWords("the quick brown fox jumps over the lazy dog", "the", "over")

	for k := 1; k <= 3; k++ {
		sentences := GenerateDropouts(words, k, 100, false)
		assert.NotEmpty(t, sentences)

		seen := map[string]bool{}
		for _, sentence := range sentences {
			assert.Len(t, strings.Fields(sentence), len(words)-k)
			assert.False(t, seen[sentence], "duplicate %q", sentence)
			seen[sentence] = true
		}
	}
}

func TestForEachCombination(t *testing.T) {
	var got [][]int

	forEachCombination(4, 2, func(combination []int) bool {
		got = append(got, append([]int(nil), combination...))
		return true
	})

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}
