package adapter

import (
	"strings"
	"unicode"
)

// tokenize splits text into runs of letters and digits and single punctuation
// tokens. Apostrophes and hyphens stay inside a run when both neighbours are
// letters or digits ("don't", "e-mail").
func tokenize(text string) []string {
	runes := []rune(text)
	tokens := make([]string, 0, len(runes)/4+1)

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isWordRune(r):
			current.WriteRune(r)
		case isJoiner(r) && current.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}

	flush()

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}
