// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"unicode"
)

// formatEmphasis bolds shouted words: without font weights, a word that
// survives uppercasing unchanged is the only emphasis signal left in the
// text. Single characters and words with no letters at all (numbers,
// punctuation) pass through untouched. Words are rejoined with single
// spaces, so the result is also trimmed.
func formatEmphasis(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if strings.ToUpper(word) == word && len(word) > 1 && containsLetter(word) {
			words[i] = "**" + word + "**"
		}
	}
	return strings.Join(words, " ")
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
