package tfidf

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the text and splits it into word tokens.
// A token is a run of letters, digits, or underscores at least two
// runes long. Stop-words are removed after tokenisation.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	length := 0

	flush := func() {
		if length >= 2 {
			tok := current.String()
			if !stopWords[tok] {
				tokens = append(tokens, tok)
			}
		}
		current.Reset()
		length = 0
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
			length++
			continue
		}
		flush()
	}
	flush()

	return tokens
}
