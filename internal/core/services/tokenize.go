package services

import (
	"strings"
	"unicode"
)

// TokenSet is a case-folded set of word tokens.
type TokenSet map[string]struct{}

// Contains reports whether the set holds the given token.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Tokenize splits text into a set of lowercase word tokens. A word is a
// maximal run of Unicode letters, digits or underscores; everything else
// separates words. Tokenisation never fails: empty or punctuation-only
// text yields an empty set.
func Tokenize(text string) TokenSet {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := make(TokenSet, len(words))
	for _, w := range words {
		tokens[strings.ToLower(w)] = struct{}{}
	}
	return tokens
}
