package trie

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/rangetable"
)

var (
	lowercase = []rune("abcdefghijklmnopqrstuvwxyz")

	// letters is the alphabet of stored words and search prefixes.
	letters = runes.In(rangetable.New(lowercase...))
	// patterns is the alphabet of containment queries.
	patterns = runes.In(rangetable.New(append(append([]rune{}, lowercase...), wildcard)...))
)

// within reports whether every rune of s belongs to set. Invalid UTF-8 decodes
// to utf8.RuneError, which is in neither alphabet.
func within(set runes.Set, s string) bool {
	for _, r := range s {
		if !set.Contains(r) {
			return false
		}
	}
	return true
}

func validateWord(word string) error {
	if !within(letters, word) {
		return errBadLetters
	}
	return nil
}

func validatePattern(pattern string) error {
	if !within(patterns, pattern) {
		return errBadLettersAndDot
	}
	return nil
}
