package trie

import "sync"

// Dictionary stores lowercase words in a trie and answers exact, wildcard and
// prefix queries over them.
type Dictionary struct {
	root *node
	mu   sync.RWMutex
}

// New creates a new empty dictionary.
func New() *Dictionary {
	return &Dictionary{root: newNode(startMarker)}
}

// AddWord adds a word made of the letters a-z. The empty word is allowed.
func (d *Dictionary) AddWord(word string) error {
	if err := validateWord(word); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root.insert(pad(word))
	return nil
}

// AddWords adds all words, or none of them if any word is invalid.
func (d *Dictionary) AddWords(words ...string) error {
	for _, word := range words {
		if err := validateWord(word); err != nil {
			return err
		}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, word := range words {
		d.root.insert(pad(word))
	}
	return nil
}

// Contains reports whether the word is in the dictionary.
// A dot in word matches any one letter, so ".ad" finds both "bad" and "mad".
func (d *Dictionary) Contains(word string) (bool, error) {
	if err := validatePattern(word); err != nil {
		return false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.root.contains(pad(word)), nil
}

// Search returns every stored word that has prefix as a literal prefix, in
// lexicographic order. The prefix itself is included when it was added as a
// word. Dots are rejected here; wildcards only apply to Contains.
func (d *Dictionary) Search(prefix string) ([]string, error) {
	if err := validateWord(prefix); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.root.search(pad(prefix), prefix), nil
}
