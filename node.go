package trie

import "sort"

const (
	// startMarker and endMarker wrap every stored or queried word. They are
	// negative so no rune decoded from a Go string can collide with them.
	startMarker rune = -1
	endMarker   rune = -2

	wildcard rune = '.'
)

// node is one letter position in a Trie. The root holds startMarker, every
// other node holds the letter of the edge leading to it. A child keyed by
// endMarker records that a word terminates at this node.
type node struct {
	letter   rune
	children map[rune]*node
}

func newNode(letter rune) *node {
	return &node{letter: letter, children: make(map[rune]*node)}
}

// pad returns word wrapped in start and end markers.
func pad(word string) []rune {
	padded := make([]rune, 0, len(word)+2)
	padded = append(padded, startMarker)
	padded = append(padded, []rune(word)...)
	return append(padded, endMarker)
}

// insert adds the padded word whose first rune is n.letter.
func (n *node) insert(word []rune) {
	if len(word) == 1 {
		return
	}
	next := word[1]
	child, ok := n.children[next]
	if !ok {
		child = newNode(next)
		n.children[next] = child
	}
	child.insert(word[1:])
}

// contains reports whether the padded word, which may hold wildcards, is
// spelled by a path starting at n. A wildcard only ever matches a letter and
// never the end of a stored word.
func (n *node) contains(word []rune) bool {
	if len(word) == 1 {
		return word[0] == n.letter
	}
	next, rest := word[1], word[1:]
	if next != wildcard {
		child, ok := n.children[next]
		if !ok {
			return false
		}
		return child.contains(rest)
	}
	for letter, child := range n.children {
		if letter == endMarker {
			continue
		}
		if child.contains(rest) {
			return true
		}
	}
	return false
}

// search walks the padded prefix and returns every stored word below it,
// each one spelled as prefix followed by its suffix.
func (n *node) search(word []rune, prefix string) []string {
	next := word[1]
	if next != endMarker {
		child, ok := n.children[next]
		if !ok {
			return []string{}
		}
		return child.search(word[1:], prefix)
	}
	suffixes := n.suffixes()
	words := make([]string, len(suffixes))
	for i, suffix := range suffixes {
		words[i] = prefix + suffix
	}
	return words
}

// suffixes collects every suffix that completes a word from n, in ascending
// order. endMarker sorts before all letters so shorter words come first.
func (n *node) suffixes() []string {
	var all []string
	for _, letter := range n.sortedKeys() {
		if letter == endMarker {
			all = append(all, "")
			continue
		}
		for _, suffix := range n.children[letter].suffixes() {
			all = append(all, string(letter)+suffix)
		}
	}
	return all
}

func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
