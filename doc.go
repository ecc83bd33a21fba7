/*
Package trie provides an in-memory dictionary of lowercase words backed by a
prefix tree. It answers exact lookups, single-letter wildcard lookups using
the dot character, and prefix searches that enumerate every stored word
beginning with a literal prefix.
*/
package trie
