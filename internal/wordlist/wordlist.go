// Package wordlist fills a dictionary from newline separated word lists.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-words-trie"
)

// Stats counts the outcome of a load.
type Stats struct {
	Added    int
	Rejected int
}

// Load adds one word per line read from r. Blank lines and lines starting
// with '#' are skipped. Words the dictionary rejects are logged and counted,
// they do not stop the load.
func Load(r io.Reader, d *trie.Dictionary, logger zerolog.Logger) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if err := d.AddWord(word); err != nil {
			if !errors.Is(err, trie.ErrInvalidCharacters) {
				return stats, err
			}
			logger.Warn().Err(err).Int("line", line).Str("word", word).Msg("Skipping word")
			stats.Rejected++
			continue
		}
		stats.Added++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read word list: %w", err)
	}
	logger.Debug().Int("added", stats.Added).Int("rejected", stats.Rejected).Msg("Loaded word list")
	return stats, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string, d *trie.Dictionary, logger zerolog.Logger) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return Load(f, d, logger.With().Str("path", path).Logger())
}
