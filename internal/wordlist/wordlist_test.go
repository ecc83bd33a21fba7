package wordlist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trie "github.com/sarthakjha889/go-words-trie"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad(t *testing.T) {
	t.Run("Adds valid words and skips the rest", func(t *testing.T) {
		var logs bytes.Buffer
		d := trie.New()
		input := "# colours\nred\n\n  blue  \nGreen\nre.d\nred\n"
		stats, err := Load(strings.NewReader(input), d, zerolog.New(&logs))
		require.NoError(t, err)
		assert.Equal(t, Stats{Added: 3, Rejected: 2}, stats)

		words, err := d.Search("")
		require.NoError(t, err)
		assert.Equal(t, []string{"blue", "red"}, words)
		assert.Contains(t, logs.String(), `"word":"Green"`)
		assert.Contains(t, logs.String(), `"line":6`)
	})

	t.Run("Read error", func(t *testing.T) {
		_, err := Load(failingReader{}, trie.New(), zerolog.Nop())
		assert.ErrorContains(t, err, "disk on fire")
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("mad\nmadmax\n"), 0o600))
		d := trie.New()
		stats, err := LoadFile(path, d, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Added)
		words, err := d.Search("mad")
		require.NoError(t, err)
		assert.Equal(t, []string{"mad", "madmax"}, words)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"), trie.New(), zerolog.Nop())
		assert.ErrorContains(t, err, "failed to open word list")
	})
}
