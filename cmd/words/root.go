package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	trie "github.com/sarthakjha889/go-words-trie"
	"github.com/sarthakjha889/go-words-trie/internal/config"
	"github.com/sarthakjha889/go-words-trie/internal/wordlist"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	wordsFile  string
	extra      []string

	logger zerolog.Logger
	dict   *trie.Dictionary
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "words",
		Short:         "Query an in-memory dictionary of lowercase words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&a.wordsFile, "words", "", "Word list to load, one word per line")
	root.PersistentFlags().StringSliceVar(&a.extra, "add", nil, "Extra words to add after the word list")

	root.AddCommand(
		newContainsCmd(a),
		newSearchCmd(a),
		newListCmd(a),
		newDemoCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.logger, err = newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	log.Logger = a.logger

	a.dict = trie.New()
	file := cfg.Words.File
	if a.wordsFile != "" {
		file = a.wordsFile
	}
	if file != "" {
		stats, err := wordlist.LoadFile(file, a.dict, a.logger)
		if err != nil {
			return err
		}
		a.logger.Info().Str("path", file).Int("added", stats.Added).Int("rejected", stats.Rejected).Msg("Loaded word list")
	}
	if err := a.dict.AddWords(a.extra...); err != nil {
		return fmt.Errorf("--add: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <pattern>...",
		Short: "Report whether each pattern is a stored word; '.' matches any one letter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pattern := range args {
				found, err := a.dict.Contains(pattern)
				if err != nil {
					return fmt.Errorf("%q: %w", pattern, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", pattern, found)
			}
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <prefix>...",
		Short: "List the stored words starting with each prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, prefix := range args {
				words, err := a.dict.Search(prefix)
				if err != nil {
					return fmt.Errorf("%q: %w", prefix, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", prefix, words)
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every stored word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, err := a.dict.Search("")
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
