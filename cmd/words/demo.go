package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	trie "github.com/sarthakjha889/go-words-trie"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the example calls against fresh dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runDemo(cmd.OutOrStdout())
			return nil
		},
	}
}

func runDemo(w io.Writer) {
	d := trie.New()
	for _, word := range []string{"bad", "dad", "mad", "magic"} {
		printResult(w, "add", word, d.AddWord(word))
	}
	for _, pattern := range []string{"pad", "bad", ".ad", "b.."} {
		found, err := d.Contains(pattern)
		printResult(w, "contains", pattern, found, err)
	}
	for _, prefix := range []string{"ma", "mag", "g", ".ad"} {
		words, err := d.Search(prefix)
		printResult(w, "search", prefix, words, err)
	}

	fmt.Fprintln(w, "--------------------------------")

	d = trie.New()
	printResult(w, "add", "mad", d.AddWord("mad"))
	printResult(w, "add", "madmax", d.AddWord("madmax"))
	words, err := d.Search("mad")
	printResult(w, "search", "mad", words, err)
	found, err := d.Contains("")
	printResult(w, "contains", "", found, err)
	words, err = d.Search("")
	printResult(w, "search", "", words, err)
	printResult(w, "add", "", d.AddWord(""))
	found, err = d.Contains("")
	printResult(w, "contains", "", found, err)
	words, err = d.Search("")
	printResult(w, "search", "", words, err)
	found, err = d.Contains("$")
	printResult(w, "contains", "$", found, err)
}

// printResult writes one line per call. The last value is the call's error.
func printResult(w io.Writer, op, input string, values ...interface{}) {
	err, _ := values[len(values)-1].(error)
	switch {
	case err != nil:
		fmt.Fprintf(w, "%s(%q): error: %v\n", op, input, err)
	case len(values) == 1:
		fmt.Fprintf(w, "%s(%q)\n", op, input)
	default:
		fmt.Fprintf(w, "%s(%q) = %v\n", op, input, fmtValue(values[0]))
	}
}

func fmtValue(v interface{}) string {
	if words, ok := v.([]string); ok {
		return fmt.Sprintf("%q", words)
	}
	return fmt.Sprint(v)
}
