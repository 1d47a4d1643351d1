package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/rolex/internal/corpus"
	"github.com/standardbeagle/rolex/internal/distance"
	"github.com/standardbeagle/rolex/internal/related"
	"github.com/standardbeagle/rolex/pkg/pathutil"
)

// requireArgs checks the positional argument count of a command
func requireArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%s: expected %s", c.Command.Name, c.Command.ArgsUsage)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// correctCommand prints ranked correction candidates
func correctCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	engine, err := loadEngine(c)
	if err != nil {
		return err
	}

	k := engine.MaxResults()
	if c.IsSet("max") {
		k = c.Int("max")
	}
	suggestions, err := engine.Suggest(c.Args().First(), k)
	if err != nil {
		return err
	}

	w := c.App.Writer
	if c.Bool("json") {
		return writeJSON(w, suggestions)
	}
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions")
		return nil
	}
	for _, s := range suggestions {
		if c.Bool("scores") {
			fmt.Fprintf(w, "%s\t%.2f\t%d\n", s.Term, s.Distance, s.PlainDistance)
			continue
		}
		fmt.Fprintln(w, s.Term)
	}
	return nil
}

// relatedCommand prints related forms inflected like the input
func relatedCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	engine, err := loadEngine(c)
	if err != nil {
		return err
	}

	forms := engine.Relations(c.Args().First())
	w := c.App.Writer
	switch {
	case c.Bool("full") && c.Bool("json"):
		return writeJSON(w, forms)
	case c.Bool("full"):
		printForms(w, forms)
		return nil
	}

	compact := engine.Compact(forms)
	if c.Bool("json") {
		return writeJSON(w, compact)
	}
	for _, f := range compact {
		fmt.Fprintln(w, f)
	}
	return nil
}

// relationsCommand prints the raw graph neighbourhood of a lemma
func relationsCommand(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	engine, err := loadEngine(c)
	if err != nil {
		return err
	}

	forms := engine.RawRelations(c.Args().First())
	if c.Bool("json") {
		return writeJSON(c.App.Writer, forms)
	}
	printForms(c.App.Writer, forms)
	return nil
}

func printForms(w io.Writer, f related.Forms) {
	if f.Lemma != f.Input {
		fmt.Fprintf(w, "lemma:     %s\n", f.Lemma)
	}
	fmt.Fprintf(w, "synonyms:  %s\n", strings.Join(f.Synonyms, ", "))
	fmt.Fprintf(w, "hypernyms: %s\n", strings.Join(f.Hypernyms, ", "))
	fmt.Fprintf(w, "hyponyms:  %s\n", strings.Join(f.Hyponyms, ", "))
}

// distanceCommand scores two words. It reads no corpus; only the distance
// section of the config is used.
func distanceCommand(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	a, b := c.Args().Get(0), c.Args().Get(1)
	d, err := cfg.Metric().Distance(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%.2f\n", d)
	if c.Bool("plain") {
		fmt.Fprintf(c.App.Writer, "levenshtein: %d\n", distance.Levenshtein(a, b))
	}
	return nil
}

// statsCommand prints corpus load statistics
func statsCommand(c *cli.Context) error {
	engine, err := loadEngine(c)
	if err != nil {
		return err
	}

	if c.Bool("verify") {
		if err := engine.Verify(); err != nil {
			return err
		}
	}

	stats := engine.Stats()
	w := c.App.Writer
	if c.Bool("json") {
		return writeJSON(w, stats)
	}

	fmt.Fprintf(w, "Words:           %s\n", humanize.Comma(int64(stats.Words)))
	fmt.Fprintf(w, "Delete keys:     %s\n", humanize.Comma(int64(stats.DeleteKeys)))
	fmt.Fprintf(w, "Synsets:         %s\n", humanize.Comma(int64(stats.Synsets)))
	fmt.Fprintf(w, "Literals:        %s\n", humanize.Comma(int64(stats.Literals)))
	fmt.Fprintf(w, "Hypernym edges:  %s\n", humanize.Comma(int64(stats.HypernymEdges)))
	fmt.Fprintf(w, "Inflected forms: %s (%s lemmas)\n",
		humanize.Comma(int64(stats.InflectedForms)), humanize.Comma(int64(stats.Lemmas)))
	fmt.Fprintf(w, "Skipped records: %s\n", humanize.Comma(int64(stats.Skipped)))
	fmt.Fprintln(w)
	printReports(c, w, engine.Reports(), false)
	if c.Bool("verify") {
		fmt.Fprintln(w, "Lexical graph verified")
	}
	return nil
}

// printReports writes one line per corpus load, with paths shown relative
// to the config directory
func printReports(c *cli.Context, w io.Writer, reports []*corpus.Report, diagnostics bool) {
	root, err := filepath.Abs(c.String("config"))
	if err != nil {
		root = ""
	}
	for _, r := range reports {
		fmt.Fprintf(w, "%-10s %s records, %s accepted, %s duplicates, %s skipped (%s)\n",
			r.Corpus+":",
			humanize.Comma(int64(r.Records)), humanize.Comma(int64(r.Accepted)),
			humanize.Comma(int64(r.Duplicates)), humanize.Comma(int64(r.Skipped())),
			strings.Join(pathutil.ToRelativeAll(r.Paths, root), ", "))
		if !diagnostics {
			continue
		}
		for _, d := range r.Diagnostics {
			fmt.Fprintf(w, "  %v\n", d)
		}
	}
}
