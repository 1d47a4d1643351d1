package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/standardbeagle/rolex/internal/config"
	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/lexicon"
	"github.com/standardbeagle/rolex/internal/version"

	"github.com/urfave/cli/v2"
)

var Version = version.Version

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	dir := c.String("config")
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", dir, err)
	}

	// Override paths are relative to the working directory, not the config
	if vocab := c.StringSlice("vocabulary"); len(vocab) > 0 {
		cfg.Corpus.Vocabulary = cfg.Corpus.Vocabulary[:0]
		for _, p := range vocab {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve vocabulary path %q: %w", p, err)
			}
			cfg.Corpus.Vocabulary = append(cfg.Corpus.Vocabulary, abs)
		}
	}
	for flag, target := range map[string]*string{
		"synsets":   &cfg.Corpus.Synsets,
		"inflected": &cfg.Corpus.Inflected,
	} {
		if p := c.String(flag); p != "" {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s path %q: %w", flag, p, err)
			}
			*target = abs
		}
	}
	if c.IsSet("max-edit-distance") {
		cfg.Dictionary.MaxEditDistance = c.Int("max-edit-distance")
	}

	return cfg, nil
}

// loadEngine builds the engine for a command from the configured corpora
func loadEngine(c *cli.Context) (*lexicon.Engine, error) {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return nil, err
	}
	engine, err := lexicon.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpora: %w", err)
	}
	if c.Bool("verbose") {
		printReports(c, c.App.ErrWriter, engine.Reports(), true)
	}
	return engine, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "rolex",
		Usage:                  "Romanian spelling correction and related word forms",
		Version:                Version,
		UseShortOptionHandling: true,
		Before: func(c *cli.Context) error {
			if debug.IsDebugEnabled() {
				debug.SetDebugOutput(c.App.ErrWriter)
			}
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory holding .rolex.kdl or .rolex.toml",
				Value:   ".",
			},
			&cli.StringSliceFlag{
				Name:  "vocabulary",
				Usage: "Vocabulary files or globs (e.g., --vocabulary 'data/vocab/**/*.txt'), overrides config",
			},
			&cli.StringFlag{
				Name:  "synsets",
				Usage: "RoWN synset XML file, overrides config",
			},
			&cli.StringFlag{
				Name:  "inflected",
				Usage: "Inflected forms index (NDJSON), overrides config",
			},
			&cli.IntFlag{
				Name:  "max-edit-distance",
				Usage: "Dictionary index bound, overrides config",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log corpus diagnostics to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "correct",
				Aliases:   []string{"c"},
				Usage:     "Suggest correctly spelled words, best first",
				ArgsUsage: "WORD",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max",
						Aliases: []string{"k"},
						Usage:   "Maximum number of suggestions (default: dictionary.max_results)",
					},
					&cli.BoolFlag{
						Name:    "scores",
						Aliases: []string{"s"},
						Usage:   "Show weighted and plain distances",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: correctCommand,
			},
			{
				Name:      "related",
				Aliases:   []string{"r"},
				Usage:     "List synonyms, hypernyms and hyponyms inflected like WORD",
				ArgsUsage: "WORD",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Show every relation instead of the compact list",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: relatedCommand,
			},
			{
				Name:      "relations",
				Usage:     "Show the lexical graph's one-hop relations of a lemma",
				ArgsUsage: "LEMMA",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: relationsCommand,
			},
			{
				Name:      "distance",
				Aliases:   []string{"d"},
				Usage:     "Score two words with the diacritic-aware edit distance",
				ArgsUsage: "A B",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "Also show the plain Levenshtein distance",
					},
				},
				Action: distanceCommand,
			},
			{
				Name:    "stats",
				Aliases: []string{"st"},
				Usage:   "Show corpus load statistics and diagnostics",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
					&cli.BoolFlag{
						Name:    "verify",
						Aliases: []string{"v"},
						Usage:   "Re-check the lexical graph invariants",
					},
				},
				Action: statsCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Start MCP (Model Context Protocol) server with stdio transport",
				Action: mcpCommand,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
