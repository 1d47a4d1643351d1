package config

import (
	"path/filepath"

	"github.com/standardbeagle/rolex/internal/dictionary"
	"github.com/standardbeagle/rolex/internal/distance"
	"github.com/standardbeagle/rolex/internal/related"
)

// Config file names, looked up in this order
const (
	KDLFileName  = ".rolex.kdl"
	TOMLFileName = ".rolex.toml"
)

// Default corpus locations, relative to the config directory
const (
	DefaultVocabulary = "data/corpus.txt"
	DefaultSynsets    = "data/rown.xml"
	DefaultInflected  = "data/inflected_index.json"
)

// DefaultCacheSize is the number of memoized corrections
const DefaultCacheSize = 1000

type Config struct {
	Version    int        `toml:"version"`
	Root       string     `toml:"-"` // directory relative corpus paths resolve against
	Corpus     Corpus     `toml:"corpus"`
	Dictionary Dictionary `toml:"dictionary"`
	Distance   Distance   `toml:"distance"`
	Related    Related    `toml:"related"`
}

type Corpus struct {
	Vocabulary []string `toml:"vocabulary"` // doublestar globs, merged
	Synsets    string   `toml:"synsets"`    // RoWN XML
	Inflected  string   `toml:"inflected"`  // NDJSON, optional
}

type Dictionary struct {
	MaxEditDistance    int     `toml:"max_edit_distance"` // coarse index bound
	PrefixLength       int     `toml:"prefix_length"`
	DiacriticThreshold float64 `toml:"diacritic_threshold"`
	MaxResults         int     `toml:"max_results"`
	CacheSize          int     `toml:"cache_size"` // 0 disables memoization
}

type Distance struct {
	SubstitutionCost float64 `toml:"substitution_cost"`
	DiacriticCost    float64 `toml:"diacritic_cost"`
	IndelCost        float64 `toml:"indel_cost"`
}

type Related struct {
	CompactSynonyms  int `toml:"compact_synonyms"`
	CompactHypernyms int `toml:"compact_hypernyms"`
	CompactHyponyms  int `toml:"compact_hyponyms"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Version: 1,
		Corpus: Corpus{
			Vocabulary: []string{DefaultVocabulary},
			Synsets:    DefaultSynsets,
			Inflected:  DefaultInflected,
		},
		Dictionary: Dictionary{
			MaxEditDistance:    dictionary.DefaultMaxEditDistance,
			PrefixLength:       dictionary.DefaultPrefixLength,
			DiacriticThreshold: dictionary.DefaultDiacriticThreshold,
			MaxResults:         dictionary.DefaultMaxResults,
			CacheSize:          DefaultCacheSize,
		},
		Distance: Distance{
			SubstitutionCost: distance.DefaultSubstitutionCost,
			DiacriticCost:    distance.DefaultDiacriticCost,
			IndelCost:        distance.DefaultIndelCost,
		},
		Related: Related{
			CompactSynonyms:  related.DefaultLimits.Synonyms,
			CompactHypernyms: related.DefaultLimits.Hypernyms,
			CompactHyponyms:  related.DefaultLimits.Hyponyms,
		},
	}
}

// Load reads .rolex.kdl from dir, falling back to .rolex.toml and then to
// the defaults. Relative corpus paths are resolved against dir.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		root = dir
	}

	cfg, err := LoadKDL(root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		if cfg, err = LoadTOML(root); err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = Default()
	}

	cfg.Root = root
	cfg.ResolvePaths()
	return cfg, nil
}

// ResolvePaths makes every relative corpus path absolute under Root
func (c *Config) ResolvePaths() {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || c.Root == "" {
			return p
		}
		return filepath.Join(c.Root, p)
	}
	for i, p := range c.Corpus.Vocabulary {
		c.Corpus.Vocabulary[i] = resolve(p)
	}
	c.Corpus.Synsets = resolve(c.Corpus.Synsets)
	c.Corpus.Inflected = resolve(c.Corpus.Inflected)
}

// DictionaryOptions converts the dictionary and distance sections
func (c *Config) DictionaryOptions() dictionary.Options {
	return dictionary.Options{
		MaxEditDistance:    c.Dictionary.MaxEditDistance,
		PrefixLength:       c.Dictionary.PrefixLength,
		DiacriticThreshold: c.Dictionary.DiacriticThreshold,
		Metric:             c.Metric(),
	}
}

// Metric converts the distance section
func (c *Config) Metric() distance.Metric {
	return distance.Metric{
		SubstitutionCost: c.Distance.SubstitutionCost,
		DiacriticCost:    c.Distance.DiacriticCost,
		IndelCost:        c.Distance.IndelCost,
	}
}

// CompactLimits converts the related section
func (c *Config) CompactLimits() related.Limits {
	return related.Limits{
		Synonyms:  c.Related.CompactSynonyms,
		Hypernyms: c.Related.CompactHypernyms,
		Hyponyms:  c.Related.CompactHyponyms,
	}
}
