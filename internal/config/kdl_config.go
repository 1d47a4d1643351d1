package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/rolex/internal/debug"
)

// LoadKDL attempts to load configuration from a .rolex.kdl file in dir.
// It returns nil, nil when the file does not exist.
func LoadKDL(dir string) (*Config, error) {
	kdlPath := filepath.Join(dir, KDLFileName)

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KDLFileName, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}
	debug.LogLoad("config loaded from %s", kdlPath)
	return cfg, nil
}

// parseKDL reads a config document on top of the defaults:
//
//	corpus {
//	    vocabulary "data/corpus.txt" "data/extra/**/*.txt"
//	    synsets "data/rown.xml"
//	    inflected "data/inflected_index.json"
//	}
//	dictionary { max_edit_distance 2; prefix_length 7; diacritic_threshold 1.0 }
//	distance { diacritic_cost 0.25 }
//	related { compact_synonyms 3 }
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "corpus":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "vocabulary":
					if patterns := collectStringArgs(cn); len(patterns) > 0 {
						cfg.Corpus.Vocabulary = patterns
					}
				case "synsets":
					assignSimpleString(cn, func(v string) { cfg.Corpus.Synsets = v })
				case "inflected":
					assignSimpleString(cn, func(v string) { cfg.Corpus.Inflected = v })
				}
			}
		case "dictionary":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "max_edit_distance":
					if v, ok := firstIntArg(cn); ok {
						cfg.Dictionary.MaxEditDistance = v
					}
				case "prefix_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Dictionary.PrefixLength = v
					}
				case "diacritic_threshold":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Dictionary.DiacriticThreshold = v
					}
				case "max_results":
					if v, ok := firstIntArg(cn); ok {
						cfg.Dictionary.MaxResults = v
					}
				case "cache_size":
					if v, ok := firstIntArg(cn); ok {
						cfg.Dictionary.CacheSize = v
					}
				}
			}
		case "distance":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "substitution_cost":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Distance.SubstitutionCost = v
					}
				case "diacritic_cost":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Distance.DiacriticCost = v
					}
				case "indel_cost":
					if v, ok := firstFloatArg(cn); ok {
						cfg.Distance.IndelCost = v
					}
				}
			}
		case "related":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "compact_synonyms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Related.CompactSynonyms = v
					}
				case "compact_hypernyms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Related.CompactHypernyms = v
					}
				case "compact_hyponyms":
					if v, ok := firstIntArg(cn); ok {
						cfg.Related.CompactHyponyms = v
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions over the kdl-go document model
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}
func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		debug.Log("CONFIG", "invalid float value for '%s', expected number but got %T", nodeName(n), n.Arguments[0].Value)
		return 0, false
	}
}
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block form: vocabulary { "a.txt"; "b/**/*.txt" }
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}

	return out
}
func assignSimpleString(n *document.Node, set func(string)) {
	if s, ok := firstStringArg(n); ok {
		set(s)
	}
}
