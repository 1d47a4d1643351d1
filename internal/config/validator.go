package config

import (
	"errors"
	"fmt"

	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/dictionary"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults
// Returns an error if validation fails
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	v.setSmartDefaults(cfg)

	if err := v.validateCorpusConfig(&cfg.Corpus); err != nil {
		return rolexerrors.NewConfigError("corpus", "", err)
	}

	if err := v.validateDictionaryConfig(&cfg.Dictionary); err != nil {
		return rolexerrors.NewConfigError("dictionary", "", err)
	}

	if err := v.validateDistanceConfig(&cfg.Distance); err != nil {
		return rolexerrors.NewConfigError("distance", "", err)
	}

	if err := v.validateRelatedConfig(&cfg.Related); err != nil {
		return rolexerrors.NewConfigError("related", "", err)
	}

	return nil
}

func (v *Validator) validateCorpusConfig(corpus *Corpus) error {
	if len(corpus.Vocabulary) == 0 {
		return errors.New("at least one vocabulary file is required")
	}
	for _, p := range corpus.Vocabulary {
		if p == "" {
			return errors.New("vocabulary entries cannot be empty")
		}
	}
	if corpus.Synsets == "" {
		return errors.New("synset corpus path cannot be empty")
	}
	return nil
}

// largeEditDistance is the bound above which index size is worth a warning
const largeEditDistance = 4

// validateDictionaryConfig checks the coarse index parameters. The index
// bound is a construction input; lookups can never exceed it.
func (v *Validator) validateDictionaryConfig(dict *Dictionary) error {
	if dict.MaxEditDistance < 0 {
		return fmt.Errorf("max_edit_distance cannot be negative, got %d", dict.MaxEditDistance)
	}
	if dict.MaxEditDistance > largeEditDistance {
		debug.Log("CONFIG", "max_edit_distance %d: the delete index grows combinatorially with the bound; expect a slow load and a large index",
			dict.MaxEditDistance)
	}
	if dict.PrefixLength <= dict.MaxEditDistance {
		return fmt.Errorf("prefix_length (%d) must exceed max_edit_distance (%d)", dict.PrefixLength, dict.MaxEditDistance)
	}
	if dict.DiacriticThreshold < 0 {
		return fmt.Errorf("diacritic_threshold cannot be negative, got %v", dict.DiacriticThreshold)
	}
	if dict.MaxResults < 0 {
		return fmt.Errorf("max_results cannot be negative, got %d", dict.MaxResults)
	}
	if dict.CacheSize < 0 {
		return fmt.Errorf("cache_size cannot be negative, got %d", dict.CacheSize)
	}
	return nil
}

func (v *Validator) validateDistanceConfig(d *Distance) error {
	if d.SubstitutionCost <= 0 || d.IndelCost <= 0 {
		return fmt.Errorf("substitution and indel costs must be positive, got %v and %v", d.SubstitutionCost, d.IndelCost)
	}
	if d.DiacriticCost < 0 || d.DiacriticCost > d.SubstitutionCost {
		return fmt.Errorf("diacritic_cost must be between 0 and substitution_cost (%v), got %v", d.SubstitutionCost, d.DiacriticCost)
	}
	return nil
}

func (v *Validator) validateRelatedConfig(r *Related) error {
	if r.CompactSynonyms < 0 || r.CompactHypernyms < 0 || r.CompactHyponyms < 0 {
		return fmt.Errorf("compact limits cannot be negative, got %d/%d/%d",
			r.CompactSynonyms, r.CompactHypernyms, r.CompactHyponyms)
	}
	return nil
}

// setSmartDefaults fills sections left at zero
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}

	if cfg.Dictionary.PrefixLength == 0 {
		cfg.Dictionary.PrefixLength = dictionary.DefaultPrefixLength
	}

	if cfg.Dictionary.MaxResults == 0 {
		cfg.Dictionary.MaxResults = dictionary.DefaultMaxResults
	}

	// An all-zero distance section means it was never configured
	if cfg.Distance == (Distance{}) {
		cfg.Distance = Default().Distance
	}
}

// ValidateConfig is a convenience function for quick validation
func ValidateConfig(cfg *Config) error {
	validator := NewValidator()
	return validator.ValidateAndSetDefaults(cfg)
}
