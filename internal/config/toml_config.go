package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/rolex/internal/debug"
)

// LoadTOML loads configuration from a .rolex.toml file in dir, on top of
// the defaults. It returns nil, nil when the file does not exist.
//
//	[corpus]
//	vocabulary = ["data/corpus.txt"]
//	synsets = "data/rown.xml"
//
//	[dictionary]
//	max_edit_distance = 2
func LoadTOML(dir string) (*Config, error) {
	tomlPath := filepath.Join(dir, TOMLFileName)

	data, err := os.ReadFile(tomlPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TOMLFileName, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}
	debug.LogLoad("config loaded from %s", tomlPath)
	return cfg, nil
}
