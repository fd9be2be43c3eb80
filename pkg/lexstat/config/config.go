package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexstat/pkg/lexstat/internalerr"
	"github.com/cognicore/lexstat/pkg/lexstat/window"
)

// Config is the optional YAML run configuration. Command-line flags
// override anything set here.
type Config struct {
	// Window is the co-occurrence window radius.
	Window int `yaml:"window"`

	// FoldCase lower-cases judgment-table tokens before lookup. The corpus
	// itself is never folded; it is assumed pre-normalized.
	FoldCase bool `yaml:"fold_case"`

	// Judgment table column names; defaults match the WordSim table layout.
	Word1Column string `yaml:"word1_column"`
	Word2Column string `yaml:"word2_column"`
	ScoreColumn string `yaml:"score_column"`

	// StorePath is an optional SQLite database for persisted runs.
	StorePath string `yaml:"store_path"`

	// Workers for the parallel corpus pass; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window:   window.DefaultRadius,
		FoldCase: true,
	}
}

// Load reads a YAML config from path, filling unset fields with defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Window < window.MinRadius {
		return Config{}, fmt.Errorf("window %d below minimum %d: %w",
			cfg.Window, window.MinRadius, internalerr.ErrInvalidConfig)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("workers %d negative: %w",
			cfg.Workers, internalerr.ErrInvalidConfig)
	}
	return cfg, nil
}
