// Package config holds the aocgen configuration: the accepted year/day
// bounds and the workspace layout the scaffolder writes into. Bounds are
// explicit values threaded into validation rather than package globals, so
// tests can shrink or widen them freely.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-workspace config file. A missing file
// means defaults.
const ConfigFileName = "aocgen.yaml"

// Config holds all aocgen configuration.
type Config struct {
	// Accepted puzzle bounds, inclusive.
	MinYear int `yaml:"min_year"`
	MaxYear int `yaml:"max_year"`
	MaxDay  int `yaml:"max_day"`

	// Workspace layout.
	Layout LayoutConfig `yaml:"layout"`
}

// LayoutConfig describes where solution files and index files live.
type LayoutConfig struct {
	SourceDir    string `yaml:"source_dir"`     // root of the solution tree
	FileExt      string `yaml:"file_ext"`       // extension of generated files
	DayPrefix    string `yaml:"day_prefix"`     // "day" -> day7.rs, "mod day7;"
	YearPrefix   string `yaml:"year_prefix"`    // "y" -> y2024/, "mod y2024;"
	DayIndexFile string `yaml:"day_index_file"` // per-year index, inside the year dir
	TopIndexFile string `yaml:"top_index_file"` // top-level index, inside SourceDir
}

// Default returns the standard configuration for a Rust AoC workspace.
func Default() *Config {
	return &Config{
		MinYear: 2015,
		MaxYear: 2025,
		MaxDay:  25,
		Layout: LayoutConfig{
			SourceDir:    "src",
			FileExt:      ".rs",
			DayPrefix:    "day",
			YearPrefix:   "y",
			DayIndexFile: "mod.rs",
			TopIndexFile: "main.rs",
		},
	}
}

// Load reads the config at path, layering it over the defaults. A missing
// file is not an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies AOCGEN_* environment variables on top of the
// loaded values. Unparseable numeric values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AOCGEN_MIN_YEAR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinYear = n
		}
	}
	if v := os.Getenv("AOCGEN_MAX_YEAR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxYear = n
		}
	}
	if v := os.Getenv("AOCGEN_SOURCE_DIR"); v != "" {
		c.Layout.SourceDir = v
	}
}

// Validate checks the config itself for consistency.
func (c *Config) Validate() error {
	if c.MinYear > c.MaxYear {
		return fmt.Errorf("min_year %d is greater than max_year %d", c.MinYear, c.MaxYear)
	}
	if c.MaxDay < 1 {
		return fmt.Errorf("max_day must be at least 1, got %d", c.MaxDay)
	}
	if c.Layout.SourceDir == "" {
		return fmt.Errorf("layout.source_dir must not be empty")
	}
	if c.Layout.DayIndexFile == "" || c.Layout.TopIndexFile == "" {
		return fmt.Errorf("layout index file names must not be empty")
	}
	return nil
}

// ValidateRequest rejects a (year, day) pair outside the configured bounds.
// It runs before any filesystem mutation.
func (c *Config) ValidateRequest(year, day int) error {
	if year < c.MinYear || year > c.MaxYear {
		return fmt.Errorf("year must be between %d and %d, got %d", c.MinYear, c.MaxYear, year)
	}
	if day < 1 || day > c.MaxDay {
		return fmt.Errorf("day must be between 1 and %d, got %d", c.MaxDay, day)
	}
	return nil
}
