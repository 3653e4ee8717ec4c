package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MinYear != 2015 || cfg.MaxYear != 2025 {
		t.Errorf("expected year bounds 2015-2025, got %d-%d", cfg.MinYear, cfg.MaxYear)
	}
	if cfg.MaxDay != 25 {
		t.Errorf("expected MaxDay=25, got %d", cfg.MaxDay)
	}
	if cfg.Layout.SourceDir != "src" || cfg.Layout.TopIndexFile != "main.rs" {
		t.Errorf("unexpected default layout: %+v", cfg.Layout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_MissingFileMeansDefaults(t *testing.T) {
	t.Setenv("AOCGEN_MIN_YEAR", "")
	t.Setenv("AOCGEN_MAX_YEAR", "")
	t.Setenv("AOCGEN_SOURCE_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MinYear != 2015 || cfg.Layout.DayPrefix != "day" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("AOCGEN_MIN_YEAR", "")
	t.Setenv("AOCGEN_MAX_YEAR", "")
	t.Setenv("AOCGEN_SOURCE_DIR", "")

	path := filepath.Join(t.TempDir(), ConfigFileName)
	data := "max_year: 2030\nlayout:\n  source_dir: solutions\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxYear != 2030 {
		t.Errorf("expected MaxYear=2030, got %d", cfg.MaxYear)
	}
	if cfg.Layout.SourceDir != "solutions" {
		t.Errorf("expected SourceDir=solutions, got %s", cfg.Layout.SourceDir)
	}
	// Untouched fields keep their defaults.
	if cfg.MinYear != 2015 || cfg.Layout.FileExt != ".rs" {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AOCGEN_MIN_YEAR", "2020")
	t.Setenv("AOCGEN_MAX_YEAR", "2021")
	t.Setenv("AOCGEN_SOURCE_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MinYear != 2020 || cfg.MaxYear != 2021 {
		t.Errorf("expected env bounds 2020-2021, got %d-%d", cfg.MinYear, cfg.MaxYear)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("max_year: [not a number"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.MinYear = 2026
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when min_year > max_year")
	}

	cfg = Default()
	cfg.Layout.SourceDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty source_dir")
	}
}

func TestValidateRequest(t *testing.T) {
	cfg := Default()

	cases := []struct {
		name    string
		year    int
		day     int
		wantErr bool
	}{
		{"valid", 2024, 17, false},
		{"min bounds", 2015, 1, false},
		{"max bounds", 2025, 25, false},
		{"year too low", 2014, 5, true},
		{"year too high", 2026, 5, true},
		{"day zero", 2024, 0, true},
		{"day too high", 2024, 26, true},
		{"day negative", 2024, -1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cfg.ValidateRequest(tc.year, tc.day)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateRequest(%d, %d): expected error", tc.year, tc.day)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateRequest(%d, %d): unexpected error: %v", tc.year, tc.day, err)
			}
		})
	}
}
