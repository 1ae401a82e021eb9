package io

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.json")

	want := DefaultConfig()
	want.Depth = 6
	want.BranchLength = 9.5
	want.Seed = 42
	want.PhotoCount = 5
	want.PhotosDir = "/srv/photos"
	want.Palette = "frost"
	want.Bloom = false

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	got, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got error: %v", err)
	}
	if got != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", got)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"depth": 5, "palette": "lantern"}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Depth != 5 {
		t.Errorf("depth = %d, want 5", got.Depth)
	}
	if got.Palette != "lantern" {
		t.Errorf("palette = %q, want lantern", got.Palette)
	}
	// Unset fields keep their defaults
	def := DefaultConfig()
	if got.BranchLength != def.BranchLength {
		t.Errorf("branch length = %v, want default %v", got.BranchLength, def.BranchLength)
	}
	if got.Width != def.Width || got.Height != def.Height {
		t.Errorf("window = %dx%d, want default %dx%d", got.Width, got.Height, def.Width, def.Height)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"depth": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed JSON should fail to load")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"zero branch length", func(c *Config) { c.BranchLength = 0 }},
		{"negative branch length", func(c *Config) { c.BranchLength = -3 }},
		{"negative photo count", func(c *Config) { c.PhotoCount = -2 }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"unknown palette", func(c *Config) { c.Palette = "sepia" }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Depth = -4
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := SaveConfig(path, cfg); err == nil {
		t.Error("saving an invalid config should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid config must not be written")
	}
}
