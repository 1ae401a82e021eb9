// Package io persists the installation configuration: the JSON file an
// operator edits between venues. It stores setup, never generated state —
// a tree regrows from its seed, so there is nothing else to keep.
package io

import (
	"encoding/json"
	"fmt"
	"os"

	"hanami/anim"
	"hanami/math"
)

// Config holds everything adjustable without rebuilding the binary.
type Config struct {
	Depth        int     `json:"depth"`
	BranchLength float32 `json:"branch_length"`
	Seed         int64   `json:"seed,omitempty"` // 0 = fresh tree every run
	PhotoCount   int     `json:"photo_count"`
	PhotosDir    string  `json:"photos_dir,omitempty"`
	FrameModel   string  `json:"frame_model,omitempty"`
	Palette      string  `json:"palette"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Bloom        bool    `json:"bloom"`
	Audio        bool    `json:"audio"`
}

// DefaultConfig is the out-of-the-box installation: a full tree, a dozen
// placeholder photos, bloom and sound on.
func DefaultConfig() Config {
	return Config{
		Depth:        8,
		BranchLength: 12,
		PhotoCount:   12,
		Palette:      anim.DefaultPalette().Name,
		Width:        1280,
		Height:       800,
		Bloom:        true,
		Audio:        true,
	}
}

// Validate rejects values the generator or window would refuse later, so a
// bad config file fails before any GL work starts.
func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("config: depth must be >= 0, got %d", c.Depth)
	}
	if !math.IsFinite(c.BranchLength) || c.BranchLength <= 0 {
		return fmt.Errorf("config: branch_length must be positive and finite, got %v", c.BranchLength)
	}
	if c.PhotoCount < 0 {
		return fmt.Errorf("config: photo_count must be >= 0, got %d", c.PhotoCount)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := anim.PaletteByName(c.Palette); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadConfig reads an installation config file. A missing file is not an
// error: deployments start from defaults and save once adjusted.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveConfig writes the config as indented JSON.
func SaveConfig(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
