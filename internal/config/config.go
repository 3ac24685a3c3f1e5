// Package config loads the TOML configuration shared by the command line tools.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/preview"
)

// Config is the resolved tool configuration.
type Config struct {
	Sampler   bayer.Sampler
	Workers   int
	OutputDir string
	FailFast  bool
	Preview   Preview
}

// Preview rendering settings.
type Preview struct {
	Mode     preview.Mode
	Scale    int
	Grid     bool
	Caption  bool
	FontSize float64
}

// config.toml key mapping.
type fileConfig struct {
	Layout    string      `toml:"layout"`
	Depth     int         `toml:"depth"`
	Workers   int         `toml:"workers"`
	OutputDir string      `toml:"output_dir"`
	FailFast  bool        `toml:"fail_fast"`
	Preview   filePreview `toml:"preview"`
}

type filePreview struct {
	Mode     string  `toml:"mode"`
	Scale    int     `toml:"scale"`
	Grid     bool    `toml:"grid"`
	Caption  bool    `toml:"caption"`
	FontSize float64 `toml:"font_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Sampler: bayer.Sampler{Layout: bayer.RGGB, Depth: bayer.Depth8},
		Workers: 4,
		Preview: Preview{
			Mode:     preview.CFA,
			Scale:    1,
			Caption:  true,
			FontSize: 12,
		},
	}
}

// Load reads the named TOML file and overlays it on the defaults.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return overlay(Default(), meta, raw)
}

// Parse is like Load but reads the TOML document from a string.
func Parse(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	return overlay(Default(), meta, raw)
}

func overlay(cfg Config, meta toml.MetaData, raw fileConfig) (Config, error) {
	var err error
	if meta.IsDefined("layout") {
		if cfg.Sampler.Layout, err = bayer.ParseLayout(raw.Layout); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("depth") {
		if cfg.Sampler.Depth, err = bayer.ParseDepth(raw.Depth); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("output_dir") {
		cfg.OutputDir = strings.TrimSpace(raw.OutputDir)
	}
	if meta.IsDefined("fail_fast") {
		cfg.FailFast = raw.FailFast
	}
	if meta.IsDefined("preview", "mode") {
		if cfg.Preview.Mode, err = preview.ParseMode(strings.TrimSpace(raw.Preview.Mode)); err != nil {
			return Config{}, err
		}
	}
	if meta.IsDefined("preview", "scale") {
		cfg.Preview.Scale = raw.Preview.Scale
	}
	if meta.IsDefined("preview", "grid") {
		cfg.Preview.Grid = raw.Preview.Grid
	}
	if meta.IsDefined("preview", "caption") {
		cfg.Preview.Caption = raw.Preview.Caption
	}
	if meta.IsDefined("preview", "font_size") {
		cfg.Preview.FontSize = raw.Preview.FontSize
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Preview.Scale < 1 {
		return fmt.Errorf("config: preview scale must be at least 1, got %d", c.Preview.Scale)
	}
	if c.Preview.FontSize <= 0 {
		return fmt.Errorf("config: preview font size must be positive, got %g", c.Preview.FontSize)
	}
	return nil
}
