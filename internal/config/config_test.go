package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/preview"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	content := `
layout = "diagonal"
depth = 16
output_dir = " /tmp/raw "

[preview]
mode = "gray"
scale = 8
grid = true
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Sampler.Layout != bayer.Diagonal {
		t.Fatalf("unexpected layout: %s", cfg.Sampler.Layout)
	}
	if cfg.Sampler.Depth != bayer.Depth16 {
		t.Fatalf("unexpected depth: %d", cfg.Sampler.Depth)
	}
	if cfg.OutputDir != "/tmp/raw" {
		t.Fatalf("unexpected output dir: %q", cfg.OutputDir)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected default workers, got %d", cfg.Workers)
	}
	if cfg.Preview.Mode != preview.Gray || cfg.Preview.Scale != 8 || !cfg.Preview.Grid {
		t.Fatalf("unexpected preview config: %+v", cfg.Preview)
	}
	if !cfg.Preview.Caption || cfg.Preview.FontSize != 12 {
		t.Fatalf("expected default caption settings, got %+v", cfg.Preview)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("layuot = \"rggb\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestParseInvalid(t *testing.T) {
	for _, content := range []string{
		`layout = "xtrans"`,
		`depth = 12`,
		`workers = 0`,
		"[preview]\nscale = 0",
		"[preview]\nmode = \"hdr\"",
		"[preview]\nfont_size = -1.0",
		`layout = `,
		`layuot = "rggb"`,
		"[preview]\nscael = 2",
	} {
		if _, err := Parse(content); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
