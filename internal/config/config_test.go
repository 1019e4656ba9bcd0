package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	data := []byte("preset: strict\nrecursive: true\nmax_files: 50\n")
	if err := os.WriteFile(filepath.Join(dir, ".veildoc.yml"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Preset == nil || *cfg.Preset != "strict" {
		t.Fatalf("preset = %v", cfg.Preset)
	}
	if cfg.Recursive == nil || !*cfg.Recursive {
		t.Fatalf("recursive = %v", cfg.Recursive)
	}
	if cfg.MaxFiles == nil || *cfg.MaxFiles != 50 {
		t.Fatalf("max_files = %v", cfg.MaxFiles)
	}
	// Unset fields stay nil so the merge logic can tell them apart.
	if cfg.NoColor != nil {
		t.Fatalf("no_color should be nil, got %v", *cfg.NoColor)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("missing config should error")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(p, []byte("preset: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("invalid YAML accepted")
	}
}
