package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. All fields are
// pointers so the CLI can distinguish "unset" from a zero value when merging
// CLI > local > global.
type FileConfig struct {
	Preset      *string `yaml:"preset"`
	PresetFile  *string `yaml:"preset_file"`
	Include     *string `yaml:"include"`
	Exclude     *string `yaml:"exclude"`
	Recursive   *bool   `yaml:"recursive"`
	MaxFiles    *int    `yaml:"max_files"`
	Concurrency *int    `yaml:"concurrency"`
	Language    *string `yaml:"language"`
	OutputDir   *string `yaml:"output_dir"`
	NoColor     *bool   `yaml:"no_color"`
	NoAudit     *bool   `yaml:"no_audit"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a directory-local config file in the given root.
// It supports .veildoc.yml/.yaml and veildoc.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".veildoc.yml", ".veildoc.yaml", "veildoc.yml", "veildoc.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "veildoc", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
