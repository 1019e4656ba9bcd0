// Package preset holds the caller-supplied run configuration: confidence
// threshold, uncertainty policy, and the per-entity enable map. A Preset is
// immutable for the duration of one run.
package preset

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/veildoc/veildoc/internal/types"
)

// UncertaintyPolicy is the fallback applied when a detection's confidence is
// below the run's threshold.
type UncertaintyPolicy string

const (
	UncertainMask        UncertaintyPolicy = "mask"
	UncertainRedact      UncertaintyPolicy = "redact"
	UncertainLeaveIntact UncertaintyPolicy = "leave_intact"
	UncertainFlagOnly    UncertaintyPolicy = "flag_only"
)

// Preset configures one anonymization run.
type Preset struct {
	PresetID          string                    `yaml:"preset_id"`
	Name              string                    `yaml:"name"`
	Layer             int                       `yaml:"layer"`
	MinimumConfidence int                       `yaml:"minimum_confidence"` // 0..100
	UncertaintyPolicy UncertaintyPolicy         `yaml:"uncertainty_policy"`
	PseudonymStyle    string                    `yaml:"pseudonym_style"` // neutral, realistic; consumed by collaborators only
	LanguageMode      string                    `yaml:"language_mode"`   // auto, fixed
	Language          string                    `yaml:"language,omitempty"`
	EntitiesEnabled   map[types.EntityType]bool `yaml:"entities_enabled,omitempty"`
}

// EntityEnabled reports whether an entity type participates in the run.
// Types absent from the map are enabled; configuration gaps fail open so a
// real detection is never silently dropped.
func (p Preset) EntityEnabled(et types.EntityType) bool {
	enabled, ok := p.EntitiesEnabled[et]
	if !ok {
		return true
	}
	return enabled
}

// Validate checks the ranges and enums a caller could plausibly get wrong.
func (p Preset) Validate() error {
	if p.MinimumConfidence < 0 || p.MinimumConfidence > 100 {
		return fmt.Errorf("minimum_confidence %d out of range 0-100", p.MinimumConfidence)
	}
	switch p.UncertaintyPolicy {
	case UncertainMask, UncertainRedact, UncertainLeaveIntact, UncertainFlagOnly:
	default:
		return fmt.Errorf("unknown uncertainty_policy %q", p.UncertaintyPolicy)
	}
	if p.LanguageMode == "fixed" {
		if _, err := language.Parse(p.Language); err != nil {
			return fmt.Errorf("language %q: %w", p.Language, err)
		}
	}
	return nil
}

// Fast is the first-pass profile: pattern-friendly threshold, mask on doubt.
func Fast() Preset {
	return Preset{
		PresetID:          "fast",
		Name:              "Fast Legal Scrub",
		Layer:             1,
		MinimumConfidence: 80,
		UncertaintyPolicy: UncertainMask,
		PseudonymStyle:    "neutral",
		LanguageMode:      "auto",
	}
}

// Balanced is the second-pass profile with a raised threshold.
func Balanced() Preset {
	return Preset{
		PresetID:          "balanced",
		Name:              "Balanced Scrub",
		Layer:             2,
		MinimumConfidence: 85,
		UncertaintyPolicy: UncertainMask,
		PseudonymStyle:    "neutral",
		LanguageMode:      "auto",
	}
}

// Strict is the conservative profile: highest threshold, redact on doubt,
// and the strict action tier (priority 80 redacts instead of pseudonymising).
func Strict() Preset {
	return Preset{
		PresetID:          "strict",
		Name:              "Strict Legal Scrub",
		Layer:             3,
		MinimumConfidence: 90,
		UncertaintyPolicy: UncertainRedact,
		PseudonymStyle:    "neutral",
		LanguageMode:      "auto",
	}
}

// Builtin returns the named built-in preset.
func Builtin(id string) (Preset, error) {
	switch id {
	case "fast":
		return Fast(), nil
	case "balanced":
		return Balanced(), nil
	case "strict":
		return Strict(), nil
	}
	return Preset{}, fmt.Errorf("unknown preset %q", id)
}

// BuiltinIDs lists the built-in preset identifiers.
func BuiltinIDs() []string { return []string{"fast", "balanced", "strict"} }

// LoadFile reads a YAML preset from the provided path.
func LoadFile(path string) (Preset, error) {
	var p Preset
	b, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, err
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}
