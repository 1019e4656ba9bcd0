package core

import (
	"context"

	"github.com/veildoc/veildoc/internal/engine"
	"github.com/veildoc/veildoc/internal/preset"
	"github.com/veildoc/veildoc/internal/recognizer"
	"github.com/veildoc/veildoc/internal/types"
)

// Re-export selected internal types as a stable public API surface. These
// are type aliases so external consumers can depend on a stable path; they
// can be replaced with decoupled structs later without breaking callers.
type (
	Preset     = preset.Preset
	Finding    = types.Finding
	EntityType = types.EntityType
	Candidate  = types.Candidate
	Options    = engine.Options
	Result     = engine.Result
	Recognizer = recognizer.Recognizer
	Registry   = recognizer.Registry
)

// Built-in presets.
func PresetFast() Preset     { return preset.Fast() }
func PresetBalanced() Preset { return preset.Balanced() }
func PresetStrict() Preset   { return preset.Strict() }

// LoadPreset reads a YAML preset file and validates it.
func LoadPreset(path string) (Preset, error) { return preset.LoadFile(path) }

// Scrub is the stable entrypoint for other programs: one anonymization run
// over one text with the default options.
func Scrub(ctx context.Context, text string, p Preset) (Result, error) {
	return engine.Analyze(ctx, text, p, Options{})
}

// ScrubWithOptions runs with caller-supplied recognizers or overrides.
func ScrubWithOptions(ctx context.Context, text string, p Preset, opts Options) (Result, error) {
	return engine.Analyze(ctx, text, p, opts)
}

// NewRegistry builds a recognizer registry for ScrubWithOptions. Exposed for
// convenience to avoid importing internals directly.
func NewRegistry(recs ...Recognizer) *Registry { return recognizer.NewRegistry(recs...) }
